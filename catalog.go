//
// Copyright 2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package sampledata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalog is the YAML layout accepted by RegisterCatalog:
//
//	categories:
//	  Galaxies:
//	    - sample: NGC2841
//	      files:
//	        - uri: https://example.org/NGC2841.fits
//	          file: NGC2841.fits
//	          node: NGC2841
type catalog struct {
	Categories yaml.Node `yaml:"categories"`
}

type catalogSource struct {
	Sample string        `yaml:"sample"`
	Files  []catalogFile `yaml:"files"`
}

type catalogFile struct {
	URI  string `yaml:"uri"`
	File string `yaml:"file"`
	Node string `yaml:"node"`
}

// RegisterCatalog parses a YAML catalog and registers all its sources.
// Categories are registered in document order. Sources are validated
// before anything is registered: a malformed catalog leaves r untouched.
func RegisterCatalog(r *Registry, data []byte) error {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("parsing catalog: %w", err)
	}
	if c.Categories.Kind == 0 {
		return nil
	}
	if c.Categories.Kind != yaml.MappingNode {
		return fmt.Errorf("parsing catalog: line %d: categories must be a mapping", c.Categories.Line)
	}

	type entry struct {
		category string
		src      Source
	}
	var entries []entry
	content := c.Categories.Content
	for i := 0; i+1 < len(content); i += 2 {
		category := content[i].Value
		var sources []catalogSource
		if err := content[i+1].Decode(&sources); err != nil {
			return fmt.Errorf("parsing catalog category %s: %w", category, err)
		}
		for _, cs := range sources {
			uris := make([]string, 0, len(cs.Files))
			fileNames := make([]string, 0, len(cs.Files))
			nodeNames := make([]string, 0, len(cs.Files))
			for _, f := range cs.Files {
				if f.URI == "" || f.File == "" {
					return fmt.Errorf("catalog category %s: %w", category,
						&ValidationError{Sample: cs.Sample, Reason: "every file needs an uri and a file name"})
				}
				uris = append(uris, f.URI)
				fileNames = append(fileNames, f.File)
				nodeNames = append(nodeNames, f.Node)
			}
			src, err := NewStandardSource(cs.Sample, uris, fileNames, nodeNames)
			if err != nil {
				return fmt.Errorf("catalog category %s: %w", category, err)
			}
			entries = append(entries, entry{category, src})
		}
	}

	for _, e := range entries {
		if err := r.Register(e.category, e.src); err != nil {
			return err
		}
	}
	return nil
}

// LoadCatalogFile reads the YAML catalog at path and registers its sources.
func LoadCatalogFile(r *Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading catalog: %w", err)
	}
	return RegisterCatalog(r, data)
}
