//
// Copyright 2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package sampledata

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Source describes one downloadable dataset. It is either a *StandardSource
// or a *CustomSource.
type Source interface {
	// Name returns the sample name used for lookups, possibly empty.
	Name() string
	// Label returns the name to show to the user.
	Label() string
	// Validate checks the source invariants.
	Validate() error
}

// StandardSource is a list of files to download, each with the name of
// the node it must be loaded as. An empty node name means the file is
// cached but never loaded.
type StandardSource struct {
	SampleName string
	URIs       []string
	FileNames  []string
	NodeNames  []string
}

// NewStandardSource returns a validated StandardSource. The three slices
// must have the same, non-zero, length.
func NewStandardSource(sampleName string, uris, fileNames, nodeNames []string) (*StandardSource, error) {
	s := &StandardSource{
		SampleName: sampleName,
		URIs:       append([]string(nil), uris...),
		FileNames:  append([]string(nil), fileNames...),
		NodeNames:  append([]string(nil), nodeNames...),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFileSource returns a StandardSource made of a single file.
func NewFileSource(sampleName, uri, fileName, nodeName string) (*StandardSource, error) {
	return NewStandardSource(sampleName, []string{uri}, []string{fileName}, []string{nodeName})
}

// Name returns the sample name.
func (s *StandardSource) Name() string {
	return s.SampleName
}

// Label returns the sample name, or the first node name if the sample has no name.
func (s *StandardSource) Label() string {
	if s.SampleName == "" && len(s.NodeNames) > 0 {
		return s.NodeNames[0]
	}
	return s.SampleName
}

// Validate checks that URIs, FileNames and NodeNames have the same length
// and that every file name is a plain name inside the flat cache directory.
func (s *StandardSource) Validate() error {
	if len(s.URIs) == 0 {
		return &ValidationError{Sample: s.SampleName, Reason: "no URIs"}
	}
	if len(s.URIs) != len(s.FileNames) || len(s.URIs) != len(s.NodeNames) {
		return &ValidationError{
			Sample: s.SampleName,
			Reason: "all fields of sample data source must have the same length",
		}
	}
	for _, name := range s.FileNames {
		if !isFlatFileName(name) {
			return &ValidationError{
				Sample: s.SampleName,
				Reason: fmt.Sprintf("file name %q must be a plain file name", name),
			}
		}
	}
	return nil
}

func isFlatFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

// CustomLoadFunc downloads and loads a custom source. Whatever it returns
// is handed back to the caller of Logic.DownloadAndLoad untouched.
type CustomLoadFunc func(ctx context.Context, l *Logic) []LoadResult

// CustomSource delegates the whole download and load process to a function.
type CustomSource struct {
	SampleName string
	Load       CustomLoadFunc
}

// NewCustomSource returns a validated CustomSource.
func NewCustomSource(sampleName string, load CustomLoadFunc) (*CustomSource, error) {
	s := &CustomSource{SampleName: sampleName, Load: load}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the sample name.
func (s *CustomSource) Name() string {
	return s.SampleName
}

// Label returns the sample name.
func (s *CustomSource) Label() string {
	return s.SampleName
}

// Validate checks that a load function is set.
func (s *CustomSource) Validate() error {
	if s.Load == nil {
		return &ValidationError{Sample: s.SampleName, Reason: "missing custom load function"}
	}
	return nil
}
