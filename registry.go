//
// Copyright 2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package sampledata

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultCategory is always listed first by Registry.Categories.
const DefaultCategory = "BuiltIn"

// Registry maps category names to ordered lists of sources. Sources are
// only ever appended. It is safe for concurrent use.
type Registry struct {
	lock       sync.Mutex
	categories map[string][]Source
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{categories: map[string][]Source{}}
}

// Register validates src and appends it to category, creating the
// category if needed.
func (r *Registry) Register(category string, src Source) error {
	if src == nil {
		return &ValidationError{Reason: "nil source"}
	}
	if err := src.Validate(); err != nil {
		return fmt.Errorf("registering in category %s: %w", category, err)
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	if r.categories == nil {
		r.categories = map[string][]Source{}
	}
	r.categories[category] = append(r.categories[category], src)
	return nil
}

// Categories returns the category names: DefaultCategory first (if
// present), then the others in alphabetical order.
func (r *Registry) Categories() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.categoriesLocked()
}

func (r *Registry) categoriesLocked() []string {
	res := make([]string, 0, len(r.categories))
	for category := range r.categories {
		if category != DefaultCategory {
			res = append(res, category)
		}
	}
	sort.Strings(res)
	if _, ok := r.categories[DefaultCategory]; ok {
		res = append([]string{DefaultCategory}, res...)
	}
	return res
}

// Sources returns a copy of the sources registered in category.
func (r *Registry) Sources(category string) []Source {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Source(nil), r.categories[category]...)
}

// FindByName returns the first source whose sample name is sampleName,
// walking categories in Categories order.
func (r *Registry) FindByName(sampleName string) (Source, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, category := range r.categoriesLocked() {
		for _, src := range r.categories[category] {
			if src.Name() == sampleName {
				return src, true
			}
		}
	}
	return nil, false
}

// builtInSources are the samples shipped with the module: sample name, uri,
// file name, node name.
var builtInSources = [][4]string{
	{"WEIN069", "http://slicer.kitware.com/midas3/download/item/266401/WEIN069.fits", "WEIN069.fits", "WEIN069"},
	{"WEIN069_MASK", "http://slicer.kitware.com/midas3/download/item/266403/WEIN069_mask.fits", "WEIN069_mask.fits", "WEIN069_mask"},
	{"NGC2403", "http://slicer.kitware.com/midas3/download/item/242878/NGC2403.fits", "NGC2403.fits", "NGC2403"},
	{"NGC4111", "http://slicer.kitware.com/midas3/download/item/242880/NGC4111.fits", "NGC4111.fits", "NGC4111"},
	{"NGC3379", "http://slicer.kitware.com/midas3/download/item/242866/NGC3379.fits", "NGC3379.fits", "NGC3379"},
}

// RegisterBuiltIns appends the built-in samples to DefaultCategory.
func RegisterBuiltIns(r *Registry) error {
	for _, args := range builtInSources {
		src, err := NewFileSource(args[0], args[1], args[2], args[3])
		if err != nil {
			return err
		}
		if err := r.Register(DefaultCategory, src); err != nil {
			return err
		}
	}
	return nil
}
