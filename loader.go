//
// Copyright 2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package sampledata

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Handle is whatever the host scene returns for a loaded file. It is owned
// by the host.
type Handle any

// LoadResult pairs a loaded Handle with the node name it was loaded as.
type LoadResult struct {
	Name   string
	Handle Handle
}

// SceneLoader loads a cached file into the host scene as node name.
// labelMask asks for the file to be loaded as a label mask.
type SceneLoader interface {
	LoadIntoScene(ctx context.Context, path, name string, labelMask bool) (Handle, error)
}

// SceneLoaderFunc adapts a function to the SceneLoader interface.
type SceneLoaderFunc func(ctx context.Context, path, name string, labelMask bool) (Handle, error)

// LoadIntoScene calls f.
func (f SceneLoaderFunc) LoadIntoScene(ctx context.Context, path, name string, labelMask bool) (Handle, error) {
	return f(ctx, path, name, labelMask)
}

// IsMaskName is the default label mask rule: node names containing "mask"
// (case-sensitive) are label masks.
func IsMaskName(nodeName string) bool {
	return strings.Contains(nodeName, "mask")
}

// FileLoader is a SceneLoader for hosts without a scene: it only checks
// that the cached file is usable and returns its os.FileInfo as handle.
type FileLoader struct{}

// LoadIntoScene stats path and fails with ErrNotCached if it is missing or empty.
func (FileLoader) LoadIntoScene(_ context.Context, path, name string, _ bool) (Handle, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w: %w", name, ErrNotCached, err)
	}
	if !info.Mode().IsRegular() || info.Size() == 0 {
		return nil, fmt.Errorf("loading %s: %w", name, ErrNotCached)
	}
	return info, nil
}
