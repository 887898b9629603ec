//
// Copyright 2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package sampledata

import (
	"context"
	"fmt"
)

// Logic downloads registered sources into a Cache and loads them through
// a SceneLoader. Files are processed one at a time, in source order.
type Logic struct {
	Registry *Registry
	Cache    *Cache
	Loader   SceneLoader
	Notifier Notifier

	// LabelMask decides, from the node name, whether a file is loaded as
	// a label mask. Defaults to IsMaskName.
	LabelMask func(nodeName string) bool
}

// Option configures a Logic.
type Option func(*Logic)

// WithNotifier sets the Notifier used for load messages. The Cache keeps
// its own Notifier; if it has none, this one is used for it too.
func WithNotifier(n Notifier) Option {
	return func(l *Logic) {
		l.Notifier = n
	}
}

// WithLabelMask replaces the label mask rule.
func WithLabelMask(fn func(nodeName string) bool) Option {
	return func(l *Logic) {
		l.LabelMask = fn
	}
}

// NewLogic returns a Logic working on the given registry, cache and loader.
func NewLogic(registry *Registry, cache *Cache, loader SceneLoader, opts ...Option) *Logic {
	l := &Logic{
		Registry:  registry,
		Cache:     cache,
		Loader:    loader,
		LabelMask: IsMaskName,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.Cache != nil && l.Cache.Notifier == nil {
		l.Cache.Notifier = l.Notifier
	}
	return l
}

func (l *Logic) notify(msg string) {
	notifierOrDiscard(l.Notifier).Notify(msg)
}

// DownloadFileIntoCache downloads uri into the cache as name, if needed,
// and returns the cached path.
func (l *Logic) DownloadFileIntoCache(ctx context.Context, uri, name string) string {
	return l.Cache.EnsureCached(ctx, uri, name)
}

// DownloadSourceIntoCache caches every file of src without loading any of
// them, and returns the paths in source order. Custom sources have no
// file list and yield nil.
func (l *Logic) DownloadSourceIntoCache(ctx context.Context, src Source) []string {
	if !l.valid(src) {
		return nil
	}
	std, ok := src.(*StandardSource)
	if !ok {
		return nil
	}
	paths := make([]string, 0, len(std.URIs))
	for i, uri := range std.URIs {
		paths = append(paths, l.DownloadFileIntoCache(ctx, uri, std.FileNames[i]))
	}
	return paths
}

// DownloadAndLoad caches every file of src and loads those with a node
// name. Failed loads are reported and left out of the result. A
// CustomSource runs its own function and its result is returned as is.
// A source that no longer validates is reported and yields nil.
func (l *Logic) DownloadAndLoad(ctx context.Context, src Source) []LoadResult {
	if !l.valid(src) {
		return nil
	}
	switch s := src.(type) {
	case *CustomSource:
		return s.Load(ctx, l)
	case *StandardSource:
		var results []LoadResult
		for i, uri := range s.URIs {
			filePath := l.DownloadFileIntoCache(ctx, uri, s.FileNames[i])
			nodeName := s.NodeNames[i]
			if nodeName == "" {
				continue
			}
			if res, ok := l.load(ctx, filePath, nodeName); ok {
				results = append(results, res)
			}
		}
		return results
	default:
		l.notify(fmt.Sprintf("Unsupported sample data source %T", src))
		return nil
	}
}

// valid re-checks src: sources are plain structs and may have been
// changed after registration.
func (l *Logic) valid(src Source) bool {
	if src == nil {
		l.notify("Invalid sample data source: nil source")
		return false
	}
	if err := src.Validate(); err != nil {
		l.notify(fmt.Sprintf("Invalid sample data source: %v", err))
		return false
	}
	return true
}

func (l *Logic) load(ctx context.Context, filePath, nodeName string) (LoadResult, bool) {
	if l.Loader == nil {
		l.notify(fmt.Sprintf("Load failed: no scene loader for %s", nodeName))
		return LoadResult{}, false
	}
	labelMask := l.LabelMask
	if labelMask == nil {
		labelMask = IsMaskName
	}
	l.notify(fmt.Sprintf("Requesting load %s from %s...", nodeName, filePath))
	handle, err := l.Loader.LoadIntoScene(ctx, filePath, nodeName, labelMask(nodeName))
	if err != nil {
		l.notify(fmt.Sprintf("Load failed: %v", err))
		return LoadResult{}, false
	}
	l.notify("Load finished")
	return LoadResult{Name: nodeName, Handle: handle}, true
}

// DownloadSample resolves sampleName in the registry and downloads and
// loads it. An unknown sample yields nil.
func (l *Logic) DownloadSample(ctx context.Context, sampleName string) []LoadResult {
	src, ok := l.Registry.FindByName(sampleName)
	if !ok {
		return nil
	}
	return l.DownloadAndLoad(ctx, src)
}
