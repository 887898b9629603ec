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
	"path/filepath"
)

// Cache is a flat directory of downloaded files keyed by file name. The
// directory must already exist and be writable.
type Cache struct {
	// Dir is the cache directory.
	Dir string
	// Fetcher performs downloads. Defaults to an HTTPFetcher with the
	// package default configuration.
	Fetcher Fetcher
	// Notifier receives status and progress messages.
	Notifier Notifier
}

// NewCache returns a Cache on dir using the default HTTP transport.
func NewCache(dir string, notifier Notifier) *Cache {
	return &Cache{Dir: dir, Fetcher: &HTTPFetcher{}, Notifier: notifier}
}

// Path returns the path of name inside the cache, whether it exists or not.
func (c *Cache) Path(name string) string {
	return filepath.Join(c.Dir, name)
}

// Has reports whether name is present in the cache with a non-zero size.
func (c *Cache) Has(name string) bool {
	info, err := os.Stat(c.Path(name))
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}

// EnsureCached makes sure name is in the cache, downloading it from uri if
// missing or empty, and returns its path. Download failures are reported
// through the Notifier and not returned: the path is returned anyway and
// may not exist.
func (c *Cache) EnsureCached(ctx context.Context, uri, name string) string {
	notifier := notifierOrDiscard(c.Notifier)
	filePath := c.Path(name)
	if !isFlatFileName(name) {
		notifier.Notify(fmt.Sprintf("Download failed: %q is not a plain file name", name))
		return filePath
	}
	if c.Has(name) {
		notifier.Notify("File already exists in cache - reusing it.")
		return filePath
	}

	notifier.Notify(fmt.Sprintf("Requesting download %s from %s...", name, uri))
	fetcher := c.Fetcher
	if fetcher == nil {
		fetcher = &HTTPFetcher{}
	}

	var reporter *progressReporter
	progress := func(completed, total int64) {
		if reporter == nil {
			reporter = newProgressReporter(notifier, total)
		}
		reporter.update(completed)
	}
	if err := fetcher.Fetch(ctx, uri, filePath, progress); err != nil {
		notifier.Notify(fmt.Sprintf("Download failed: %v", err))
		return filePath
	}
	notifier.Notify("Download finished")
	return filePath
}
