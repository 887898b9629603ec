//
// Copyright 2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package sampledata

import (
	"context"
	"os"
)

// ProgressFunc receives the bytes written so far and the expected total,
// or -1 when the total is unknown.
type ProgressFunc func(completed, total int64)

// Fetcher downloads uri into the file at path.
type Fetcher interface {
	Fetch(ctx context.Context, uri, path string, progress ProgressFunc) error
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, uri, path string, progress ProgressFunc) error

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, uri, path string, progress ProgressFunc) error {
	return f(ctx, uri, path, progress)
}

// HTTPFetcher fetches files with a Downloader. A nil Config means the
// package default configuration (see SetDefaultConfig).
type HTTPFetcher struct {
	Config *Config
}

// Fetch performs a streaming GET of uri into path. If the transfer breaks
// halfway the partial file is removed, so that a later attempt does not
// mistake it for a cached copy.
func (h *HTTPFetcher) Fetch(ctx context.Context, uri, path string, progress ProgressFunc) error {
	config := GetDefaultConfig()
	if h != nil && h.Config != nil {
		config = *h.Config
	}
	d, err := DownloadWithConfigAndContext(ctx, path, uri, config)
	if err != nil {
		return err
	}
	if progress != nil {
		size := d.Size()
		d.OnProgress = func(completed int64) {
			progress(completed, size)
		}
	}
	if err := d.Run(); err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}
