//
// Copyright 2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package sampledata

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to check for them.
var (
	// ErrInvalidSource is wrapped by every ValidationError.
	ErrInvalidSource = errors.New("sampledata: invalid source")

	// ErrUnexpectedStatus is returned when the server answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("sampledata: unexpected HTTP status")

	// ErrNotCached is returned by loaders when the file to load is missing or empty.
	ErrNotCached = errors.New("sampledata: file not present in cache")
)

// ValidationError reports a malformed Source.
type ValidationError struct {
	Sample string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Sample == "" {
		return fmt.Sprintf("invalid sample data source: %s", e.Reason)
	}
	return fmt.Sprintf("invalid sample data source %q: %s", e.Sample, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidSource).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidSource
}
