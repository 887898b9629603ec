//
// Copyright 2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Command sampledata lists, downloads and caches sample datasets.
//
// Configuration is read from the file given with --config, then from
// SAMPLEDATA_* environment variables, then from flags.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.bug.st/sampledata"
)

// Exit codes
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitInvalidArgs   = 2
	ExitUnknownSample = 3
	ExitLoadFailed    = 4
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitCodeFromError(err)
	}
	return ExitSuccess
}

func exitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errUnknownSample):
		return ExitUnknownSample
	case errors.Is(err, errLoadFailed):
		return ExitLoadFailed
	case errors.Is(err, sampledata.ErrInvalidSource), errors.Is(err, errInvalidArgs):
		return ExitInvalidArgs
	default:
		return ExitGeneralError
	}
}
