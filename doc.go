//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package sampledata downloads sample datasets into a local file cache and
// hands the cached files to a scene loader.
//
// Sources are grouped by category in a Registry. A Cache makes sure each
// file of a source exists in a flat cache directory, downloading it with
// progress notifications when missing or empty. Logic ties both together:
// it resolves a sample by name, caches its files and loads the ones that
// carry a node name through the SceneLoader supplied by the host.
//
// Download and load failures are reported through a Notifier and never
// abort the caller; only malformed sources are rejected, at registration.
package sampledata
