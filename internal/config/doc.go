//
// Copyright 2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package config defines the configuration of the sampledata command.
//
// Configuration can be provided via:
//   - Command-line flags
//   - Environment variables (SAMPLEDATA_ prefix)
//   - YAML configuration file
//
// Example file:
//
//	cache_dir: /var/cache/sampledata
//	catalog: /etc/sampledata/catalog.yaml
//	inactivity_timeout: 30s
//	headers:
//	  User-Agent: sampledata
package config
