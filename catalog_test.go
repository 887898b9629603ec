//
// Copyright 2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package sampledata

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCatalog = `
categories:
  Galaxies:
    - sample: NGC2841
      files:
        - uri: https://example.org/NGC2841.fits
          file: NGC2841.fits
          node: NGC2841
        - uri: https://example.org/NGC2841_mask.fits
          file: NGC2841_mask.fits
  Clusters:
    - files:
        - uri: https://example.org/virgo.fits
          file: virgo.fits
          node: Virgo
`

func TestRegisterCatalog(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterBuiltIns(r))
	require.NoError(t, RegisterCatalog(r, []byte(testCatalog)))
	require.Equal(t, []string{DefaultCategory, "Clusters", "Galaxies"}, r.Categories())

	src, ok := r.FindByName("NGC2841")
	require.True(t, ok)
	std := src.(*StandardSource)
	require.Equal(t, []string{"NGC2841.fits", "NGC2841_mask.fits"}, std.FileNames)
	require.Equal(t, []string{"NGC2841", ""}, std.NodeNames)

	clusters := r.Sources("Clusters")
	require.Len(t, clusters, 1)
	require.Equal(t, "Virgo", clusters[0].Label())
}

func TestRegisterCatalogInvalid(t *testing.T) {
	r := NewRegistry()

	err := RegisterCatalog(r, []byte("categories: [a, b]"))
	require.Error(t, err)

	err = RegisterCatalog(r, []byte("categories: {X: [{sample: s, files: []}]}"))
	require.ErrorIs(t, err, ErrInvalidSource)

	bad := strings.Replace(testCatalog, "file: virgo.fits", "file: ''", 1)
	err = RegisterCatalog(r, []byte(bad))
	require.ErrorIs(t, err, ErrInvalidSource)

	err = RegisterCatalog(r, []byte("categories: {X: [{sample: s, files: [[1]]}]}"))
	require.Error(t, err)

	require.Empty(t, r.Categories())
	require.NoError(t, RegisterCatalog(r, []byte("# empty\n")))
}

func TestRegisterCatalogRejectsNestedFileNames(t *testing.T) {
	for _, name := range []string{"../escaped.txt", "sub/dir.fits", "/etc/passwd"} {
		r := NewRegistry()
		bad := strings.Replace(testCatalog, "file: virgo.fits", "file: '"+name+"'", 1)
		err := RegisterCatalog(r, []byte(bad))
		require.ErrorIs(t, err, ErrInvalidSource, name)
		require.Empty(t, r.Categories())
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0644))
	r := NewRegistry()
	require.NoError(t, LoadCatalogFile(r, path))
	require.Len(t, r.Categories(), 2)

	require.Error(t, LoadCatalogFile(r, filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestSlogNotifier(t *testing.T) {
	var out strings.Builder
	n := SlogNotifier(slog.New(slog.NewTextHandler(&out, nil)))
	n.Notify("Download finished")
	require.Contains(t, out.String(), `msg="Download finished"`)
	require.Contains(t, out.String(), "component=sampledata")

	require.NotPanics(t, func() { DiscardNotifier.Notify("x") })
	require.NotPanics(t, func() { notifierOrDiscard(nil).Notify("x") })
}
