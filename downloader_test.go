//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package sampledata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testPayload = []byte(strings.Repeat("0123456789abcdef", 503) + "0123")

func makeTmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "test.txt")
}

func newPayloadServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/test.txt":
			if r.Header.Get("X-Token") == "forbidden" {
				http.Error(w, "no", http.StatusForbidden)
				return
			}
			http.ServeContent(w, r, "test.txt", time.Time{}, strings.NewReader(string(testPayload)))
		case "/stall":
			w.Header().Set("Content-Length", "100")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("partial"))
			w.(http.Flusher).Flush()
			<-r.Context().Done()
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDownload(t *testing.T) {
	srv := newPayloadServer(t)
	tmpFile := makeTmpFile(t)

	d, err := Download(tmpFile, srv.URL+"/test.txt")
	require.NoError(t, err)
	require.Equal(t, int64(len(testPayload)), d.Size())
	require.NoError(t, d.Run())
	require.Equal(t, int64(8052), d.Completed())

	data, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	require.Equal(t, testPayload, data)
}

func TestDownloadOverwrites(t *testing.T) {
	srv := newPayloadServer(t)
	tmpFile := makeTmpFile(t)
	require.NoError(t, os.WriteFile(tmpFile, []byte(strings.Repeat("x", 10000)), 0644))

	d, err := Download(tmpFile, srv.URL+"/test.txt")
	require.NoError(t, err)
	require.NoError(t, d.Run())

	data, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	require.Equal(t, testPayload, data)
}

func TestRunAndPoll(t *testing.T) {
	srv := newPayloadServer(t)
	tmpFile := makeTmpFile(t)

	d, err := Download(tmpFile, srv.URL+"/test.txt")
	require.NoError(t, err)
	var last int64
	require.NoError(t, d.RunAndPoll(func(current int64) { last = current }, time.Millisecond))
	require.Equal(t, int64(len(testPayload)), last)
}

func TestOnProgressIsMonotonic(t *testing.T) {
	srv := newPayloadServer(t)
	tmpFile := makeTmpFile(t)

	d, err := Download(tmpFile, srv.URL+"/test.txt")
	require.NoError(t, err)
	var seen []int64
	d.OnProgress = func(completed int64) { seen = append(seen, completed) }
	require.NoError(t, d.Run())
	require.NotEmpty(t, seen)
	for i := 1; i < len(seen); i++ {
		require.Greater(t, seen[i], seen[i-1])
	}
	require.Equal(t, int64(len(testPayload)), seen[len(seen)-1])
}

func TestInvalidRequest(t *testing.T) {
	tmpFile := makeTmpFile(t)

	d, err := Download(tmpFile, "asd://go.bug.st/test.txt")
	require.Error(t, err)
	require.Nil(t, d)
	require.NoFileExists(t, tmpFile)
}

func TestNon2xxStatus(t *testing.T) {
	srv := newPayloadServer(t)
	tmpFile := makeTmpFile(t)

	d, err := Download(tmpFile, srv.URL+"/missing")
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	require.Nil(t, d)
	require.NoFileExists(t, tmpFile)

	d, err = DownloadWithConfig(tmpFile, srv.URL+"/missing", Config{DoNotErrorOnNon2xxStatusCode: true})
	require.NoError(t, err)
	require.NoError(t, d.Run())
	require.FileExists(t, tmpFile)
}

func TestExtraHeadersAndAcceptFunc(t *testing.T) {
	srv := newPayloadServer(t)
	tmpFile := makeTmpFile(t)

	_, err := DownloadWithConfig(tmpFile, srv.URL+"/test.txt", Config{
		ExtraHeaders: map[string]string{"X-Token": "forbidden"},
	})
	require.ErrorIs(t, err, ErrUnexpectedStatus)

	tooBig := errors.New("insufficient space for download")
	_, err = DownloadWithConfig(tmpFile, srv.URL+"/test.txt", Config{
		AcceptFunc: func(resp *http.Response) error {
			if resp.ContentLength > 2000 {
				return tooBig
			}
			return nil
		},
	})
	require.ErrorIs(t, err, tooBig)
	require.NoFileExists(t, tmpFile)
}

func TestInactivityTimeout(t *testing.T) {
	srv := newPayloadServer(t)
	tmpFile := makeTmpFile(t)

	d, err := DownloadWithConfig(tmpFile, srv.URL+"/stall", Config{InactivityTimeout: 100 * time.Millisecond})
	require.NoError(t, err)
	err = d.Run()
	require.ErrorIs(t, err, os.ErrDeadlineExceeded)
	require.Equal(t, int64(len("partial")), d.Completed())
}

func TestWithCause(t *testing.T) {
	readErr := errors.New("read failed")
	require.Same(t, readErr, withCause(context.Background(), readErr))

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	err := withCause(canceled, context.Canceled)
	require.Equal(t, context.Canceled, err)
	require.Equal(t, "context canceled", err.Error())

	timedOut, cancelCause := context.WithCancelCause(context.Background())
	cancelCause(os.ErrDeadlineExceeded)
	err = withCause(timedOut, readErr)
	require.ErrorIs(t, err, readErr)
	require.ErrorIs(t, err, os.ErrDeadlineExceeded)
	require.Equal(t, "read failed (i/o timeout)", err.Error())
}

func TestDefaultConfigIsCopied(t *testing.T) {
	prev := GetDefaultConfig()
	t.Cleanup(func() { SetDefaultConfig(prev) })

	SetDefaultConfig(Config{ExtraHeaders: map[string]string{"A": "1"}})
	c := GetDefaultConfig()
	c.ExtraHeaders["A"] = "2"
	require.Equal(t, "1", GetDefaultConfig().ExtraHeaders["A"])
}
