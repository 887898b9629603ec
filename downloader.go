//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package sampledata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"
)

// Downloader streams a single HTTP response body into a file.
type Downloader struct {
	URL  string
	Done chan struct{}
	Resp *http.Response

	// OnProgress, if set, is called from Run after every chunk written
	// with the number of bytes written so far.
	OnProgress func(completed int64)

	out           *os.File
	watchdog      watchdog
	completed     int64
	completedLock sync.Mutex
	size          int64
	err           error
}

// Close the download
func (d *Downloader) Close() error {
	err1 := d.out.Close()
	err2 := d.Resp.Body.Close()
	d.watchdog.Cancel()
	if err1 != nil {
		return fmt.Errorf("closing output file: %w", err1)
	}
	if err2 != nil {
		return fmt.Errorf("closing input stream: %w", err2)
	}
	return nil
}

// Size return the size of the download (or -1 if the server doesn't provide it)
func (d *Downloader) Size() int64 {
	return d.size
}

// RunAndPoll starts the downloader copy-loop and calls the poll function every
// interval time to update progress.
func (d *Downloader) RunAndPoll(poll func(current int64), interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()

	go d.Run()
	for {
		select {
		case <-t.C:
			poll(d.Completed())
		case <-d.Done:
			poll(d.Completed())
			return d.Error()
		}
	}
}

// Run copies the response body into the output file and waits until the
// copy completes. It closes the Done channel when the download is
// completed or an error occurs.
func (d *Downloader) Run() error {
	defer close(d.Done)

	in := d.Resp.Body
	buff := [32 * 1024]byte{}
	for {
		n, err := in.Read(buff[:])
		if n > 0 {
			d.watchdog.Kick()
			if _, werr := d.out.Write(buff[:n]); werr != nil {
				d.err = fmt.Errorf("writing %s: %w", d.out.Name(), werr)
				break
			}
			d.completedLock.Lock()
			d.completed += int64(n)
			completed := d.completed
			d.completedLock.Unlock()
			if d.OnProgress != nil {
				d.OnProgress(completed)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			d.err = withCause(d.watchdog.ctx, err)
			break
		}
	}
	if err := d.Close(); err != nil && d.err == nil {
		d.err = err
	}
	return d.Error()
}

// withCause attaches the cancellation cause of ctx to err, so that an
// inactivity timeout is reported as such instead of a bare context error.
func withCause(ctx context.Context, err error) error {
	cause := context.Cause(ctx)
	if cause == nil || errors.Is(err, cause) {
		return err
	}
	return fmt.Errorf("%w (%w)", err, cause)
}

// Error returns the error during download or nil if no errors happened
func (d *Downloader) Error() error {
	return d.err
}

// Completed returns the bytes read so far
func (d *Downloader) Completed() int64 {
	d.completedLock.Lock()
	res := d.completed
	d.completedLock.Unlock()
	return res
}

// Download returns a downloader that will download the specified url
// in the specified file, replacing any previous content.
func Download(file string, reqURL string) (*Downloader, error) {
	return DownloadWithConfig(file, reqURL, GetDefaultConfig())
}

// DownloadWithConfig applies an additional configuration to the http client and
// returns a downloader that will download the specified url in the specified file.
func DownloadWithConfig(file string, reqURL string, config Config) (*Downloader, error) {
	return DownloadWithConfigAndContext(context.Background(), file, reqURL, config)
}

// DownloadWithConfigAndContext performs the GET request for reqURL and
// returns a Downloader ready to Run. The output file is created (or
// truncated) only once the server has accepted the request, so a failed
// request leaves the destination untouched.
func DownloadWithConfigAndContext(ctx context.Context, file string, reqURL string, config Config) (*Downloader, error) {
	ctx, wd := newWatchdog(ctx, config.InactivityTimeout)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		wd.Cancel()
		return nil, fmt.Errorf("setting up HTTP request: %w", err)
	}
	for k, v := range config.ExtraHeaders {
		req.Header.Set(k, v)
	}
	resp, err := config.HttpClient.Do(req)
	if err != nil {
		wd.Cancel()
		return nil, err
	}
	closeResp := func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		wd.Cancel()
	}

	if !config.DoNotErrorOnNon2xxStatusCode && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		closeResp()
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	if config.AcceptFunc != nil {
		if err := config.AcceptFunc(resp); err != nil {
			closeResp()
			return nil, err
		}
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		closeResp()
		return nil, fmt.Errorf("opening %s for writing: %w", file, err)
	}
	wd.Kick()

	return &Downloader{
		URL:      reqURL,
		Done:     make(chan struct{}),
		Resp:     resp,
		out:      f,
		watchdog: wd,
		size:     resp.ContentLength,
	}, nil
}
