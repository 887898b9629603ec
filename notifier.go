//
// Copyright 2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package sampledata

import (
	"context"
	"log/slog"
)

// Notifier receives human readable status messages. Notify must not panic
// and should return quickly: it is called from inside the download loop.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) {
	f(message)
}

// DiscardNotifier drops every message.
var DiscardNotifier Notifier = NotifierFunc(func(string) {})

type slogNotifier struct {
	logger *slog.Logger
}

// SlogNotifier forwards every message to logger as an Info record.
func SlogNotifier(logger *slog.Logger) Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogNotifier{logger: logger.With("component", "sampledata")}
}

func (n *slogNotifier) Notify(message string) {
	n.logger.LogAttrs(context.Background(), slog.LevelInfo, message)
}

func notifierOrDiscard(n Notifier) Notifier {
	if n == nil {
		return DiscardNotifier
	}
	return n
}
