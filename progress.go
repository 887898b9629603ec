//
// Copyright 2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package sampledata

import (
	"fmt"
	"math"
)

// Percent returns min(100, floor(100*done/total)). The second result is
// false when total is unknown (zero or negative).
func Percent(done, total int64) (int, bool) {
	if total <= 0 {
		return 0, false
	}
	if done <= 0 {
		return 0, true
	}
	if done >= total {
		return 100, true
	}
	// done < total here, so the product fits for any realistic size
	return int(math.Floor(100 * float64(done) / float64(total))), true
}

var sizeUnits = []string{"bytes", "KB", "MB", "GB"}

// FormatSize renders a byte count with one decimal, dividing by 1024 until
// the magnitude is below 1024: 1536 is "1.5 KB".
func FormatSize(size float64) string {
	for _, unit := range sizeUnits {
		if size < 1024 && size > -1024 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f %s", size, "TB")
}

// progressReporter turns byte counts into at most one notification per
// ten percent, plus one at 100%.
type progressReporter struct {
	notifier    Notifier
	total       int64
	lastPercent int
	done100     bool
}

func newProgressReporter(n Notifier, total int64) *progressReporter {
	return &progressReporter{notifier: n, total: total}
}

func (p *progressReporter) update(done int64) {
	percent, ok := Percent(done, p.total)
	if !ok || p.done100 {
		return
	}
	if percent == 100 {
		p.done100 = true
	} else if percent/10 <= p.lastPercent/10 {
		return
	}
	p.lastPercent = percent
	p.notifier.Notify(fmt.Sprintf("Downloaded %s (%d%% of %s)...",
		FormatSize(float64(min(done, p.total))), percent, FormatSize(float64(p.total))))
}
