// SPDX-License-Identifier: MIT

package download

import (
	"fmt"
	"io"
	"strings"
)

const barWidth = 30

// progressBar renders an in-place transfer bar. Methods are nil-safe
// so callers can skip the enabled check at every update site.
type progressBar struct {
	w     io.Writer
	name  string
	total int64
	done  bool
}

func newProgressBar(w io.Writer, name string, total int64) *progressBar {
	return &progressBar{w: w, name: name, total: total}
}

func (b *progressBar) update(received int64) {
	if b == nil || b.done || b.total <= 0 {
		return
	}
	frac := float64(received) / float64(b.total)
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * barWidth)
	fmt.Fprintf(b.w, "\r  [%s%s] %5.1f%% %6.1f/%.1f MB",
		strings.Repeat("#", filled),
		strings.Repeat("-", barWidth-filled),
		frac*100,
		float64(received)/(1024*1024),
		float64(b.total)/(1024*1024))
	if received >= b.total {
		fmt.Fprintln(b.w)
		b.done = true
	}
}
