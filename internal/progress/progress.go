// Package progress provides CLI progress indicators for asset generation.
// Output goes to stderr to keep stdout clean for piping, and TTY detection
// ensures proper formatting in both interactive and scripted usage.
package progress

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// minAssets is the minimum number of assets before showing progress.
// Small runs finish fast enough that progress adds noise without benefit.
const minAssets = 5

// Reporter tracks and displays generation progress.
type Reporter struct {
	w     io.Writer
	label string
	total int
	done  int
	isTTY bool
}

// New creates a progress reporter that writes to stderr.
// If total is less than minAssets, progress updates are suppressed.
func New(label string, total int) *Reporter {
	return &Reporter{
		w:     os.Stderr,
		label: label,
		total: total,
		isTTY: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Step records one produced asset and redraws the progress line.
// On TTY the line is updated in place with the asset name; for non-TTY
// output or small totals this is a no-op.
func (r *Reporter) Step(name string) {
	r.done++
	if r.total < minAssets || !r.isTTY {
		return
	}

	pct := 0
	if r.total > 0 {
		pct = (r.done * 100) / r.total
	}
	fmt.Fprintf(r.w, "\r\033[K%s %d/%d (%d%%) %s", r.label, r.done, r.total, pct, name)
}

// Finish clears the progress line (on TTY) to make way for final output.
func (r *Reporter) Finish() {
	if r.total < minAssets || !r.isTTY {
		return
	}
	fmt.Fprint(r.w, "\r\033[K")
}
