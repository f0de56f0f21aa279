package ui

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Bar is a single-line progress bar for workstream execution. It
// implements executor.ProgressReporter: the execution engine drives it
// from 0 to 100 and the bar redraws in place on stderr.
//
// The optional StepDelay suspends the calling goroutine per update to
// make simulated execution legible; tests leave it zero.
type Bar struct {
	Width     int
	StepDelay time.Duration

	label string
}

// NewBar creates a progress bar with the given render width.
func NewBar(width int) *Bar {
	if width <= 0 {
		width = 40
	}
	return &Bar{Width: width}
}

// Begin starts a labeled progress run at 0%.
func (b *Bar) Begin(label string) {
	b.label = label
	b.Update(0)
}

// Update redraws the bar at the given completion percentage.
func (b *Bar) Update(percent int) {
	if IsSilent() {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := b.Width * percent / 100
	var bar strings.Builder
	bar.WriteString(BracketStyle.Render("["))
	for i := 0; i < b.Width; i++ {
		if i < filled {
			bar.WriteString(ProgressFullStyle.Render("#"))
		} else {
			bar.WriteString(ProgressEmptyStyle.Render("."))
		}
	}
	bar.WriteString(BracketStyle.Render("]"))

	fmt.Fprint(os.Stderr, "\033[2K\r")
	fmt.Fprintf(os.Stderr, "  %s %s %s",
		StatLabelStyle.Render(b.label),
		bar.String(),
		StatValueStyle.Render(fmt.Sprintf("%3d%%", percent)),
	)

	if b.StepDelay > 0 && percent < 100 {
		time.Sleep(b.StepDelay)
	}
}

// End finishes the current run with a newline.
func (b *Bar) End() {
	if IsSilent() {
		return
	}
	fmt.Fprintln(os.Stderr)
}
