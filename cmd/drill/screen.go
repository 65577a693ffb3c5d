package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/hperssn/drill/internal/domain"
	"github.com/hperssn/drill/internal/runner"
)

const barWidth = 20

// screen renders session snapshots as a single status line. On a terminal
// the line is redrawn in place; otherwise each update is its own line.
type screen struct {
	out      io.Writer
	exercise domain.Exercise
	isTTY    bool
	last     string
}

func newScreen(out io.Writer, exercise domain.Exercise) *screen {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return &screen{out: out, exercise: exercise, isTTY: isTTY}
}

func (s *screen) header() {
	fmt.Fprintf(s.out, "%s (%s, %s)\n", s.exercise.Title, domain.FormatClock(s.exercise.DurationSeconds), pluralPoints(s.exercise.Points))
	if s.exercise.Description != "" {
		fmt.Fprintln(s.out, s.exercise.Description)
	}
	fmt.Fprintln(s.out)
}

func (s *screen) render(snap runner.Snapshot) {
	line := statusLine(snap)
	if line == s.last {
		return
	}
	s.last = line

	if s.isTTY {
		fmt.Fprintf(s.out, "\r\033[K%s", line)
		return
	}
	fmt.Fprintln(s.out, line)
}

func (s *screen) finish(outcome domain.Outcome) {
	if s.isTTY {
		fmt.Fprintln(s.out)
	}
	switch outcome.Kind {
	case domain.OutcomeCompleted:
		fmt.Fprintf(s.out, "Exercise complete! +%s\n", pluralPoints(outcome.PointsEarned))
	default:
		fmt.Fprintln(s.out, "Exercise abandoned.")
	}
}

func statusLine(snap runner.Snapshot) string {
	p := snap.Progress

	var b strings.Builder
	fmt.Fprintf(&b, "%-9s %s -%s %s %3.0f%%",
		statusLabel(snap.Status),
		domain.FormatClock(p.ElapsedSeconds),
		domain.FormatClock(p.RemainingSeconds),
		progressBar(p.Ratio),
		p.Ratio*100,
	)
	if p.StepCount > 0 {
		fmt.Fprintf(&b, "  Step %d of %d: %s", p.StepIndex+1, p.StepCount, p.StepText)
	}
	if snap.Status == runner.StatusExitRequested {
		b.WriteString("  Exit exercise? Your progress will be lost. [y/n]")
	}
	return b.String()
}

func statusLabel(status runner.Status) string {
	switch status {
	case runner.StatusRunning:
		return "Remaining"
	case runner.StatusPaused:
		return "Paused"
	case runner.StatusCompleted:
		return "Done"
	case runner.StatusExitRequested:
		return "Exit?"
	case runner.StatusExited:
		return "Exited"
	}
	return string(status)
}

func progressBar(ratio float64) string {
	filled := int(ratio * barWidth)
	filled = min(max(filled, 0), barWidth)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}
