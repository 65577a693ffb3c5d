package domain

import "fmt"

// Progress is the read-only projection of a session's elapsed time.
type Progress struct {
	Ratio            float64 `json:"ratio"`
	ElapsedSeconds   int     `json:"elapsedSeconds"`
	RemainingSeconds int     `json:"remainingSeconds"`
	StepIndex        int     `json:"stepIndex"`
	StepCount        int     `json:"stepCount"`
	StepText         string  `json:"stepText"`
}

// Project derives progress, remaining time and the current instruction step
// from elapsed time alone. A zero total counts as fully done.
func Project(elapsedSeconds, totalSeconds int, steps []string) Progress {
	ratio := 1.0
	if totalSeconds > 0 {
		ratio = float64(elapsedSeconds) / float64(totalSeconds)
	}
	ratio = min(max(ratio, 0), 1)

	p := Progress{
		Ratio:            ratio,
		ElapsedSeconds:   elapsedSeconds,
		RemainingSeconds: max(totalSeconds-elapsedSeconds, 0),
		StepCount:        len(steps),
	}
	if len(steps) == 0 {
		return p
	}

	// floor(ratio*n) in integer arithmetic so exact boundaries never round down.
	p.StepIndex = len(steps) - 1
	if totalSeconds > 0 {
		elapsed := min(max(elapsedSeconds, 0), totalSeconds)
		p.StepIndex = min(elapsed*len(steps)/totalSeconds, len(steps)-1)
	}
	p.StepText = steps[p.StepIndex]
	return p
}

// FormatClock renders seconds as mm:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
