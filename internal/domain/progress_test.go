package domain

import "testing"

func TestProject(t *testing.T) {
	threeSteps := []string{"One.", "Two.", "Three."}

	tests := []struct {
		name          string
		elapsed       int
		total         int
		steps         []string
		wantRatio     float64
		wantRemaining int
		wantIndex     int
		wantText      string
	}{
		{name: "start", elapsed: 0, total: 10, steps: threeSteps, wantRatio: 0, wantRemaining: 10, wantIndex: 0, wantText: "One."},
		{name: "four of ten", elapsed: 4, total: 10, steps: threeSteps, wantRatio: 0.4, wantRemaining: 6, wantIndex: 1, wantText: "Two."},
		{name: "done", elapsed: 10, total: 10, steps: threeSteps, wantRatio: 1, wantRemaining: 0, wantIndex: 2, wantText: "Three."},
		{name: "overshoot clamps", elapsed: 15, total: 10, steps: threeSteps, wantRatio: 1, wantRemaining: 0, wantIndex: 2, wantText: "Three."},
		{name: "exact boundary", elapsed: 1, total: 3, steps: threeSteps, wantRatio: 1.0 / 3, wantRemaining: 2, wantIndex: 1, wantText: "Two."},
		{name: "zero duration", elapsed: 0, total: 0, steps: threeSteps, wantRatio: 1, wantRemaining: 0, wantIndex: 2, wantText: "Three."},
		{name: "no steps", elapsed: 5, total: 10, steps: nil, wantRatio: 0.5, wantRemaining: 5, wantIndex: 0, wantText: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project(tt.elapsed, tt.total, tt.steps)

			if p.Ratio != tt.wantRatio {
				t.Errorf("Ratio = %v want %v", p.Ratio, tt.wantRatio)
			}
			if p.RemainingSeconds != tt.wantRemaining {
				t.Errorf("RemainingSeconds = %d want %d", p.RemainingSeconds, tt.wantRemaining)
			}
			if p.StepIndex != tt.wantIndex {
				t.Errorf("StepIndex = %d want %d", p.StepIndex, tt.wantIndex)
			}
			if p.StepText != tt.wantText {
				t.Errorf("StepText = %q want %q", p.StepText, tt.wantText)
			}
			if p.StepCount != len(tt.steps) {
				t.Errorf("StepCount = %d want %d", p.StepCount, len(tt.steps))
			}
		})
	}
}

func TestProjectStepIndexMonotonic(t *testing.T) {
	for _, total := range []int{1, 7, 10, 120, 301} {
		for stepCount := 1; stepCount <= 6; stepCount++ {
			steps := make([]string, stepCount)
			prev := 0
			for elapsed := 0; elapsed <= total; elapsed++ {
				idx := Project(elapsed, total, steps).StepIndex
				if idx < prev {
					t.Fatalf("total=%d steps=%d: index went from %d to %d at elapsed %d", total, stepCount, prev, idx, elapsed)
				}
				if idx < 0 || idx >= stepCount {
					t.Fatalf("total=%d steps=%d: index %d out of range at elapsed %d", total, stepCount, idx, elapsed)
				}
				prev = idx
			}
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{120, "02:00"},
		{305, "05:05"},
		{-3, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.expected {
			t.Errorf("FormatClock(%d) = %q want %q", tt.seconds, got, tt.expected)
		}
	}
}
