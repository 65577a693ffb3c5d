package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hperssn/drill/internal/clock"
	"github.com/hperssn/drill/internal/config"
	"github.com/hperssn/drill/internal/domain"
	"github.com/hperssn/drill/internal/runner"
)

func TestDispatch(t *testing.T) {
	s := runner.New(context.Background(), domain.Exercise{ID: "4", DurationSeconds: 300, Points: 15}, runner.Options{
		Clock: clock.NewManual(time.Now()),
	})
	defer s.Close()

	steps := []struct {
		line string
		want runner.Status
	}{
		{"p", runner.StatusPaused},
		{" P ", runner.StatusRunning},
		{"x", runner.StatusExitRequested},
		{"n", runner.StatusRunning},
		{"bogus", runner.StatusRunning},
		{"done", runner.StatusCompleted},
	}
	for _, step := range steps {
		dispatch(s, step.line)
		if got := s.Snapshot().Status; got != step.want {
			t.Fatalf("after %q status = %s want %s", step.line, got, step.want)
		}
	}
}

func TestStatusLine(t *testing.T) {
	snap := runner.Snapshot{
		Status:       runner.StatusRunning,
		TotalSeconds: 10,
		Progress:     domain.Project(4, 10, []string{"Mark 20 meters.", "Sprint.", "Walk back."}),
	}

	line := statusLine(snap)

	for _, want := range []string{"00:04", "-00:06", "40%", "Step 2 of 3: Sprint."} {
		if !strings.Contains(line, want) {
			t.Errorf("status line %q missing %q", line, want)
		}
	}

	snap.Status = runner.StatusExitRequested
	if !strings.Contains(statusLine(snap), "[y/n]") {
		t.Errorf("exit prompt missing from %q", statusLine(snap))
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{0, "[" + strings.Repeat("-", barWidth) + "]"},
		{0.5, "[" + strings.Repeat("#", barWidth/2) + strings.Repeat("-", barWidth/2) + "]"},
		{1, "[" + strings.Repeat("#", barWidth) + "]"},
		{1.5, "[" + strings.Repeat("#", barWidth) + "]"},
	}
	for _, tt := range tests {
		if got := progressBar(tt.ratio); got != tt.want {
			t.Errorf("progressBar(%v) = %q want %q", tt.ratio, got, tt.want)
		}
	}
}

func TestScreenSkipsRepeatedLines(t *testing.T) {
	var out bytes.Buffer
	sc := newScreen(&out, domain.Exercise{Title: "Plank"})
	snap := runner.Snapshot{Status: runner.StatusPaused, Progress: domain.Project(3, 10, nil)}

	sc.render(snap)
	sc.render(snap)

	if got := strings.Count(out.String(), "\n"); got != 1 {
		t.Fatalf("rendered %d lines want 1: %q", got, out.String())
	}
}

func TestScreenFinish(t *testing.T) {
	var out bytes.Buffer
	sc := newScreen(&out, domain.Exercise{})

	sc.finish(domain.Outcome{Kind: domain.OutcomeCompleted, PointsEarned: 25})
	sc.finish(domain.Outcome{Kind: domain.OutcomeCancelled})

	if !strings.Contains(out.String(), "+25 points") {
		t.Errorf("missing points in %q", out.String())
	}
	if !strings.Contains(out.String(), "abandoned") {
		t.Errorf("missing cancellation in %q", out.String())
	}
}

func TestResolveUserID(t *testing.T) {
	log := zerolog.Nop()

	tests := []struct {
		name    string
		flag    string
		cfgUser string
		envUser string
		want    string
	}{
		{name: "flag wins", flag: "f", cfgUser: "c", envUser: "e", want: "f"},
		{name: "config next", cfgUser: "c", envUser: "e", want: "c"},
		{name: "login name", envUser: "e", want: "e"},
		{name: "dev fallback", want: devUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("USER", tt.envUser)
			cfg := config.DefaultConfig()
			cfg.UserID = tt.cfgUser

			if got := resolveUserID(tt.flag, cfg, log); got != tt.want {
				t.Fatalf("resolveUserID() = %q want %q", got, tt.want)
			}
		})
	}
}
