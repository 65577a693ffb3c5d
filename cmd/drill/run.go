package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hperssn/drill/internal/domain"
	"github.com/hperssn/drill/internal/runner"
)

var runCmd = &cobra.Command{
	Use:   "run <exercise-id>",
	Short: "Run a timed exercise",
	Long: `Run one exercise from the catalog. Type a command and press enter:

  p   pause or resume
  c   finish now (only while running)
  x   exit; confirm with y or stay with n`,
	Args: cobra.ExactArgs(1),
	RunE: runExercise,
}

func runExercise(cmd *cobra.Command, args []string) error {
	a, err := loadApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	exercise, err := a.catalog.Lookup(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	leave := make(chan domain.Outcome, 1)
	session := runner.New(ctx, exercise, runner.Options{
		UserID:       a.userID,
		TickInterval: a.cfg.TickInterval,
		SaveTimeout:  a.cfg.SaveTimeout,
		Sink:         a.repo,
		Navigator: runner.NavigatorFunc(func(outcome domain.Outcome) {
			leave <- outcome
		}),
		Logger: &a.log,
	})
	defer session.Close()

	screen := newScreen(cmd.OutOrStdout(), exercise)
	screen.header()

	events := session.Subscribe(16)
	input := readCommands(cmd.InOrStdin())
	screen.render(session.Snapshot())

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if ev.Type != runner.EventLeave {
				screen.render(ev.Snapshot)
			}
		case line, ok := <-input:
			if !ok {
				input = nil
				continue
			}
			dispatch(session, line)
		case outcome := <-leave:
			screen.finish(outcome)
			return nil
		case <-ctx.Done():
			screen.finish(domain.Outcome{Kind: domain.OutcomeCancelled})
			return nil
		}
	}
}

// dispatch maps a typed command onto the session's command surface.
func dispatch(session *runner.Session, line string) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "p", "pause", "resume":
		if session.Snapshot().Status == runner.StatusPaused {
			session.Resume()
		} else {
			session.Pause()
		}
	case "c", "done":
		session.Complete()
	case "x", "q", "exit":
		session.RequestExit()
	case "y", "yes":
		session.ConfirmExit()
	case "n", "no":
		session.CancelExit()
	}
}

func readCommands(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func pluralPoints(n int) string {
	if n == 1 {
		return "1 point"
	}
	return fmt.Sprintf("%d points", n)
}
