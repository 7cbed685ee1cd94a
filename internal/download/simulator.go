package download

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"interm.dev/interm/internal/config"
	"interm.dev/interm/internal/output"
)

// steps is the number of progress updates each download reports
const steps = 100

// Simulator runs fake downloads concurrently against a ProgressUI
type Simulator struct {
	ui       ProgressUI
	splog    *output.Splog
	names    []string
	maxDelay time.Duration
	delay    func(limit time.Duration) time.Duration
}

// NewSimulator creates a simulator with cfg.Count downloads named
// "Download 0" through "Download N-1"
func NewSimulator(ui ProgressUI, splog *output.Splog, cfg config.Config) *Simulator {
	names := make([]string, max(cfg.Count, 0))
	for i := range names {
		names[i] = fmt.Sprintf("Download %d", i)
	}
	return &Simulator{
		ui:       ui,
		splog:    splog,
		names:    names,
		maxDelay: cfg.MaxDelay,
		delay:    randomDelay,
	}
}

// Names returns the download names in row order
func (s *Simulator) Names() []string {
	return s.names
}

// Run starts every download, waits for all of them and tears the UI down.
// The first failing download cancels the rest. Finish is always called once
// the UI has started, so the terminal is restored even on error.
func (s *Simulator) Run(ctx context.Context) error {
	if len(s.names) == 0 {
		return fmt.Errorf("%w: no downloads", config.ErrInvalidConfig)
	}
	if err := s.ui.Start(s.names); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for idx := range s.names {
		delay := s.delay(s.maxDelay)
		s.splog.Debug("%s: step delay %s", s.names[idx], delay)
		g.Go(func() error {
			return s.download(gctx, idx, delay)
		})
	}

	runErr := g.Wait()
	finishErr := s.ui.Finish()
	return errors.Join(runErr, finishErr)
}

func (s *Simulator) download(ctx context.Context, idx int, delay time.Duration) error {
	for step := 0; step <= steps; step++ {
		if err := s.ui.Update(idx, float64(step)/steps); err != nil {
			return fmt.Errorf("%s: %w", s.names[idx], err)
		}
		if err := sleep(ctx, delay); err != nil {
			return err
		}
	}
	if err := s.ui.Complete(idx); err != nil {
		return fmt.Errorf("%s: %w", s.names[idx], err)
	}
	s.splog.Debug("%s: complete", s.names[idx])
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func randomDelay(limit time.Duration) time.Duration {
	if limit <= 0 {
		return 0
	}
	return rand.N(limit + 1)
}
