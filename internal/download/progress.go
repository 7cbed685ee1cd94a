package download

import (
	"os"
	"sync"

	"interm.dev/interm/internal/config"
	"interm.dev/interm/internal/output"
)

// ProgressUI defines the interface for download progress display.
//
// Update and Complete may be called concurrently for different indexes.
// Finish must only be called once every Update and Complete has returned.
type ProgressUI interface {
	// Start initializes the UI with one row per download
	Start(names []string) error
	// Update reports a completion ratio in [0, 1] for download idx
	Update(idx int, percent float64) error
	// Complete marks download idx as finished
	Complete(idx int) error
	// Finish tears the UI down and prints a summary
	Finish() error
}

// NewProgressUI creates the appropriate progress UI based on TTY availability
func NewProgressUI(splog *output.Splog, cfg config.Config) ProgressUI {
	if output.IsTTY() {
		return NewTTYProgress(splog, os.Stdout, cfg.Fancy)
	}
	return NewSimpleProgress(splog)
}

// milestoneStep is the completion interval SimpleProgress logs at
const milestoneStep = 25

// SimpleProgress prints progress line by line (non-TTY)
type SimpleProgress struct {
	splog *output.Splog

	mu         sync.Mutex
	names      []string
	milestones []int
	completed  int
}

// NewSimpleProgress creates a new simple progress UI
func NewSimpleProgress(splog *output.Splog) *SimpleProgress {
	return &SimpleProgress{splog: splog}
}

func (p *SimpleProgress) Start(names []string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.names = names
	p.milestones = make([]int, len(names))
	p.completed = 0
	p.splog.Info("Starting %d downloads", len(names))
	return nil
}

func (p *SimpleProgress) Update(idx int, percent float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if idx < 0 || idx >= len(p.names) {
		return nil
	}

	reached := int(clamp(percent)*100) / milestoneStep * milestoneStep
	if reached > p.milestones[idx] && reached < 100 {
		p.milestones[idx] = reached
		p.splog.Info("  ⋯ %s: %d%%", p.names[idx], reached)
	}
	return nil
}

func (p *SimpleProgress) Complete(idx int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if idx < 0 || idx >= len(p.names) {
		return nil
	}

	p.milestones[idx] = 100
	p.completed++
	p.splog.Info("  ✓ %s: Complete", p.names[idx])
	return nil
}

func (p *SimpleProgress) Finish() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.splog.Newline()
	if p.completed == len(p.names) {
		p.splog.Info("All downloads complete!")
	} else {
		p.splog.Info("Completed: %d, Interrupted: %d", p.completed, len(p.names)-p.completed)
	}
	return nil
}
