package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"interm.dev/interm/block"
	"interm.dev/interm/internal/output"
)

var (
	// ErrNotStarted is returned when a TTYProgress is used before Start
	ErrNotStarted = errors.New("progress UI not started")

	// ErrFinished is returned when a TTYProgress is used after Finish
	ErrFinished = errors.New("progress UI already finished")
)

// TTYProgress renders one rewritable row per download (TTY).
//
// Producers only send rendered rows through a block.Reporter; a single
// consumer goroutine started by Start owns the Block until Finish.
type TTYProgress struct {
	splog *output.Splog
	out   io.Writer
	bar   barRenderer

	names    []string
	block    *block.Block
	reporter *block.Reporter

	ctx        context.Context
	cancel     context.CancelFunc
	done       chan struct{}
	consumeErr error
	completed  atomic.Int32
	finished   atomic.Bool
}

// NewTTYProgress creates a new TTY progress UI writing to out
func NewTTYProgress(splog *output.Splog, out io.Writer, fancy bool) *TTYProgress {
	return &TTYProgress{
		splog: splog,
		out:   out,
		bar:   newBarRenderer(fancy),
	}
}

func (p *TTYProgress) Start(names []string) error {
	lines := make([]*block.Line, len(names))
	for i, name := range names {
		lines[i] = block.NewLine(output.DimStyle.Render("○") + " " + name)
	}

	b, err := block.New(lines, block.WithOutput(p.out))
	if err != nil {
		return fmt.Errorf("failed to print download rows: %w", err)
	}
	if err := b.HideCursor(); err != nil {
		return fmt.Errorf("failed to hide cursor: %w", err)
	}

	p.names = names
	p.block = b
	p.reporter = block.NewReporter(len(names))
	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.done = make(chan struct{})

	// Console logging would move the cursor under the block
	p.splog.SetQuiet(true)

	go func() {
		defer close(p.done)
		defer p.cancel()
		p.consumeErr = b.Consume(p.ctx, p.reporter.Updates())
	}()

	return nil
}

func (p *TTYProgress) Update(idx int, percent float64) error {
	if p.block == nil {
		return ErrNotStarted
	}
	if idx < 0 || idx >= len(p.names) {
		return &block.IndexError{Index: idx, Len: len(p.names)}
	}

	step := int(clamp(percent) * 100)
	content := fmt.Sprintf("%s %s: %s",
		output.SpinnerStyle.Render(spinnerFrame(step)),
		p.names[idx],
		p.bar.View(percent),
	)
	return p.send(idx, content)
}

func (p *TTYProgress) Complete(idx int) error {
	if p.block == nil {
		return ErrNotStarted
	}
	if idx < 0 || idx >= len(p.names) {
		return &block.IndexError{Index: idx, Len: len(p.names)}
	}
	if err := p.send(idx, output.ColorBlue("✓ "+p.names[idx]+": Complete")); err != nil {
		return err
	}
	p.completed.Add(1)
	return nil
}

func (p *TTYProgress) send(idx int, content string) error {
	// The reporter channel is closed once finished
	if p.finished.Load() {
		return ErrFinished
	}
	if err := p.reporter.ReportContext(p.ctx, idx, content); err != nil {
		<-p.done
		if p.consumeErr != nil {
			return p.consumeErr
		}
		return err
	}
	return nil
}

// Finish waits for pending rows to be drawn, clears the block and prints a
// summary on its first row with the cursor restored. After a rendering
// error the rows are left as they are and a newline is written so the shell
// prompt starts on a fresh row. Calls after the first do nothing.
func (p *TTYProgress) Finish() error {
	if p.block == nil || p.finished.Swap(true) {
		return nil
	}

	p.reporter.Close()
	<-p.done
	p.splog.SetQuiet(false)

	err := p.consumeErr
	if err == nil {
		err = p.block.ClearLines()
	}
	if err == nil {
		err = p.block.GotoIdx(0)
	}
	if err != nil {
		_, _ = fmt.Fprintln(p.out)
		_ = p.block.Close()
		p.splog.Debug("download rows left on screen: %v", err)
		return fmt.Errorf("failed to render progress: %w", err)
	}

	if err := p.block.Close(); err != nil {
		return fmt.Errorf("failed to show cursor: %w", err)
	}

	completed := int(p.completed.Load())
	if completed == len(p.names) {
		p.splog.Info(output.ColorCyan("All downloads complete!"))
	} else {
		p.splog.Info("Completed: %d, Interrupted: %d", completed, len(p.names)-completed)
	}
	return nil
}
