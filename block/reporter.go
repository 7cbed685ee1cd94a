package block

import (
	"context"
	"sync"
)

// Update asks the owning goroutine to rewrite line Index with Content.
type Update struct {
	Index   int
	Content string
}

// Reporter lets many goroutines hand updates to the single goroutine that
// drives a Block.
type Reporter struct {
	updates chan Update
	once    sync.Once
}

// NewReporter creates a Reporter whose channel buffers up to buffer updates.
func NewReporter(buffer int) *Reporter {
	return &Reporter{
		updates: make(chan Update, buffer),
	}
}

// Updates returns the channel for receiving updates
func (r *Reporter) Updates() <-chan Update {
	return r.updates
}

// Report queues new content for line idx. It blocks while the buffer is
// full and must not be called after Close.
func (r *Reporter) Report(idx int, content string) {
	r.updates <- Update{Index: idx, Content: content}
}

// ReportContext is Report that gives up when ctx is done, so producers do
// not block forever on a consumer that has stopped.
func (r *Reporter) ReportContext(ctx context.Context, idx int, content string) error {
	select {
	case r.updates <- Update{Index: idx, Content: content}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes the update channel (safe to call multiple times)
func (r *Reporter) Close() {
	r.once.Do(func() {
		close(r.updates)
	})
}

// Consume applies updates in arrival order, returning the cursor to its
// resting row after each one. It returns nil once updates is closed,
// ctx.Err() if ctx is done first, or the first error from UpdateLine.
//
// Consume must run on the goroutine that owns the Block.
func (b *Block) Consume(ctx context.Context, updates <-chan Update) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case u, ok := <-updates:
			if !ok {
				return nil
			}
			if err := b.UpdateLine(u.Index, u.Content, true); err != nil {
				return err
			}
		}
	}
}
