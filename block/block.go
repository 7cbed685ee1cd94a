package block

import (
	"io"
	"os"
	"strings"
)

// Block is an ordered set of Lines printed on consecutive terminal rows,
// together with the authoritative position of the terminal cursor relative
// to the first row.
//
// The resting offset is the row just below the last line. New, ClearLines
// and GotoEnd leave the cursor there; UpdateElement with moveCursorBack
// returns it to whichever row it was on before the call.
type Block struct {
	lines        []*Line
	cursorRow    int
	out          io.Writer
	cursorHidden bool
}

// Option configures a Block
type Option func(*Block)

// WithOutput sets the stream the Block writes to. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(b *Block) {
		b.out = w
	}
}

// New adopts lines, assigns each its position as index and prints every
// line followed by a newline. The cursor ends on the row below the last
// line. The Block takes ownership of the Lines; passing a Line to a second
// Block reassigns its index.
//
// Each Line may appear once and hold a single row of content. Indexes are
// assigned only after every row was printed, so a failed New leaves the
// Lines as they were.
func New(lines []*Line, opts ...Option) (*Block, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyBlock
	}
	seen := make(map[*Line]struct{}, len(lines))
	for _, line := range lines {
		if line == nil {
			return nil, ErrNilLine
		}
		if _, ok := seen[line]; ok {
			return nil, ErrDuplicateLine
		}
		seen[line] = struct{}{}
		if err := checkContent(line.content); err != nil {
			return nil, err
		}
	}

	b := &Block{
		lines: make([]*Line, len(lines)),
		out:   os.Stdout,
	}
	for _, opt := range opts {
		opt(b)
	}

	for idx, line := range lines {
		if err := b.write("print line", line.content+"\n"); err != nil {
			return nil, err
		}
		b.cursorRow = idx + 1
	}

	for idx, line := range lines {
		line.index = idx
		b.lines[idx] = line
	}
	return b, nil
}

// Len returns the number of lines in the block.
func (b *Block) Len() int {
	return len(b.lines)
}

// Lines returns the block's lines in row order.
func (b *Block) Lines() []*Line {
	lines := make([]*Line, len(b.lines))
	copy(lines, b.lines)
	return lines
}

// Line returns the line at idx.
func (b *Block) Line(idx int) (*Line, error) {
	if err := b.checkIndex(idx); err != nil {
		return nil, err
	}
	return b.lines[idx], nil
}

// CursorRow returns the row the cursor is on, relative to the first line.
// A value equal to Len means the cursor is at the resting offset.
func (b *Block) CursorRow() int {
	return b.cursorRow
}

// UpdateElement rewrites line with content. The row is erased before the
// new content is written so that shorter content leaves no trailing
// characters. With moveCursorBack the cursor returns to the row it was on
// before the call; otherwise it stays on the updated row.
//
// line must have been adopted by this Block; anything else is rejected with
// an *IndexError before any output is written. content must not contain a
// newline or carriage return, otherwise ErrMultilineContent is returned and
// nothing is written.
func (b *Block) UpdateElement(line *Line, content string, moveCursorBack bool) error {
	if err := b.checkMember(line); err != nil {
		return err
	}
	return b.update(line.index, content, moveCursorBack)
}

// UpdateLine is UpdateElement addressed by index.
func (b *Block) UpdateLine(idx int, content string, moveCursorBack bool) error {
	if err := b.checkIndex(idx); err != nil {
		return err
	}
	return b.update(idx, content, moveCursorBack)
}

func (b *Block) update(idx int, content string, moveCursorBack bool) error {
	if err := checkContent(content); err != nil {
		return err
	}
	prev := b.cursorRow

	if err := b.moveTo(idx); err != nil {
		return err
	}
	if err := b.write("update line", rewriteSequence(content)); err != nil {
		return err
	}
	b.lines[idx].content = content

	if moveCursorBack {
		return b.moveTo(prev)
	}
	return nil
}

// GotoIdx moves the cursor to the row of line idx without changing content.
// An out of range idx leaves the cursor where it was.
func (b *Block) GotoIdx(idx int) error {
	if err := b.checkIndex(idx); err != nil {
		return err
	}
	return b.moveTo(idx)
}

// GotoElement moves the cursor to the row of line.
func (b *Block) GotoElement(line *Line) error {
	if err := b.checkMember(line); err != nil {
		return err
	}
	return b.moveTo(line.index)
}

// GotoEnd moves the cursor to the resting offset below the last line.
func (b *Block) GotoEnd() error {
	return b.moveTo(len(b.lines))
}

// ClearLine erases the row under the cursor without moving it. If the
// cursor is on a line, that line's content becomes empty.
func (b *Block) ClearLine() error {
	if err := b.write("clear line", seqClearLine+carriageReturn); err != nil {
		return err
	}
	if b.cursorRow < len(b.lines) {
		b.lines[b.cursorRow].content = ""
	}
	return nil
}

// ClearLines erases every line from top to bottom and returns the cursor to
// the resting offset. On failure, lines above the failing row are already
// cleared and CursorRow reports the last row actually reached.
func (b *Block) ClearLines() error {
	for idx := range b.lines {
		if err := b.moveTo(idx); err != nil {
			return err
		}
		if err := b.ClearLine(); err != nil {
			return err
		}
	}
	return b.GotoEnd()
}

// HideCursor makes the terminal cursor invisible until ShowCursor or Close.
func (b *Block) HideCursor() error {
	if err := b.write("hide cursor", seqCursorHide); err != nil {
		return err
	}
	b.cursorHidden = true
	return nil
}

// ShowCursor makes the terminal cursor visible.
func (b *Block) ShowCursor() error {
	if err := b.write("show cursor", seqCursorShow); err != nil {
		return err
	}
	b.cursorHidden = false
	return nil
}

// Close restores cursor visibility if the Block hid it. It does not move
// the cursor; callers that left it inside the block should call GotoEnd
// first. Close is safe to call more than once.
func (b *Block) Close() error {
	if !b.cursorHidden {
		return nil
	}
	return b.ShowCursor()
}

// moveTo emits the relative move from the current row to target and commits
// the new row only once the sequence was written.
func (b *Block) moveTo(target int) error {
	delta := target - b.cursorRow
	if delta == 0 {
		return nil
	}
	if err := b.write("move cursor", moveSequence(delta)); err != nil {
		return err
	}
	b.cursorRow = target
	return nil
}

func (b *Block) write(op, s string) error {
	if _, err := io.WriteString(b.out, s); err != nil {
		return &CursorError{Op: op, Err: err}
	}
	return nil
}

func (b *Block) checkIndex(idx int) error {
	if idx < 0 || idx >= len(b.lines) {
		return &IndexError{Index: idx, Len: len(b.lines)}
	}
	return nil
}

func (b *Block) checkMember(line *Line) error {
	if line == nil {
		return &IndexError{Index: -1, Len: len(b.lines)}
	}
	if err := b.checkIndex(line.index); err != nil {
		return err
	}
	if b.lines[line.index] != line {
		return &IndexError{Index: line.index, Len: len(b.lines), Foreign: true}
	}
	return nil
}

// checkContent rejects content that would move the terminal cursor to
// another row when printed.
func checkContent(content string) error {
	if strings.ContainsAny(content, "\r\n") {
		return ErrMultilineContent
	}
	return nil
}
