package block

// Line is a single interactive terminal row.
//
// The index is assigned by the Block that adopts the Line and doubles as the
// row offset from the block's first row. Content mirrors what the Block last
// rendered on that row; it is only changed through Block operations. Content
// must fit on one row: a newline or carriage return is rejected with
// ErrMultilineContent.
type Line struct {
	index   int
	content string
}

// NewLine creates a Line with the given initial content.
func NewLine(content string) *Line {
	return &Line{content: content}
}

// Index returns the line's position within its Block.
func (l *Line) Index() int {
	return l.index
}

// Content returns the text currently rendered on the line.
func (l *Line) Content() string {
	return l.content
}

func (l *Line) String() string {
	return l.content
}
