package block

import "strconv"

// VT100 control sequences written by a Block.
const (
	csi            = "\x1b["
	seqClearLine   = csi + "2K"
	seqCursorHide  = csi + "?25l"
	seqCursorShow  = csi + "?25h"
	carriageReturn = "\r"
)

// cursorNextLine moves the cursor down n rows to column 0 (CNL).
func cursorNextLine(n int) string {
	return csi + strconv.Itoa(n) + "E"
}

// cursorPrevLine moves the cursor up n rows to column 0 (CPL).
func cursorPrevLine(n int) string {
	return csi + strconv.Itoa(n) + "F"
}

// moveSequence returns the sequence that moves the cursor by delta rows.
// A zero delta needs no output.
func moveSequence(delta int) string {
	switch {
	case delta > 0:
		return cursorNextLine(delta)
	case delta < 0:
		return cursorPrevLine(-delta)
	default:
		return ""
	}
}

// rewriteSequence erases the current row and writes content from column 0,
// leaving the cursor back at column 0.
func rewriteSequence(content string) string {
	return seqClearLine + carriageReturn + content + carriageReturn
}
