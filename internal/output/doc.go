// Package output provides console output for the interm CLI.
//
// It handles:
//   - Structured logging to the console and a rotated log file (Splog)
//   - Terminal detection (IsTTY)
//   - Text styles for the download demo (using lipgloss)
package output
