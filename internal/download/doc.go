// Package download simulates concurrent downloads and renders their progress.
//
// Every download runs on its own goroutine and reports through a ProgressUI.
// On a terminal the UI is backed by a block.Block whose single consumer
// goroutine is the only writer to stdout; elsewhere progress is logged line
// by line.
package download
