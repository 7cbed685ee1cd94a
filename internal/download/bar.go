package download

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
)

const plainBarWidth = 50

// barRenderer turns a completion ratio in [0, 1] into a progress bar
type barRenderer interface {
	View(percent float64) string
}

// plainBar renders "[=====>    ] 42.0%"
type plainBar struct{}

func (plainBar) View(percent float64) string {
	percent = clamp(percent)
	bar := strings.Repeat("=", int(percent*float64(plainBarWidth-1))) + ">"
	return fmt.Sprintf("[%-*s] %.1f%%", plainBarWidth, bar, percent*100)
}

// gradientBar renders a bubbles progress bar
type gradientBar struct {
	mu    sync.Mutex
	model progress.Model
}

func newGradientBar() *gradientBar {
	return &gradientBar{
		model: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (b *gradientBar) View(percent float64) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.model.ViewAs(clamp(percent))
}

func newBarRenderer(fancy bool) barRenderer {
	if fancy {
		return newGradientBar()
	}
	return plainBar{}
}

// spinnerFrame picks a spinner frame for the given step
func spinnerFrame(step int) string {
	frames := spinner.Dot.Frames
	if step < 0 {
		step = -step
	}
	return frames[step%len(frames)]
}

func clamp(percent float64) float64 {
	switch {
	case percent < 0:
		return 0
	case percent > 1:
		return 1
	default:
		return percent
	}
}
