package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// Terminal color codes.
const (
	DefaultColor = "\x1b[39m"
	SuccessColor = "\x1b[92m"
	ErrorColor   = "\x1b[31m"
)

const defaultBarWidth = 30

// Progress renders the completion of a filter run on a terminal. When the
// output is not a terminal it prints a single line per completed run instead
// of redrawing.
type Progress struct {
	mu       sync.Mutex
	out      io.Writer
	message  string
	width    int
	animated bool
	percent  int
	stopChan chan struct{}
	done     chan struct{}
}

// NewProgress instantiates a progress indicator writing to stderr.
func NewProgress(message string) *Progress {
	fd := int(os.Stderr.Fd())
	p := &Progress{
		out:      os.Stderr,
		message:  message,
		width:    defaultBarWidth,
		animated: term.IsTerminal(fd),
	}
	if w, _, err := term.GetSize(fd); err == nil {
		// Leave room for the message, the brackets and the percentage.
		if bw := w - len(message) - 12; bw < p.width && bw > 0 {
			p.width = bw
		}
	}
	return p
}

// Start starts redrawing the indicator.
func (p *Progress) Start() {
	p.stopChan = make(chan struct{})
	p.done = make(chan struct{})
	if !p.animated {
		close(p.done)
		return
	}

	go func() {
		defer close(p.done)
		for {
			for _, r := range `-\|/` {
				select {
				case <-p.stopChan:
					return
				default:
					p.mu.Lock()
					fmt.Fprintf(p.out, "\r%s %s%s %c%s", p.message, SuccessColor, p.bar(), r, DefaultColor)
					p.mu.Unlock()
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// Update records the completed percentage. It matches the
// pixelfilter.ProgressFunc signature.
func (p *Progress) Update(percent int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.percent = percent
}

// Stop stops the indicator and prints the final state.
func (p *Progress) Stop() {
	close(p.stopChan)
	<-p.done

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.animated {
		fmt.Fprintf(p.out, "\r%s %s%s%s\n", p.message, SuccessColor, p.bar(), DefaultColor)
		return
	}
	fmt.Fprintf(p.out, "%s %d%%\n", p.message, p.percent)
}

// bar draws the progress bar for the current percentage.
func (p *Progress) bar() string {
	return RenderBar(p.percent, p.width)
}

// RenderBar draws a bar of the given width filled up to percent.
func RenderBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return fmt.Sprintf("[%s%s] %3d%%", strings.Repeat("=", filled), strings.Repeat(" ", width-filled), percent)
}
