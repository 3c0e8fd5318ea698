package utils

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Spinner initializes the progress indicator.
type Spinner struct {
	mu         *sync.RWMutex
	delay      time.Duration
	writer     io.Writer
	message    string
	lastOutput string
	StopMsg    string
	hideCursor bool
	stopChan   chan struct{}
	doneChan   chan struct{}
}

// NewSpinner instantiates a new progress indicator writing to w.
func NewSpinner(w io.Writer, msg string, d time.Duration) *Spinner {
	return &Spinner{
		mu:         &sync.RWMutex{},
		delay:      d,
		writer:     w,
		message:    msg,
		hideCursor: true,
	}
}

// Start starts the progress indicator.
func (s *Spinner) Start() {
	s.mu.Lock()
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})
	s.mu.Unlock()

	if s.hideCursor && runtime.GOOS != "windows" {
		// hides the cursor
		fmt.Fprint(s.writer, "\033[?25l")
	}

	go func(stop, done chan struct{}) {
		defer close(done)
		for {
			for _, r := range `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏` {
				select {
				case <-stop:
					return
				default:
					s.mu.Lock()
					output := fmt.Sprintf("\r%s%s %c%s", s.message, SuccessColor, r, DefaultColor)
					fmt.Fprint(s.writer, output)
					s.lastOutput = output
					s.mu.Unlock()

					time.Sleep(s.delay)
				}
			}
		}
	}(s.stopChan, s.doneChan)
}

// SetMessage replaces the text shown in front of the spinner.
func (s *Spinner) SetMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = msg
}

// Write implements io.Writer. It clears the spinner line before passing p
// through, so log output can be interleaved with the progress indicator.
func (s *Spinner) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastOutput != "" {
		s.clear()
	}
	return s.writer.Write(p)
}

// Stop stops the progress indicator.
func (s *Spinner) Stop() {
	s.mu.RLock()
	stop, done := s.stopChan, s.doneChan
	s.mu.RUnlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear()
	s.RestoreCursor()
	if len(s.StopMsg) > 0 {
		fmt.Fprint(s.writer, s.StopMsg)
	}
	s.stopChan, s.doneChan = nil, nil
}

// RestoreCursor restores back the cursor visibility.
func (s *Spinner) RestoreCursor() {
	if s.hideCursor && runtime.GOOS != "windows" {
		// makes the cursor visible
		fmt.Fprint(s.writer, "\033[?25h")
	}
}

// clear deletes the last line. Caller must hold the the locker.
func (s *Spinner) clear() {
	n := utf8.RuneCountInString(s.lastOutput)
	if runtime.GOOS == "windows" {
		clearString := "\r" + strings.Repeat(" ", n) + "\r"
		fmt.Fprint(s.writer, clearString)
		s.lastOutput = ""
		return
	}
	fmt.Fprint(s.writer, "\r\033[K") // clear line
	s.lastOutput = ""
}
