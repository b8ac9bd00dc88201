// Package slideshow drives the hero image carousel. The machine has
// two states: Autoplaying, which advances one image every interval,
// and Paused, entered on any user navigation and never left. The
// timer is a scoped resource: acquired on Start, released on Stop or
// on the transition to Paused.
package slideshow

import (
	"sync"
	"time"
)

// DefaultInterval is the autoplay advance period.
const DefaultInterval = 3 * time.Second

type State int

const (
	Autoplaying State = iota
	Paused
)

type Slideshow struct {
	mu       sync.Mutex
	count    int
	index    int
	state    State
	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}
}

// New creates a slideshow over imageCount images, Autoplaying at
// index 0. The timer does not run until Start.
func New(imageCount int) *Slideshow {
	return &Slideshow{
		count:    imageCount,
		state:    Autoplaying,
		interval: DefaultInterval,
	}
}

// NewWithInterval is New with a custom advance period.
func NewWithInterval(imageCount int, interval time.Duration) *Slideshow {
	s := New(imageCount)
	if interval > 0 {
		s.interval = interval
	}
	return s
}

// Start acquires the autoplay timer. It is a no-op when already
// started, already paused, or when there is nothing to rotate.
func (s *Slideshow) Start() {
	s.mu.Lock()
	if s.state != Autoplaying || s.ticker != nil || s.count < 2 {
		s.mu.Unlock()
		return
	}
	s.ticker = time.NewTicker(s.interval)
	s.done = make(chan struct{})
	ticker, done := s.ticker, s.done
	s.mu.Unlock()

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.Advance()
			}
		}
	}()
}

// Advance moves one image forward if still Autoplaying. Called by the
// timer; exported so tests can drive the machine without waiting.
func (s *Slideshow) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Autoplaying || s.count == 0 {
		return
	}
	s.index = (s.index + 1) % s.count
}

// Next is a user-initiated step forward. It jumps one image and
// pauses the machine for good.
func (s *Slideshow) Next() {
	s.jump(+1)
}

// Prev is a user-initiated step backward.
func (s *Slideshow) Prev() {
	s.jump(-1)
}

// GoTo is a user-initiated jump to a specific image. Out-of-range
// indexes are ignored but still pause the machine, matching indicator
// clicks on an image that just rotated away.
func (s *Slideshow) GoTo(i int) {
	s.mu.Lock()
	if i >= 0 && i < s.count {
		s.index = i
	}
	s.state = Paused
	s.mu.Unlock()
	s.releaseTimer()
}

func (s *Slideshow) jump(delta int) {
	s.mu.Lock()
	if s.count > 0 {
		s.index = ((s.index+delta)%s.count + s.count) % s.count
	}
	s.state = Paused
	s.mu.Unlock()
	s.releaseTimer()
}

// Index returns the currently active image.
func (s *Slideshow) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// State returns the current machine state.
func (s *Slideshow) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Count returns the number of images.
func (s *Slideshow) Count() int {
	return s.count
}

// Stop releases the timer. Safe to call multiple times and while
// never started; must be called when the owner goes away.
func (s *Slideshow) Stop() {
	s.releaseTimer()
}

func (s *Slideshow) releaseTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker != nil {
		s.ticker.Stop()
		close(s.done)
		s.ticker = nil
		s.done = nil
	}
}
