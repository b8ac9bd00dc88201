package slideshow_test

import (
	"testing"
	"time"

	"go-pestcontrol-web/internal/slideshow"

	"github.com/stretchr/testify/assert"
)

func TestInitialState(t *testing.T) {
	s := slideshow.New(4)
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, slideshow.Autoplaying, s.State())
}

func TestAutomaticAdvanceWraps(t *testing.T) {
	s := slideshow.New(4)

	s.Advance()
	s.Advance()
	s.Advance()
	assert.Equal(t, 3, s.Index(), "after 3 advances index must be (0+3) mod 4")

	s.Advance()
	assert.Equal(t, 0, s.Index(), "advance past the last image wraps to 0")
}

func TestManualNavigationPausesForGood(t *testing.T) {
	s := slideshow.New(4)

	s.Next()
	assert.Equal(t, 1, s.Index(), "next moves exactly one step")
	assert.Equal(t, slideshow.Paused, s.State())

	// No further automatic advance once paused
	s.Advance()
	s.Advance()
	assert.Equal(t, 1, s.Index())
}

func TestPrevWrapsBackward(t *testing.T) {
	s := slideshow.New(4)
	s.Prev()
	assert.Equal(t, 3, s.Index())
	assert.Equal(t, slideshow.Paused, s.State())
}

func TestGoTo(t *testing.T) {
	s := slideshow.New(4)

	s.GoTo(2)
	assert.Equal(t, 2, s.Index())
	assert.Equal(t, slideshow.Paused, s.State())

	// Out of range: index unchanged, still pauses
	s2 := slideshow.New(4)
	s2.GoTo(9)
	assert.Equal(t, 0, s2.Index())
	assert.Equal(t, slideshow.Paused, s2.State())
}

func TestTimerDrivesAdvance(t *testing.T) {
	s := slideshow.NewWithInterval(3, 10*time.Millisecond)
	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return s.Index() > 0
	}, time.Second, 5*time.Millisecond)
}

func TestStopIsIdempotent(t *testing.T) {
	s := slideshow.NewWithInterval(3, 10*time.Millisecond)
	s.Start()
	s.Stop()
	s.Stop()

	// Stopping without ever starting must also be safe
	s2 := slideshow.New(3)
	s2.Stop()
}

func TestManualNavigationReleasesTimer(t *testing.T) {
	s := slideshow.NewWithInterval(3, 10*time.Millisecond)
	s.Start()

	s.Next()
	idx := s.Index()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, idx, s.Index(), "no tick may land after the pause")
}

func TestSingleImageNeverRotates(t *testing.T) {
	s := slideshow.New(1)
	s.Start() // no-op: nothing to rotate
	s.Advance()
	assert.Equal(t, 0, s.Index())
	s.Stop()
}
