package composer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lexph/scribepad/hardware/keypad"
	"github.com/lexph/scribepad/hardware/lcd"
	"github.com/lexph/scribepad/hardware/timer"
	"github.com/lexph/scribepad/log2"
)

type renv struct {
	latch  *keypad.Latch
	state  *State
	screen *lcd.Screen
	dev    *lcd.MockDevicer
	ref    *Refresher
}

func newRenv(t testing.TB) *renv {
	e := &renv{latch: new(keypad.Latch), state: NewState(testPalette(t))}
	e.screen, e.dev = lcd.NewMockScreen()
	ind := NewIndicator(e.latch, e.screen)
	e.ref = NewRefresher(new(timer.Flag), ind, e.state, e.screen, log2.NewTest(t, log2.LDebug))
	return e
}

func TestServiceRendersSelectedColumn(t *testing.T) {
	t.Parallel()

	e := newRenv(t)
	e.state.Apply(keypad.Up)
	e.state.Apply(keypad.Up) // 'b' at column 0
	e.ref.Service()
	assert.Equal(t, "b               ", e.dev.Line(lineRow))

	// moving the cursor renders the new column, earlier cells persist
	e.state.Apply(keypad.Right)
	e.state.Apply(keypad.Up) // 'a' at column 1
	e.ref.Service()
	assert.Equal(t, "ba              ", e.dev.Line(lineRow))
}

func TestServiceBlankDrawsNothing(t *testing.T) {
	t.Parallel()

	e := newRenv(t)
	// scribble where the cursor cell would render: a blank cell is a
	// no-op, not an erase
	e.dev.CursorYX(lineRow+1, 1)
	e.dev.Write([]byte{'#'})
	e.ref.Service()
	assert.Equal(t, "#               ", e.dev.Line(lineRow))
}

func TestHeldUpRepeatsButIndicatorDrawsOnce(t *testing.T) {
	t.Parallel()

	e := newRenv(t)
	u := NewUpdater(e.latch, e.state, 500*time.Millisecond, log2.NewTest(t, log2.LDebug))

	e.latch.Publish(keypad.Up)
	e.ref.Service() // first transition draws the glyph
	u.Tick()
	u.Tick()
	u.Tick()

	// scribble next to the glyph: held steady, further services must
	// not touch the bottom row
	e.dev.CursorYX(glyphRow+1, 16)
	e.dev.Write([]byte{'#'})
	e.ref.Service()
	assert.Equal(t, byte('c'), e.state.Snapshot().Line[0], "3 ticks held = 3 increments")
	assert.Equal(t, "  ^            #", e.dev.Line(glyphRow))
}

func TestRefresherRun(t *testing.T) {
	t.Parallel()

	e := newRenv(t)
	slow := timer.NewPeriodic(time.Millisecond)
	ind := NewIndicator(e.latch, e.screen)
	ref := NewRefresher(&slow.Flag, ind, e.state, e.screen, log2.NewTest(t, log2.LDebug))

	e.state.Apply(keypad.Up)
	go slow.Run()
	done := make(chan struct{})
	go func() {
		ref.Run()
		close(done)
	}()

	deadline := time.After(time.Second)
	for e.dev.Cell(lineRow, 0) != 'a' {
		select {
		case <-deadline:
			t.Fatal("refresher did not render in time")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	ref.Stop()
	// Stop waits for the Run goroutine: afterwards nothing renders
	e.state.Apply(keypad.Up) // 'b' at column 0
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, byte('a'), e.dev.Cell(lineRow, 0))
	<-done
	slow.Stop()
}
