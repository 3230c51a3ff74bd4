package composer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lexph/scribepad/hardware/keypad"
	"github.com/lexph/scribepad/log2"
)

func TestUpdaterIdle(t *testing.T) {
	t.Parallel()

	latch := new(keypad.Latch)
	s := NewState(testPalette(t))
	u := NewUpdater(latch, s, 500*time.Millisecond, log2.NewTest(t, log2.LDebug))

	u.Tick()
	snap := s.Snapshot()
	assert.Equal(t, byte(Blank), snap.Line[0])
	assert.Equal(t, uint8(0), snap.Cursor)
}

func TestUpdaterAutoRepeat(t *testing.T) {
	t.Parallel()

	latch := new(keypad.Latch)
	s := NewState(testPalette(t))
	u := NewUpdater(latch, s, 500*time.Millisecond, log2.NewTest(t, log2.LDebug))

	// held Up across 3 ticks applies 3 steps: blank->a, a->b, b->c
	latch.Publish(keypad.Up)
	for i := 0; i < 3; i++ {
		u.Tick()
	}
	assert.Equal(t, byte('c'), s.Snapshot().Line[0])

	// release stops the repeat
	latch.Publish(keypad.None)
	u.Tick()
	assert.Equal(t, byte('c'), s.Snapshot().Line[0])
}

func TestUpdaterRunStop(t *testing.T) {
	t.Parallel()

	latch := new(keypad.Latch)
	s := NewState(testPalette(t))
	u := NewUpdater(latch, s, time.Millisecond, log2.NewTest(t, log2.LDebug))

	latch.Publish(keypad.Right)
	done := make(chan struct{})
	go func() {
		u.Run()
		close(done)
	}()
	deadline := time.After(time.Second)
	for s.Snapshot().Cursor == 0 {
		select {
		case <-deadline:
			t.Fatal("updater did not apply in time")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	u.Stop()
	// Stop waits for the Run goroutine: afterwards ticks stop applying
	cursor := s.Snapshot().Cursor
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, cursor, s.Snapshot().Cursor)
	<-done
}
