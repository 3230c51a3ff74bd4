package keypad

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lexph/scribepad/hardware/adc"
	"github.com/lexph/scribepad/log2"
)

func TestLatchPublishSnapshot(t *testing.T) {
	t.Parallel()

	latch := new(Latch)
	assert.Equal(t, Snapshot{Button: None, Pressed: false}, latch.Snapshot())

	latch.Publish(Up)
	assert.Equal(t, Snapshot{Button: Up, Pressed: true}, latch.Snapshot())

	latch.Publish(None)
	snap := latch.Snapshot()
	assert.False(t, snap.Pressed)
	assert.Equal(t, None, snap.Button)
}

func TestLatchTransitionAck(t *testing.T) {
	t.Parallel()

	latch := new(Latch)
	latch.Publish(Left)

	b, changed := latch.Transition()
	assert.Equal(t, Left, b)
	assert.True(t, changed)

	// not acknowledged yet: still reported as changed
	_, changed = latch.Transition()
	assert.True(t, changed)

	latch.Ack(Left)
	_, changed = latch.Transition()
	assert.False(t, changed)

	latch.Publish(None)
	b, changed = latch.Transition()
	assert.Equal(t, None, b)
	assert.True(t, changed)
}

func TestSamplerPublish(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	conv := &adc.MockConverter{}
	latch := new(Latch)
	dec := NewDecoder(Thresholds{})
	s := NewSampler(conv, dec, latch, 10*time.Millisecond, log)

	conv.Set(dec.Mid(Down))
	s.Sample()
	assert.Equal(t, Snapshot{Button: Down, Pressed: true}, latch.Snapshot())

	conv.Set(dec.Mid(None))
	s.Sample()
	assert.Equal(t, Snapshot{Button: None, Pressed: false}, latch.Snapshot())
}

func TestSamplerBoundedWait(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	// conversion never completes within the period: sample must be
	// dropped silently, previous state untouched
	conv := &adc.MockConverter{ReadyAfter: 1 << 30}
	latch := new(Latch)
	dec := NewDecoder(Thresholds{})
	s := NewSampler(conv, dec, latch, time.Millisecond, log)

	latch.Publish(Up)
	conv.Set(dec.Mid(Left))
	s.Sample()
	assert.Equal(t, Snapshot{Button: Up, Pressed: true}, latch.Snapshot())
}

func TestSamplerRunStop(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	conv := &adc.MockConverter{}
	latch := new(Latch)
	dec := NewDecoder(Thresholds{})
	conv.Set(dec.Mid(Right))
	s := NewSampler(conv, dec, latch, time.Millisecond, log)

	done := make(chan struct{})
	go func() {
		s.Run()
		close(done)
	}()
	deadline := time.After(time.Second)
	for latch.Snapshot().Button != Right {
		select {
		case <-deadline:
			t.Fatal("sampler did not publish in time")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	s.Stop()
	// Stop waits for the Run goroutine: afterwards nothing samples
	conv.Set(dec.Mid(Left))
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, Right, latch.Snapshot().Button)
	<-done
}
