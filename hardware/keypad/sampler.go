package keypad

import (
	"time"

	"github.com/temoto/alive/v2"
	atomic_clock "github.com/temoto/atomic_clock"

	"github.com/lexph/scribepad/hardware/adc"
	"github.com/lexph/scribepad/log2"
)

const conversionPoll = 20 * time.Microsecond

// Sampler is the fast periodic task: trigger one conversion, wait
// bounded for completion, decode, publish. It is the only writer of
// the latch's current/pressed fields and runs as a single goroutine,
// which is what makes it non-reentrant.
type Sampler struct {
	Log    *log2.Log
	alive  *alive.Alive
	conv   adc.Converter
	dec    *Decoder
	latch  *Latch
	period time.Duration

	// last successful sample commit, observability only
	sampledAt *atomic_clock.Clock
}

func NewSampler(conv adc.Converter, dec *Decoder, latch *Latch, period time.Duration, log *log2.Log) *Sampler {
	return &Sampler{
		Log:       log,
		alive:     alive.NewAlive(),
		conv:      conv,
		dec:       dec,
		latch:     latch,
		period:    period,
		sampledAt: atomic_clock.New(),
	}
}

func (self *Sampler) Run() {
	self.alive.Add(1)
	defer self.alive.Done()
	tmr := time.NewTicker(self.period)
	stopch := self.alive.StopChan()

	for self.alive.IsRunning() {
		select {
		case <-tmr.C:
			self.Sample()
		case <-stopch:
			tmr.Stop()
			return
		}
	}
}

func (self *Sampler) Stop() {
	self.alive.Stop()
	self.alive.Wait()
}

func (self *Sampler) SampledAge() time.Duration { return atomic_clock.Since(self.sampledAt) }

// Sample runs one conversion to completion within one tick. If the
// conversion does not finish inside one period, the sample is dropped
// and state stays as-is: the silent-skip failure mode of the original
// timing design, intentionally without detection or recovery.
// Exported for single-stepping from dev tools, Run is the only caller
// in normal operation.
func (self *Sampler) Sample() {
	if err := self.conv.Start(); err != nil {
		self.Log.Debugf("keypad sample start err=%v", err)
		return
	}
	deadline := time.Now().Add(self.period)
	for !self.conv.Ready() {
		if time.Now().After(deadline) {
			return
		}
		time.Sleep(conversionPoll)
	}
	raw, err := self.conv.Read()
	if err != nil {
		self.Log.Debugf("keypad sample read err=%v", err)
		return
	}
	self.latch.Publish(self.dec.Decode(raw))
	self.sampledAt.SetNow()
}
