// Package timer models the periodic timer peripheral: a fixed-rate
// source that raises a "period elapsed" flag for a foreground loop to
// poll and clear. If the consumer overruns, elapsed periods collapse
// into one pending flag and the missed services are silently lost,
// same as the hardware flag register.
package timer

import (
	"sync/atomic"
	"time"

	"github.com/temoto/alive/v2"
)

type Flag struct{ v uint32 }

func (f *Flag) raise()        { atomic.StoreUint32(&f.v, 1) }
func (f *Flag) Elapsed() bool { return atomic.LoadUint32(&f.v) == 1 }
func (f *Flag) Clear()        { atomic.StoreUint32(&f.v, 0) }

// Periodic raises its flag every period.
type Periodic struct {
	Flag   Flag
	alive  *alive.Alive
	period time.Duration
}

func NewPeriodic(period time.Duration) *Periodic {
	return &Periodic{
		alive:  alive.NewAlive(),
		period: period,
	}
}

func (self *Periodic) Run() {
	self.alive.Add(1)
	defer self.alive.Done()
	tmr := time.NewTicker(self.period)
	stopch := self.alive.StopChan()

	for self.alive.IsRunning() {
		select {
		case <-tmr.C:
			self.Flag.raise()
		case <-stopch:
			tmr.Stop()
			return
		}
	}
}

func (self *Periodic) Stop() {
	self.alive.Stop()
	self.alive.Wait()
}
