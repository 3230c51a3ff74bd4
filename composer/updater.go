package composer

import (
	"time"

	"github.com/temoto/alive/v2"
	atomic_clock "github.com/temoto/atomic_clock"

	"github.com/lexph/scribepad/hardware/keypad"
	"github.com/lexph/scribepad/log2"
)

// Updater is the medium periodic task: each tick, if a button is held,
// apply exactly one composition transition. Holding a button repeats
// at the tick rate: the auto-repeat is the tier period, on purpose.
type Updater struct {
	Log    *log2.Log
	alive  *alive.Alive
	latch  *keypad.Latch
	state  *State
	period time.Duration

	updatedAt *atomic_clock.Clock
}

func NewUpdater(latch *keypad.Latch, state *State, period time.Duration, log *log2.Log) *Updater {
	return &Updater{
		Log:       log,
		alive:     alive.NewAlive(),
		latch:     latch,
		state:     state,
		period:    period,
		updatedAt: atomic_clock.New(),
	}
}

func (self *Updater) Run() {
	self.alive.Add(1)
	defer self.alive.Done()
	tmr := time.NewTicker(self.period)
	stopch := self.alive.StopChan()

	for self.alive.IsRunning() {
		select {
		case <-tmr.C:
			self.Tick()
		case <-stopch:
			tmr.Stop()
			return
		}
	}
}

func (self *Updater) Stop() {
	self.alive.Stop()
	self.alive.Wait()
}

func (self *Updater) UpdatedAge() time.Duration { return atomic_clock.Since(self.updatedAt) }

// Tick applies at most one composition transition. Exported for
// single-stepping from dev tools, Run is the only caller in normal
// operation.
func (self *Updater) Tick() {
	snap := self.latch.Snapshot()
	if !snap.Pressed {
		return
	}
	self.state.Apply(snap.Button)
	self.updatedAt.SetNow()
	self.Log.Debugf("composer apply button=%s", snap.Button)
}
