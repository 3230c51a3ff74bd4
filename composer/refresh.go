package composer

import (
	"time"

	"github.com/temoto/alive/v2"

	"github.com/lexph/scribepad/hardware/lcd"
	"github.com/lexph/scribepad/hardware/timer"
	"github.com/lexph/scribepad/log2"
)

// How often the foreground loop polls the elapsed flag between
// services. The polling design exists because the display driver must
// never run from a periodic task context, so its trigger is a flag,
// not a callback.
const pollSleep = 500 * time.Microsecond

// Refresher is the foreground loop owning every display call. Each
// serviced period: run the indicator, then render the selected
// column's character at its position on the top row. A blank cell
// draws nothing, there is no erase.
type Refresher struct {
	Log       *log2.Log
	alive     *alive.Alive
	flag      *timer.Flag
	indicator *Indicator
	state     *State
	screen    *lcd.Screen
}

func NewRefresher(flag *timer.Flag, indicator *Indicator, state *State, screen *lcd.Screen, log *log2.Log) *Refresher {
	return &Refresher{
		Log:       log,
		alive:     alive.NewAlive(),
		flag:      flag,
		indicator: indicator,
		state:     state,
		screen:    screen,
	}
}

// Run busy-polls the period-elapsed flag and clears it after
// servicing. Call from the goroutine that owns the display; Run never
// returns until Stop.
func (self *Refresher) Run() {
	self.alive.Add(1)
	defer self.alive.Done()
	stopch := self.alive.StopChan()
	for self.alive.IsRunning() {
		if !self.flag.Elapsed() {
			select {
			case <-stopch:
				return
			default:
				time.Sleep(pollSleep)
			}
			continue
		}
		self.Service()
		self.flag.Clear()
	}
}

func (self *Refresher) Stop() {
	self.alive.Stop()
	self.alive.Wait()
}

// Service runs one display service: indicator first, then the
// selected column. Exported for single-stepping from dev tools, Run is
// the only caller in normal operation.
func (self *Refresher) Service() {
	self.indicator.Service()

	snap := self.state.Snapshot()
	if ch := snap.Line[snap.Cursor]; ch != Blank {
		self.screen.PutYX(lineRow, snap.Cursor, ch)
	}
}
