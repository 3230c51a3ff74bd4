package keypad

import "sync"

// Snapshot is one coherent view of the button state: entire old value
// or entire new value, never a mix of fields from different samples.
type Snapshot struct {
	Button  Button
	Pressed bool
}

// Latch holds the sampler's published state plus the indicator's
// acknowledged previous button. The mutex is the Go stand-in for the
// short disable-the-fast-interrupt critical section of the original
// hardware: every multi-field access goes through it as one unit.
//
// Writer discipline: Publish is called only by the sampler task;
// Ack only by the display indicator after it has acted on a
// transition. Everybody else reads.
type Latch struct {
	mu      sync.Mutex
	current Button
	pressed bool
	last    Button
}

// Publish commits a decoded sample. Pressed is derived, which keeps
// the invariant !pressed => current == None structural.
func (self *Latch) Publish(b Button) {
	self.mu.Lock()
	self.current = b
	self.pressed = b != None
	self.mu.Unlock()
}

func (self *Latch) Snapshot() Snapshot {
	self.mu.Lock()
	defer self.mu.Unlock()
	return Snapshot{Button: self.current, Pressed: self.pressed}
}

// Transition reports the current button and whether it differs from
// the last acknowledged one. It does not acknowledge: the consumer
// calls Ack after the redraw, so a crash mid-redraw repeats the draw
// rather than losing it.
func (self *Latch) Transition() (Button, bool) {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.current, self.current != self.last
}

func (self *Latch) Ack(b Button) {
	self.mu.Lock()
	self.last = b
	self.mu.Unlock()
}
