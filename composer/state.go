package composer

import (
	"sync"

	"github.com/lexph/scribepad/hardware/keypad"
)

// Columns is the width of the composed line, one per display column.
const Columns = 16

// Snapshot is one coherent view of the composition: cursor and line
// from the same committed tick, never a mix.
type Snapshot struct {
	Cursor uint8
	Line   [Columns]byte
}

// State is the shared composition state. Written only by the updater
// task via Apply, read by the render loop via Snapshot. The mutex
// plays the role of the short critical section around multi-field
// access: each Apply commits cursor, index and line cell as one unit.
type State struct {
	mu      sync.Mutex
	palette Palette
	cursor  uint8
	index   [Columns]uint8
	line    [Columns]byte
}

func NewState(p Palette) *State {
	self := &State{palette: p}
	for i := range self.line {
		self.line[i] = Blank
	}
	return self
}

func (self *State) Snapshot() Snapshot {
	self.mu.Lock()
	defer self.mu.Unlock()
	s := Snapshot{Cursor: self.cursor}
	s.Line = self.line
	return s
}

// Apply performs exactly one composition transition for a held
// button. Every boundary clamps or no-ops, nothing wraps and nothing
// errors. The switch makes the button priority deterministic even
// though the decoder never yields two identities at once.
func (self *State) Apply(b keypad.Button) {
	self.mu.Lock()
	defer self.mu.Unlock()

	c := self.cursor
	switch b {
	case keypad.Up:
		if self.line[c] == Blank {
			// first press from blank selects index 0, not 1
			self.index[c] = 0
			self.line[c] = self.palette[0]
		} else if int(self.index[c]) < len(self.palette)-1 {
			self.index[c]++
			self.line[c] = self.palette[self.index[c]]
		}
	case keypad.Down:
		if self.index[c] == 0 {
			// decrement past the first character clears the cell
			self.line[c] = Blank
		} else {
			self.index[c]--
			self.line[c] = self.palette[self.index[c]]
		}
	case keypad.Right:
		if c < Columns-1 {
			self.cursor = c + 1
		}
	case keypad.Left:
		if c > 0 {
			self.cursor = c - 1
		}
	}
}
