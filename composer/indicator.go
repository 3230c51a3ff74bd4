package composer

import (
	"github.com/lexph/scribepad/hardware/keypad"
	"github.com/lexph/scribepad/hardware/lcd"
)

const (
	lineRow  = 0 // composed line
	glyphRow = 1 // held-button indicator
)

// Indicator redraws the bottom-row glyph on button transitions only:
// at most one redraw per physical press or release, independent of the
// updater's auto-repeat cadence.
type Indicator struct {
	latch  *keypad.Latch
	screen *lcd.Screen
}

func NewIndicator(latch *keypad.Latch, screen *lcd.Screen) *Indicator {
	return &Indicator{latch: latch, screen: screen}
}

// fixed 1:1 glyph columns: Left, Down, Up, Right at 0..3
func glyphFor(b keypad.Button) (col uint8, glyph byte, ok bool) {
	switch b {
	case keypad.Left:
		return 0, '<', true
	case keypad.Down:
		return 1, 'v', true
	case keypad.Up:
		return 2, '^', true
	case keypad.Right:
		return 3, '>', true
	}
	return 0, 0, false
}

// Service runs from the foreground render loop. It acknowledges the
// transition only after the redraw happened.
func (self *Indicator) Service() {
	b, changed := self.latch.Transition()
	if !changed {
		return
	}
	self.screen.ClearRow(glyphRow)
	if col, glyph, ok := glyphFor(b); ok {
		self.screen.PutYX(glyphRow, col, glyph)
	}
	self.latch.Ack(b)
}
