// Package lcd talks to a 16x2 character display.
//
// Hard constraint inherited from the display driver: it is not safe
// for concurrent use. Every call must come from the single foreground
// render goroutine, never from a periodic task.
package lcd

import (
	"sync/atomic"

	"github.com/juju/errors"
	"github.com/paulrosania/go-charset/charset"
	_ "github.com/paulrosania/go-charset/data"
)

const (
	Rows  = 2
	Width = 16
)

// Devicer is the raw display driver: position cursor, write bytes.
// Rows and columns are 1-based at this level, HD44780 style.
type Devicer interface {
	Clear()
	CursorYX(y, x uint8) bool
	Write(b []byte)
}

var spaceRow = [Width]byte{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}

// Screen is the cell-addressed view of the display used by the render
// loop. Rows are {0,1}, columns [0,15]. Out-of-range writes are
// dropped, matching the clamp-or-no-op policy of the rest of the core.
type Screen struct {
	dev Devicer
	tr  atomic.Value // charset.Translator
}

type ScreenConfig struct {
	Codepage string
}

func NewScreen(dev Devicer, opt ScreenConfig) (*Screen, error) {
	self := &Screen{dev: dev}
	if opt.Codepage != "" {
		if err := self.SetCodepage(opt.Codepage); err != nil {
			return nil, errors.Trace(err)
		}
	}
	return self, nil
}

func (self *Screen) SetCodepage(cp string) error {
	tr, err := charset.TranslatorTo(cp)
	if err != nil {
		return errors.Annotatef(err, "lcd codepage=%s", cp)
	}
	self.tr.Store(tr)
	return nil
}

func (self *Screen) Clear() { self.dev.Clear() }

// PutYX writes one character at (row, col). No-op out of range.
func (self *Screen) PutYX(row, col uint8, ch byte) {
	if row >= Rows || col >= Width {
		return
	}
	if !self.dev.CursorYX(row+1, col+1) {
		return
	}
	self.dev.Write(self.translate([]byte{ch}))
}

// ClearRow overwrites a whole row with spaces.
func (self *Screen) ClearRow(row uint8) {
	if row >= Rows {
		return
	}
	if !self.dev.CursorYX(row+1, 1) {
		return
	}
	self.dev.Write(spaceRow[:])
}

func (self *Screen) translate(b []byte) []byte {
	tr, ok := self.tr.Load().(charset.Translator)
	if !ok || tr == nil {
		return b
	}
	_, tb, err := tr.Translate(b, true)
	if err != nil {
		// display encoding is calibration data, a failure here is a
		// config mistake, not a runtime condition
		panic(err)
	}
	// translator reuses single internal buffer, make a copy
	return append([]byte(nil), tb...)
}
