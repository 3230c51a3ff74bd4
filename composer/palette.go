// Package composer holds the text composition core: the cursor, the
// per-column palette indices, the rendered line, plus the periodic
// update task and the foreground render loop.
package composer

import "github.com/juju/errors"

// Blank marks an unset column. A column showing Blank has no selected
// palette character, whatever its stored index.
const Blank = ' '

// Palette is the fixed ordered sequence of selectable characters.
// Immutable for the process lifetime.
type Palette []byte

const DefaultPalette = "abcdefghijklmnopqrstuvwxyz0123456789!"

func NewPalette(s string) (Palette, error) {
	if len(s) == 0 {
		return nil, errors.NotValidf("palette empty")
	}
	if len(s) > 255 {
		return nil, errors.NotValidf("palette too long length=%d", len(s))
	}
	for i := 0; i < len(s); i++ {
		if s[i] == Blank {
			return nil, errors.NotValidf("palette contains the blank sentinel at %d", i)
		}
	}
	return Palette(s), nil
}

func MustPalette(s string) Palette {
	p, err := NewPalette(s)
	if err != nil {
		panic(err)
	}
	return p
}
