package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexph/scribepad/hardware/keypad"
	"github.com/lexph/scribepad/hardware/lcd"
)

func TestIndicatorGlyphColumns(t *testing.T) {
	t.Parallel()

	cases := []struct {
		button keypad.Button
		expect string
	}{
		{keypad.Left, "<               "},
		{keypad.Down, " v              "},
		{keypad.Up, "  ^             "},
		{keypad.Right, "   >            "},
		{keypad.None, "                "},
	}
	for _, c := range cases {
		c := c
		t.Run(c.button.String(), func(t *testing.T) {
			screen, dev := lcd.NewMockScreen()
			latch := new(keypad.Latch)
			ind := NewIndicator(latch, screen)

			latch.Publish(keypad.Up) // make a transition away from None observable
			ind.Service()
			latch.Publish(c.button)
			ind.Service()
			assert.Equal(t, c.expect, dev.Line(glyphRow))
		})
	}
}

func TestIndicatorDebounce(t *testing.T) {
	t.Parallel()

	screen, dev := lcd.NewMockScreen()
	latch := new(keypad.Latch)
	ind := NewIndicator(latch, screen)

	latch.Publish(keypad.Up)
	ind.Service()
	require.Equal(t, "  ^             ", dev.Line(glyphRow))

	// scribble over the row; a held steady button must not redraw
	dev.CursorYX(glyphRow+1, 11) // device columns are 1-based
	dev.Write([]byte{'#'})
	ind.Service()
	ind.Service()
	assert.Equal(t, "  ^       #     ", dev.Line(glyphRow))

	// release is one more transition: row cleared, nothing drawn
	latch.Publish(keypad.None)
	ind.Service()
	assert.Equal(t, "                ", dev.Line(glyphRow))
}
