package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeRanges(t *testing.T) {
	t.Parallel()

	dec := NewDecoder(Thresholds{})
	cases := []struct {
		name   string
		raw    uint16
		expect Button
	}{
		{"zero", 0, Right},
		{"right-high", 59, Right},
		{"up-low", 60, Up},
		{"up-high", 199, Up},
		{"down-low", 200, Down},
		{"down-high", 399, Down},
		{"left-low", 400, Left},
		{"left-high", 599, Left},
		{"none-low", 600, None},
		{"none-idle", 1023, None},
		{"none-over", 4095, None},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expect, dec.Decode(c.raw), "raw=%d", c.raw)
		})
	}
}

func TestDecodePriorityOrder(t *testing.T) {
	t.Parallel()

	// degenerate calibration with overlapping bounds: priority order
	// Right, Up, Down, Left must break the tie deterministically
	dec := NewDecoder(Thresholds{Right: 100, Up: 100, Down: 100, Left: 100})
	assert.Equal(t, Right, dec.Decode(50))
	assert.Equal(t, None, dec.Decode(100))
}

func TestThresholdsValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Thresholds{}.Validate(), "zero value means defaults")
	assert.NoError(t, DefaultThresholds.Validate())
	assert.NoError(t, Thresholds{Right: 50, Up: 190, Down: 380, Left: 555}.Validate())

	assert.Error(t, Thresholds{Right: 600, Up: 400, Down: 200, Left: 60}.Validate(), "descending")
	assert.Error(t, Thresholds{Right: 60, Up: 200, Left: 600}.Validate(), "hole in the ladder")
	assert.Error(t, Thresholds{Right: 60, Up: 60, Down: 400, Left: 600}.Validate(), "equal bounds")
	assert.Error(t, Thresholds{Right: 60, Up: 200, Down: 400, Left: 5000}.Validate(), "above raw range")
}

func TestDecodeMidRoundTrip(t *testing.T) {
	t.Parallel()

	dec := NewDecoder(Thresholds{})
	for _, b := range []Button{None, Right, Up, Down, Left} {
		assert.Equal(t, b, dec.Decode(dec.Mid(b)), "button=%s mid=%d", b, dec.Mid(b))
	}
}
