package keypad

import "github.com/juju/errors"

// Decoding is range membership over an explicit ordered table: the
// first button (in priority order Right, Up, Down, Left) whose upper
// bound the sample is strictly below wins; below none of them decodes
// None. The ladder pulls the reading toward zero, a released pad reads
// near full scale.

// Thresholds are exclusive upper bounds per button, in raw sample
// units. Calibration data, not behavior: values come from config.
// int because that is the only numeric kind hcl decodes into.
type Thresholds struct {
	Right int `hcl:"right"`
	Up    int `hcl:"up"`
	Down  int `hcl:"down"`
	Left  int `hcl:"left"`
}

// Classic 10-bit ladder calibration.
var DefaultThresholds = Thresholds{Right: 60, Up: 200, Down: 400, Left: 600}

const rawMax = 1023

// Validate accepts either the zero value (defaults apply) or a full
// strictly ascending ladder within the raw sample range. A partial or
// misordered ladder makes buttons undecodable, reject it up front.
func (t Thresholds) Validate() error {
	if t == (Thresholds{}) {
		return nil
	}
	if !(0 < t.Right && t.Right < t.Up && t.Up < t.Down && t.Down < t.Left && t.Left <= rawMax) {
		return errors.NotValidf("thresholds must ascend 0 < right < up < down < left <= %d, got %+v", rawMax, t)
	}
	return nil
}

type bound struct {
	button Button
	limit  uint16
}

type Decoder struct {
	table [4]bound
}

func NewDecoder(t Thresholds) *Decoder {
	if t == (Thresholds{}) {
		t = DefaultThresholds
	}
	return &Decoder{table: [4]bound{
		{Right, uint16(t.Right)},
		{Up, uint16(t.Up)},
		{Down, uint16(t.Down)},
		{Left, uint16(t.Left)},
	}}
}

func (self *Decoder) Decode(raw uint16) Button {
	for _, b := range self.table {
		if raw < b.limit {
			return b.button
		}
	}
	return None
}

// Mid returns a raw sample from the middle of the button's band.
// Used by synthetic converters (dev input, CLI) to fabricate readings
// that decode back to the wanted button.
func (self *Decoder) Mid(b Button) uint16 {
	lo := uint16(0)
	for _, bd := range self.table {
		if bd.button == b {
			return lo + (bd.limit-lo)/2
		}
		lo = bd.limit
	}
	// None: anything at or above the last bound
	return lo + (rawMax-lo)/2
}
