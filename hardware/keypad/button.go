// Package keypad reads the directional button pad behind the analog
// ladder: decode raw samples into button identities and publish them
// for the composition updater and the display indicator.
package keypad

// Button is the decoded identity of the directional pad.
// Exactly one is active at a time, None included.
type Button uint8

const (
	None Button = iota
	Right
	Up
	Down
	Left
)

func (b Button) String() string {
	switch b {
	case None:
		return "none"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "invalid"
}
