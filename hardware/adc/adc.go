// Package adc models the one-shot analog-to-digital peripheral that
// reads the button ladder.
//
// Contract required by the sampler: trigger one conversion, poll the
// completion flag, read the result. Only the button sampler task may
// touch a Converter.
package adc

// Converter is a one-shot analog-to-digital input.
type Converter interface {
	// Start triggers a single conversion.
	Start() error
	// Ready reports whether the conversion result is available.
	Ready() bool
	// Read returns the latest conversion result.
	Read() (uint16, error)
}
