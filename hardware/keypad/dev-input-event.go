package keypad

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/juju/errors"
	inputevent "github.com/temoto/inputevent-go"

	"github.com/lexph/scribepad/hardware/adc"
	"github.com/lexph/scribepad/log2"
)

// Development input source: arrow keys of a Linux evdev keyboard stand
// in for the analog ladder. Key events move a fabricated raw level
// that the regular sampler/decoder path then consumes, so everything
// downstream of the converter is exercised unchanged.

const evKey = 1 // linux input EV_KEY

// linux input key codes
const (
	keyCodeUp    = 103
	keyCodeLeft  = 105
	keyCodeRight = 106
	keyCodeDown  = 108
)

type EvdevConverter struct {
	Log   *log2.Log
	f     io.ReadCloser
	level uint32 // current fabricated raw sample
}

var _ adc.Converter = &EvdevConverter{}

func NewEvdevConverter(device string, dec *Decoder, log *log2.Log) (*EvdevConverter, error) {
	f, err := os.Open(device)
	if err != nil {
		return nil, errors.Annotatef(err, "keypad evdev device=%s", device)
	}
	self := &EvdevConverter{Log: log, f: f}
	atomic.StoreUint32(&self.level, uint32(dec.Mid(None)))
	go self.readLoop(dec)
	return self, nil
}

func (self *EvdevConverter) readLoop(dec *Decoder) {
	for {
		ie, err := inputevent.ReadOne(self.f)
		if err != nil {
			self.Log.Errorf("keypad evdev err=%v", err)
			return
		}
		if ie.Type != evKey {
			continue
		}
		b := None
		switch ie.Code {
		case keyCodeRight:
			b = Right
		case keyCodeUp:
			b = Up
		case keyCodeDown:
			b = Down
		case keyCodeLeft:
			b = Left
		default:
			continue
		}
		if inputevent.KeyEventState(ie.Value) == inputevent.KeyStateUp {
			b = None
		}
		atomic.StoreUint32(&self.level, uint32(dec.Mid(b)))
	}
}

// Start is instant: the fabricated level is always current.
func (self *EvdevConverter) Start() error { return nil }

func (self *EvdevConverter) Ready() bool { return true }

func (self *EvdevConverter) Read() (uint16, error) {
	return uint16(atomic.LoadUint32(&self.level)), nil
}

func (self *EvdevConverter) Close() error { return self.f.Close() }
