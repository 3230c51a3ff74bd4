package lcd

import (
	"strconv"
	"time"

	"github.com/juju/errors"
	gpio "github.com/temoto/gpio-cdev-go"
)

type command byte

const (
	commandClear   command = 0x01
	commandControl command = 0x08
	commandAddress command = 0x80
)
const ddramWidth = 0x40

// HD44780 drives the classic character LCD over 4-bit GPIO.
type HD44780 struct {
	pinChip gpio.Chiper
	pins    gpio.Lineser
	pinRS   gpio.LineSetFunc
	pinRW   gpio.LineSetFunc
	pinE    gpio.LineSetFunc
	pinD4   gpio.LineSetFunc
	pinD5   gpio.LineSetFunc
	pinD6   gpio.LineSetFunc
	pinD7   gpio.LineSetFunc
}

type PinMap struct {
	RS string `hcl:"rs"`
	RW string `hcl:"rw"`
	E  string `hcl:"e"`
	D4 string `hcl:"d4"`
	D5 string `hcl:"d5"`
	D6 string `hcl:"d6"`
	D7 string `hcl:"d7"`
}

var _ Devicer = &HD44780{}

func NewHD44780(chipName string, pinmap PinMap) (*HD44780, error) {
	self := &HD44780{}
	var err error
	if self.pinChip, err = gpio.Open(chipName, "scribepad-lcd"); err != nil {
		return nil, errors.Annotatef(err, "lcd gpio chip=%s", chipName)
	}
	lines := [7]uint32{}
	for i, s := range [7]string{pinmap.RS, pinmap.RW, pinmap.E, pinmap.D4, pinmap.D5, pinmap.D6, pinmap.D7} {
		x, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, errors.Annotatef(err, "lcd pinmap=%+v", pinmap)
		}
		lines[i] = uint32(x)
	}
	self.pins, err = self.pinChip.OpenLines(
		gpio.GPIOHANDLE_REQUEST_OUTPUT, "scribepad-lcd",
		lines[0], lines[1], lines[2], lines[3], lines[4], lines[5], lines[6],
	)
	if err != nil {
		return nil, errors.Annotatef(err, "lcd open lines pinmap=%+v", pinmap)
	}
	self.pinRS = self.pins.SetFunc(lines[0])
	self.pinRW = self.pins.SetFunc(lines[1])
	self.pinE = self.pins.SetFunc(lines[2])
	self.pinD4 = self.pins.SetFunc(lines[3])
	self.pinD5 = self.pins.SetFunc(lines[4])
	self.pinD6 = self.pins.SetFunc(lines[5])
	self.pinD7 = self.pins.SetFunc(lines[6])

	self.init4()
	return self, nil
}

func (self *HD44780) init4() {
	time.Sleep(20 * time.Millisecond)

	// magic reset sequence into 4-bit mode
	self.command(0x33)
	self.command(0x32)

	self.command(0x28)                 // function: 4-bit, 2 lines, 5x8
	self.command(commandControl)       // display off
	self.command(commandControl | 0x4) // display on, no cursor, no blink
	self.Clear()
	self.command(0x06) // entry mode: advance right, no shift
}

func (self *HD44780) blinkE() {
	self.pinE(1)
	self.pins.Flush() //nolint:errcheck
	time.Sleep(1 * time.Microsecond)
	self.pinE(0)
	self.pins.Flush() //nolint:errcheck
	time.Sleep(1 * time.Microsecond)
}

func (self *HD44780) send4(rs byte, b byte) {
	self.pinRS(rs)
	self.pinD4(b >> 0 & 1)
	self.pinD5(b >> 1 & 1)
	self.pinD6(b >> 2 & 1)
	self.pinD7(b >> 3 & 1)
	self.blinkE()
}

func (self *HD44780) send8(rs byte, b byte) {
	self.send4(rs, b>>4)
	self.send4(rs, b&0xf)
	// TODO poll busy flag instead of fixed delay
	time.Sleep(40 * time.Microsecond)
}

func (self *HD44780) command(c command) { self.send8(0, byte(c)) }

func (self *HD44780) Write(bs []byte) {
	for _, b := range bs {
		self.send8(1, b)
	}
}

func (self *HD44780) Clear() {
	self.command(commandClear)
	time.Sleep(2 * time.Millisecond)
}

func (self *HD44780) CursorYX(row, column uint8) bool {
	if !(row > 0 && row <= Rows) {
		return false
	}
	if !(column > 0 && column <= Width) {
		return false
	}
	addr := (row-1)*ddramWidth + (column - 1)
	self.command(commandAddress | command(addr))
	return true
}

func (self *HD44780) Close() error {
	self.pins.Close() //nolint:errcheck
	return self.pinChip.Close()
}
