package adc

import (
	"encoding/binary"

	"github.com/juju/errors"
	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/host"
)

const (
	regConversion = 0x00
	regConfig     = 0x01

	cfgOS         = 0x8000 // write: start single-shot; read: conversion done
	cfgMuxSingle0 = 0x4000 // AINx vs GND, channel in bits 13:12
	cfgPGA4V      = 0x0200 // +-4.096V full scale covers 3.3V ladder
	cfgModeSingle = 0x0100
	cfgDR1600     = 0x0080
	cfgCompOff    = 0x0003
)

// ADS1015 reads the button ladder through an I2C ADC.
// Results are scaled down to the 10-bit range the threshold table is
// calibrated for.
type ADS1015 struct {
	dev  i2c.Dev
	bus  i2c.BusCloser
	mux  uint16
	last uint16
}

var _ Converter = &ADS1015{}

type ADS1015Config struct {
	Bus     string `hcl:"bus"`
	Addr    int    `hcl:"addr"`
	Channel int    `hcl:"channel"`
}

func NewADS1015(opt ADS1015Config) (*ADS1015, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Annotate(err, "periph/init")
	}
	bus, err := i2creg.Open(opt.Bus)
	if err != nil {
		return nil, errors.Annotatef(err, "adc i2c bus=%s", opt.Bus)
	}
	if opt.Addr == 0 {
		opt.Addr = 0x48
	}
	if opt.Channel < 0 || opt.Channel > 3 {
		bus.Close() //nolint:errcheck
		return nil, errors.NotValidf("adc channel=%d", opt.Channel)
	}
	self := &ADS1015{
		dev: i2c.Dev{Bus: bus, Addr: uint16(opt.Addr)},
		bus: bus,
		mux: cfgMuxSingle0 | uint16(opt.Channel)<<12,
	}
	return self, nil
}

func (self *ADS1015) writeReg(reg byte, value uint16) error {
	var buf [3]byte
	buf[0] = reg
	binary.BigEndian.PutUint16(buf[1:], value)
	return self.dev.Tx(buf[:], nil)
}

func (self *ADS1015) readReg(reg byte) (uint16, error) {
	var buf [2]byte
	if err := self.dev.Tx([]byte{reg}, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func (self *ADS1015) Start() error {
	cfg := uint16(cfgOS) | self.mux | cfgPGA4V | cfgModeSingle | cfgDR1600 | cfgCompOff
	if err := self.writeReg(regConfig, cfg); err != nil {
		return errors.Annotate(err, "adc start")
	}
	return nil
}

func (self *ADS1015) Ready() bool {
	cfg, err := self.readReg(regConfig)
	if err != nil {
		return false
	}
	return cfg&cfgOS != 0
}

func (self *ADS1015) Read() (uint16, error) {
	raw, err := self.readReg(regConversion)
	if err != nil {
		return self.last, errors.Annotate(err, "adc read")
	}
	// 12-bit result left-aligned in the register, scale to 10-bit
	self.last = raw >> 4 >> 2
	return self.last, nil
}

func (self *ADS1015) Close() error { return self.bus.Close() }
