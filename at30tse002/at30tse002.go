// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package at30tse002

import (
	"fmt"
	"log/slog"

	"github.com/GermanBionicSystems/tempsensors/common"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
)

const (
	// DefaultAddress is the i2c address of the temperature sensor with all
	// address pins pulled high.
	DefaultAddress uint16 = 0x1b

	regCapability  uint16 = 0x00
	regConfig      uint16 = 0x01
	regAlarmUpper  uint16 = 0x02
	regAlarmLower  uint16 = 0x03
	regCritical    uint16 = 0x04
	regTemperature uint16 = 0x05
	regManufacture uint16 = 0x06
	regDevice      uint16 = 0x07
	// 0x08 - 0xff are reserved.
	regLast = regDevice

	magnitudeMask = 0x0fff
	signBit       = 1 << 12

	resolution physic.Temperature = 62_500 * physic.MicroKelvin
)

var registers = common.RegisterMap{Last: regLast, Width: 2}

// Opts holds the optional settings of a Dev.
type Opts struct {
	// Logger receives a debug record at each decode step.
	Logger *slog.Logger
}

// Dev is a handle to an AT30TSE002B temperature sensor.
type Dev struct {
	d      *i2c.Dev
	bus    i2c.BusCloser
	log    *slog.Logger
	closed bool
}

// New returns a handle to the sensor at addr on an opened bus. The caller
// keeps ownership of b.
//
// If addr is 0, DefaultAddress is used.
func New(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if b == nil {
		return nil, fmt.Errorf("at30tse002: %w", common.ErrConfig)
	}
	if addr == 0 {
		addr = DefaultAddress
	}
	dev := &Dev{d: &i2c.Dev{Bus: b, Addr: addr}}
	if opts != nil {
		dev.log = opts.Logger
	}
	common.Trace(dev.log, "at30tse002: using bus", slog.String("bus", b.String()), slog.Int("addr", int(addr)))
	return dev, nil
}

// Open opens the named i2c bus and returns a handle to the sensor at addr.
// Close() closes the bus as well.
func Open(name string, addr uint16, opts *Opts) (*Dev, error) {
	b, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("at30tse002: open bus %q: %w: %w", name, common.ErrConfig, err)
	}
	dev, err := New(b, addr, opts)
	if err != nil {
		_ = b.Close()
		return nil, err
	}
	dev.bus = b
	return dev, nil
}

// swap converts an SMBus word, low byte first, into the register layout.
func swap(raw uint16) uint16 {
	return ((raw >> 8) & 0xff) | ((raw << 8) & 0xff00)
}

// countToTemperature decodes the sign-magnitude temperature register. A
// negative zero reads as 0.
func countToTemperature(reg uint16) float64 {
	t := float64(reg&magnitudeMask) / 16.0
	if reg&signBit != 0 && t != 0 {
		t = -t
	}
	return t
}

// ReadRegister returns the 16 bit register reg as delivered by the bus, low
// byte first.
func (dev *Dev) ReadRegister(reg uint16) (uint16, error) {
	if dev.closed {
		return 0, fmt.Errorf("at30tse002: %w", common.ErrClosed)
	}
	if err := registers.CheckRead(reg); err != nil {
		return 0, fmt.Errorf("at30tse002: %w", err)
	}
	r := make([]byte, 2)
	if err := dev.d.Tx([]byte{byte(reg)}, r); err != nil {
		return 0, fmt.Errorf("at30tse002: failed to read register 0x%02x: %w", reg, err)
	}
	return uint16(r[0]) | uint16(r[1])<<8, nil
}

// WriteRegister writes up to two bytes to register reg.
func (dev *Dev) WriteRegister(reg uint16, values []byte) error {
	if dev.closed {
		return fmt.Errorf("at30tse002: %w", common.ErrClosed)
	}
	if err := registers.CheckWrite(reg, values); err != nil {
		return fmt.Errorf("at30tse002: %w", err)
	}
	if err := dev.d.Tx(append([]byte{byte(reg)}, values...), nil); err != nil {
		return fmt.Errorf("at30tse002: failed to write register 0x%02x: %w", reg, err)
	}
	return nil
}

// Read returns the temperature as measured by the sensor, in degrees
// Celsius.
func (dev *Dev) Read() (float64, error) {
	raw, err := dev.ReadRegister(regTemperature)
	if err != nil {
		return 0, err
	}
	reg := swap(raw)
	common.Trace(dev.log, "at30tse002: raw temperature", slog.Int("raw", int(raw)), slog.Int("reg", int(reg)))

	magnitude := float64(reg&magnitudeMask) / 16.0
	common.Trace(dev.log, "at30tse002: temperature magnitude", slog.Float64("celsius", magnitude))

	t := countToTemperature(reg)
	common.Trace(dev.log, "at30tse002: temperature", slog.Float64("celsius", t), slog.Bool("negative", reg&signBit != 0))
	return t, nil
}

// Sense reads the temperature and stores it in env.
func (dev *Dev) Sense(env *physic.Env) error {
	t, err := dev.Read()
	if err != nil {
		return err
	}
	env.Temperature = physic.ZeroCelsius + physic.Temperature(t*float64(physic.Kelvin))
	return nil
}

// Precision returns the 0.0625°C step of the sensor.
func (dev *Dev) Precision(env *physic.Env) {
	env.Temperature = resolution
	env.Pressure = 0
	env.Humidity = 0
}

// Halt implements conn.Resource. It's a no-op.
func (dev *Dev) Halt() error {
	return nil
}

// Close releases the device, and the bus if it was opened by Open().
func (dev *Dev) Close() error {
	if dev.closed {
		return fmt.Errorf("at30tse002: %w", common.ErrClosed)
	}
	dev.closed = true
	if dev.bus == nil {
		return nil
	}
	err := dev.bus.Close()
	dev.bus = nil
	return err
}

func (dev *Dev) String() string {
	return fmt.Sprintf("at30tse002: %s", dev.d.String())
}

var _ conn.Resource = &Dev{}
var _ common.Thermometer = &Dev{}
