// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp990x

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
	// DefaultAddress is the factory i2c address of the device, 0b1001100.
	DefaultAddress uint16 = 0x4c

	// Addresses of registers to read/write.
	_REGISTER_TEMP_HIGH uint16 = 0x00
	_REGISTER_TEMP_LOW  uint16 = 0x29
	_REGISTER_LAST      uint16 = 0xff

	// The fraction lives in the top 3 bits of the low byte.
	_FRACTION_SHIFT = 5

	_DEGREES_RESOLUTION physic.Temperature = 125 * physic.MilliKelvin
)

var registers = common.RegisterMap{Last: _REGISTER_LAST, Width: 1}

// Opts represents configurable options for the MCP990x.
type Opts struct {
	// Logger receives a debug record at each decode step. Optional.
	Logger *slog.Logger
}

// Dev represents a MCP990x sensor.
type Dev struct {
	d      *i2c.Dev
	bus    i2c.BusCloser
	log    *slog.Logger
	closed bool
}

// New returns a MCP990x sensor on an already opened bus. The bus remains
// owned by the caller and is not closed by Close().
//
// If addr is 0, DefaultAddress is used.
func New(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if b == nil {
		return nil, fmt.Errorf("mcp990x: %w", common.ErrConfig)
	}
	if addr == 0 {
		addr = DefaultAddress
	}
	if opts == nil {
		opts = &Opts{}
	}
	dev := &Dev{d: &i2c.Dev{Bus: b, Addr: addr}, log: opts.Logger}
	common.Trace(dev.log, "mcp990x: using bus", slog.String("bus", b.String()), slog.Int("addr", int(addr)))
	return dev, nil
}

// Open opens the named i2c bus and returns a MCP990x sensor on it. An empty
// name selects the first available bus. The bus is closed by Close().
func Open(name string, addr uint16, opts *Opts) (*Dev, error) {
	b, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("mcp990x: open bus %q: %w: %w", name, common.ErrConfig, err)
	}
	dev, err := New(b, addr, opts)
	if err != nil {
		_ = b.Close()
		return nil, err
	}
	dev.bus = b
	return dev, nil
}

// countToTemperature stitches the two temperature registers together: the
// 8 most significant bits come from the high register, the 3 least
// significant from the top of the low register.
func countToTemperature(high, low byte) float64 {
	count := ((uint16(high) << 8) | uint16(low)) >> _FRACTION_SHIFT
	return float64(count) * 0.125
}

// ReadRegister reads the 8 bit register reg.
func (dev *Dev) ReadRegister(reg uint16) (byte, error) {
	if dev.closed {
		return 0, fmt.Errorf("mcp990x: %w", common.ErrClosed)
	}
	if err := registers.CheckRead(reg); err != nil {
		return 0, fmt.Errorf("mcp990x: %w", err)
	}
	r := make([]byte, 1)
	if err := dev.d.Tx([]byte{byte(reg)}, r); err != nil {
		return 0, fmt.Errorf("mcp990x: read register 0x%02x: %w", reg, err)
	}
	return r[0], nil
}

// WriteRegister writes values to the 8 bit register reg. values may hold at
// most one byte.
func (dev *Dev) WriteRegister(reg uint16, values []byte) error {
	if dev.closed {
		return fmt.Errorf("mcp990x: %w", common.ErrClosed)
	}
	if err := registers.CheckWrite(reg, values); err != nil {
		return fmt.Errorf("mcp990x: %w", err)
	}
	w := make([]byte, 0, 1+len(values))
	w = append(w, byte(reg))
	w = append(w, values...)
	if err := dev.d.Tx(w, nil); err != nil {
		return fmt.Errorf("mcp990x: write register 0x%02x: %w", reg, err)
	}
	return nil
}

// Read returns the current temperature in degrees Celsius.
func (dev *Dev) Read() (float64, error) {
	low, err := dev.ReadRegister(_REGISTER_TEMP_LOW)
	if err != nil {
		return 0, err
	}
	high, err := dev.ReadRegister(_REGISTER_TEMP_HIGH)
	if err != nil {
		return 0, err
	}
	common.Trace(dev.log, "mcp990x: raw temperature",
		slog.Int("high", int(high)), slog.Int("low", int(low)),
		slog.Int("reg", int(((uint16(high)<<8)|uint16(low))>>_FRACTION_SHIFT)))

	t := countToTemperature(high, low)
	common.Trace(dev.log, "mcp990x: temperature", slog.Float64("celsius", t))
	return t, nil
}

// Sense reads the temperature from the device and writes the value to the
// specified env variable.
func (dev *Dev) Sense(env *physic.Env) error {
	t, err := dev.Read()
	if err != nil {
		return err
	}
	env.Temperature = physic.ZeroCelsius + physic.Temperature(t*float64(physic.Kelvin))
	return nil
}

// Precision returns the sensor's precision, or minimum value between steps
// the device can make. The specified precision is 0.125 degrees Celsius.
func (dev *Dev) Precision(env *physic.Env) {
	env.Temperature = _DEGREES_RESOLUTION
	env.Pressure = 0
	env.Humidity = 0
}

// Halt implements conn.Resource. The device is only read on request, so
// there's nothing to stop.
func (dev *Dev) Halt() error {
	return nil
}

// Close disconnects the device from the bus. If the bus was opened by
// Open(), it's closed too. Calling Close twice returns an error.
func (dev *Dev) Close() error {
	if dev.closed {
		return fmt.Errorf("mcp990x: %w", common.ErrClosed)
	}
	dev.closed = true
	if dev.bus != nil {
		err := dev.bus.Close()
		dev.bus = nil
		return err
	}
	return nil
}

func (dev *Dev) String() string {
	return fmt.Sprintf("mcp990x: %s", dev.d.String())
}

var _ conn.Resource = &Dev{}
var _ common.Thermometer = &Dev{}
