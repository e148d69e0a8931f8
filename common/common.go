// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains the pieces shared by the temperature sensor
// drivers: the register accessor checks, the error values they return and
// the Thermometer interface each driver satisfies.
package common

import "errors"

var (
	// ErrConfig is returned when the bus to a device can't be established.
	ErrConfig = errors.New("bus not available")
	// ErrClosed is returned by any operation on a device after Close().
	ErrClosed = errors.New("bus not open")
	// ErrInvalidRegister is returned for register addresses past the last
	// valid one of the device. No bus transaction is attempted.
	ErrInvalidRegister = errors.New("invalid register address")
	// ErrInvalidLength is returned when a write payload is wider than the
	// register.
	ErrInvalidLength = errors.New("invalid data length")
)

// Thermometer is implemented by every temperature sensor driver in this
// module.
type Thermometer interface {
	// Read returns the current temperature in degrees Celsius.
	Read() (float64, error)
	// Close releases the device. Further calls fail with ErrClosed.
	Close() error
}
