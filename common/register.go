// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import "fmt"

// RegisterMap describes the addressable register space of a device.
type RegisterMap struct {
	// Last is the highest valid register address.
	Last uint16
	// Width is the size of one register in bytes.
	Width int
}

// CheckRead validates a register address before a read.
func (m RegisterMap) CheckRead(reg uint16) error {
	if reg > m.Last {
		return fmt.Errorf("%w 0x%02x", ErrInvalidRegister, reg)
	}
	return nil
}

// CheckWrite validates a register address and payload before a write.
func (m RegisterMap) CheckWrite(reg uint16, values []byte) error {
	if err := m.CheckRead(reg); err != nil {
		return err
	}
	if len(values) > m.Width {
		return fmt.Errorf("%w %d", ErrInvalidLength, len(values))
	}
	return nil
}
