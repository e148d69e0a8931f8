// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for I²C temperature sensor drivers.
//
// Each driver lives in its own package, opens or adopts a periph.io I²C bus
// and implements common.Thermometer.
package devices
