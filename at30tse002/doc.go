// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package at30tse002 provides access to the temperature sensor of the Atmel
// AT30TSE002B and compatible JC42.4 devices.
//
// The sensor exposes eight 16 bit registers. The temperature register holds
// a 12 bit magnitude in 1/16°C steps and a sign bit.
//
// Range: -255.9375°C - 255.9375°C
//
// Resolution: 0.0625°C
//
// # Datasheet
//
// https://ww1.microchip.com/downloads/en/DeviceDoc/Atmel-8711-SEEPROM-AT30TSE002B-Datasheet.pdf
package at30tse002
