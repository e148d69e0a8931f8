// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// mcp990x provides a package for interfacing the Microchip MCP990x family
// of I2C temperature sensors.
//
// The temperature is split over two 8 bit registers. The high byte register
// holds the 8 most significant bits and the top 3 bits of the low byte
// register hold the fraction.
//
// Range: 0°C - 255.875°C
//
// Resolution: 0.125°C
//
// For detailed information, refer to the [datasheet].
//
// [datasheet]: https://ww1.microchip.com/downloads/en/DeviceDoc/20005382C.pdf
package mcp990x
