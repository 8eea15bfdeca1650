// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, byte order reversal and two's complement decoding of register
// values.
package common

import "math/bits"

// ReverseBytes16 returns v with its two bytes swapped. Useful for devices
// that present a big-endian word over an SMBus word transaction, which is
// little-endian.
func ReverseBytes16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

// ReverseBytes32 returns v with its four bytes in reverse order.
func ReverseBytes32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// Signed8 reinterprets an unsigned byte as a two's complement signed value.
func Signed8(v uint8) int8 {
	result := int(v)
	if result > 127 {
		result -= 256
	}
	return int8(result)
}

// Signed16 reinterprets an unsigned word as a two's complement signed value.
func Signed16(v uint16) int16 {
	result := int(v)
	if result > 32767 {
		result -= 65536
	}
	return int16(result)
}
