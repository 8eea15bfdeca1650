// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package i2cdev provides register level access to a single peripheral on an
// I²C bus.
//
// A Dev issues SMBus style transactions: byte and word register reads and
// writes, and block transfers of up to MaxBlockLen bytes. Words are
// transferred least significant byte first, as SMBus defines them. Use
// common.ReverseBytes16 for devices that present big-endian registers.
//
// Signed reads decode the raw register value as two's complement.
//
// Each operation performs exactly one bus transaction. Nothing is retried and
// nothing is cached; a failing transaction is returned to the caller as a
// *BusError.
//
// A Dev is not safe for concurrent use.
package i2cdev
