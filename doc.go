// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package smbus is a container for register level access to I²C peripherals.
//
// The device wrapper lives in package i2cdev, byte order and sign helpers in
// package common, a simulated peripheral for tests in package i2cdevtest and
// the i2cregs command line tool in cmd/i2cregs.
package smbus
