// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package i2cdev

import (
	"errors"
	"fmt"
)

var (
	// ErrBusUnavailable is returned by Open when the bus can't be opened.
	ErrBusUnavailable = errors.New("i2cdev: bus unavailable")
	// ErrInvalidLength is returned when a block transfer length is outside
	// [0, MaxBlockLen]. No transaction is issued.
	ErrInvalidLength = errors.New("i2cdev: invalid block length")
	// ErrBus matches every *BusError with errors.Is.
	ErrBus = errors.New("i2cdev: bus error")

	errAddrRange = errors.New("address outside of 7 bit range")
)

// BusError is returned when a single transaction failed, either because the
// device did not acknowledge it or because the bus reported an I/O error.
type BusError struct {
	Op       string
	Addr     uint8
	Register uint8
	Err      error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("i2cdev: %s register 0x%02X at address 0x%02X: %v", e.Op, e.Register, e.Addr, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrBus.
func (e *BusError) Is(target error) bool {
	return target == ErrBus
}
