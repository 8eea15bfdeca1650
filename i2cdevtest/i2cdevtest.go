// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package i2cdevtest implements a simulated register based I²C peripheral
// for testing code built on i2cdev.
//
// Unlike i2ctest.Playback, which checks a scripted sequence of transactions,
// Registers keeps state so values written can be read back.
package i2cdevtest

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

// ErrNoDevice is returned for transactions addressed to another device, as a
// real bus reports a missing acknowledge.
var ErrNoDevice = errors.New("i2cdevtest: no device at address")

// Registers is an i2c.Bus with a single peripheral exposing 256 byte wide
// registers.
//
// The first byte written selects the register pointer, following bytes are
// stored at consecutive registers. Bytes read come from consecutive registers
// starting at the pointer. The pointer wraps around after 0xFF.
type Registers struct {
	sync.Mutex
	// Addr is the address the peripheral answers to.
	Addr uint16
	// Regs is the register file.
	Regs [256]byte
	// Err, when set, is returned by every Tx and nothing is recorded.
	Err error
	// Ops is the list of transactions that reached the peripheral.
	Ops []i2ctest.IO

	pointer uint8
}

func (r *Registers) String() string {
	return fmt.Sprintf("registers(0x%02X)", r.Addr)
}

// Tx implements i2c.Bus.
func (r *Registers) Tx(addr uint16, w, rd []byte) error {
	r.Lock()
	defer r.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if addr != r.Addr {
		return ErrNoDevice
	}
	if len(w) > 0 {
		r.pointer = w[0]
		for i, b := range w[1:] {
			r.Regs[r.pointer+uint8(i)] = b
		}
	}
	for i := range rd {
		rd[i] = r.Regs[r.pointer+uint8(i)]
	}
	io := i2ctest.IO{Addr: addr}
	if len(w) != 0 {
		io.W = append([]byte(nil), w...)
	}
	if len(rd) != 0 {
		io.R = append([]byte(nil), rd...)
	}
	r.Ops = append(r.Ops, io)
	return nil
}

// SetSpeed implements i2c.Bus.
func (r *Registers) SetSpeed(f physic.Frequency) error {
	return nil
}

// Close implements i2c.BusCloser.
func (r *Registers) Close() error {
	return nil
}

var _ i2c.BusCloser = &Registers{}
