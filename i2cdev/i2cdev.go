// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package i2cdev

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/GermanBionicSystems/smbus/common"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// MaxBlockLen is the largest block transfer supported, the SMBus block limit.
const MaxBlockLen = 32

// Opts represents configurable options for a Dev.
type Opts struct {
	// Logger receives a Debug level record for every transaction. If nil,
	// the records are discarded.
	Logger logrus.FieldLogger
}

// Dev represents a single peripheral on an I²C bus.
type Dev struct {
	d    *i2c.Dev
	addr uint8
	// closer is set when the Dev opened the bus itself.
	closer io.Closer
	log    *logrus.Entry
}

// Open initializes the host drivers and opens the I²C bus with the given
// number, returning a Dev for the peripheral at addr. The Dev owns the bus;
// call Close to release it.
//
// An invalid addr is not detected here; every transaction on the returned
// Dev will fail instead.
func Open(addr uint8, busNumber uint32, opts *Opts) (*Dev, error) {
	return open(strconv.FormatUint(uint64(busNumber), 10), addr, opts)
}

// OpenDefault is like Open but uses the first I²C bus the host exposes.
func OpenDefault(addr uint8, opts *Opts) (*Dev, error) {
	return open("", addr, opts)
}

func open(name string, addr uint8, opts *Opts) (*Dev, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBusUnavailable, err)
	}
	bus, err := i2creg.Open(name)
	if err != nil {
		if name == "" {
			name = "default"
		}
		return nil, fmt.Errorf("%w: bus %s: %w", ErrBusUnavailable, name, err)
	}
	d := New(bus, addr, opts)
	d.closer = bus
	return d, nil
}

// New returns a Dev for the peripheral at addr on an already opened bus. The
// caller keeps ownership of bus.
func New(bus i2c.Bus, addr uint8, opts *Opts) *Dev {
	var log logrus.FieldLogger
	if opts != nil && opts.Logger != nil {
		log = opts.Logger
	} else {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Dev{
		d:    &i2c.Dev{Bus: bus, Addr: uint16(addr)},
		addr: addr,
		log: log.WithFields(logrus.Fields{
			"bus":  bus.String(),
			"addr": fmt.Sprintf("0x%02X", addr),
		}),
	}
}

// Addr returns the peripheral address.
func (d *Dev) Addr() uint8 {
	return d.addr
}

// WriteU8 writes the low 8 bits of value to register.
func (d *Dev) WriteU8(register uint8, value uint16) error {
	v := uint8(value & 0xFF)
	if err := d.tx("write byte", register, []byte{register, v}, nil); err != nil {
		return err
	}
	d.trace("write", register, fmt.Sprintf("0x%02X", v)).Debug("wrote register")
	return nil
}

// WriteU16 writes the low 16 bits of value to the register pair starting at
// register, least significant byte first.
func (d *Dev) WriteU16(register uint8, value uint32) error {
	v := uint16(value & 0xFFFF)
	w := []byte{register, 0, 0}
	binary.LittleEndian.PutUint16(w[1:], v)
	if err := d.tx("write word", register, w, nil); err != nil {
		return err
	}
	d.trace("write", register, fmt.Sprintf("0x%04X", v)).Debug("wrote register pair")
	return nil
}

// WriteBlock writes data to consecutive registers starting at register in a
// single transaction. data may be at most MaxBlockLen bytes.
func (d *Dev) WriteBlock(register uint8, data []byte) error {
	if len(data) > MaxBlockLen {
		return fmt.Errorf("%w: write of %d bytes, limit is %d", ErrInvalidLength, len(data), MaxBlockLen)
	}
	w := make([]byte, 1+len(data))
	w[0] = register
	copy(w[1:], data)
	if err := d.tx("write block", register, w, nil); err != nil {
		return err
	}
	d.trace("write", register, fmt.Sprintf("% X", data)).Debug("wrote block")
	return nil
}

// ReadBlock reads length bytes from consecutive registers starting at
// register in a single transaction. length may be at most MaxBlockLen.
//
// A zero length returns an empty slice without touching the bus.
func (d *Dev) ReadBlock(register uint8, length int) ([]byte, error) {
	if length < 0 || length > MaxBlockLen {
		return nil, fmt.Errorf("%w: read of %d bytes, limit is %d", ErrInvalidLength, length, MaxBlockLen)
	}
	r := make([]byte, length)
	if length == 0 {
		return r, nil
	}
	if err := d.tx("read block", register, []byte{register}, r); err != nil {
		return nil, err
	}
	d.trace("read", register, fmt.Sprintf("% X", r)).Debug("read block")
	return r, nil
}

// ReadU8 reads an unsigned byte from register.
func (d *Dev) ReadU8(register uint8) (uint8, error) {
	raw, err := d.readByte(register)
	if err != nil {
		return 0, err
	}
	result := raw & 0xFF
	d.trace("read", register, fmt.Sprintf("0x%02X", result)).Debug("read register")
	return result, nil
}

// ReadS8 reads a two's complement signed byte from register.
func (d *Dev) ReadS8(register uint8) (int8, error) {
	raw, err := d.readByte(register)
	if err != nil {
		return 0, err
	}
	result := common.Signed8(raw & 0xFF)
	d.trace("read", register, strconv.Itoa(int(result))).Debug("read register")
	return result, nil
}

// ReadU16 reads an unsigned word from the register pair starting at register.
func (d *Dev) ReadU16(register uint8) (uint16, error) {
	raw, err := d.readWord(register)
	if err != nil {
		return 0, err
	}
	result := raw & 0xFFFF
	d.trace("read", register, fmt.Sprintf("0x%04X", result)).Debug("read register pair")
	return result, nil
}

// ReadS16 reads a two's complement signed word from the register pair
// starting at register.
func (d *Dev) ReadS16(register uint8) (int16, error) {
	raw, err := d.readWord(register)
	if err != nil {
		return 0, err
	}
	// The word primitive already limits raw to 16 bits, no mask is applied.
	result := common.Signed16(raw)
	d.trace("read", register, strconv.Itoa(int(result))).Debug("read register pair")
	return result, nil
}

// Halt implements conn.Resource. There is never an operation in flight
// between calls so it does nothing.
func (d *Dev) Halt() error {
	return nil
}

// Close releases the bus if the Dev opened it. It is safe to call more than
// once.
func (d *Dev) Close() error {
	if d.closer == nil {
		return nil
	}
	c := d.closer
	d.closer = nil
	if err := c.Close(); err != nil {
		return fmt.Errorf("i2cdev: %w", err)
	}
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("i2cdev: %s", d.d.String())
}

func (d *Dev) readByte(register uint8) (uint8, error) {
	r := make([]byte, 1)
	if err := d.tx("read byte", register, []byte{register}, r); err != nil {
		return 0, err
	}
	return r[0], nil
}

func (d *Dev) readWord(register uint8) (uint16, error) {
	r := make([]byte, 2)
	if err := d.tx("read word", register, []byte{register}, r); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r), nil
}

// tx performs one transaction, validating the address first.
func (d *Dev) tx(op string, register uint8, w, r []byte) error {
	if d.addr > 0x7F {
		return &BusError{Op: op, Addr: d.addr, Register: register, Err: errAddrRange}
	}
	if err := d.d.Tx(w, r); err != nil {
		return &BusError{Op: op, Addr: d.addr, Register: register, Err: err}
	}
	return nil
}

func (d *Dev) trace(direction string, register uint8, value string) *logrus.Entry {
	return d.log.WithFields(logrus.Fields{
		"register":  fmt.Sprintf("0x%02X", register),
		"direction": direction,
		"value":     value,
	})
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
