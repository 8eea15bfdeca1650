// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/GermanBionicSystems/smbus/i2cdev"
	"github.com/GermanBionicSystems/smbus/i2cdevtest"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, bus *i2cdevtest.Registers, args ...string) (string, error) {
	t.Helper()
	var c cli
	k, err := newParser(&c)
	if err != nil {
		t.Fatal(err)
	}
	ctx, err := k.Parse(args)
	if err != nil {
		t.Fatal(err)
	}
	logger, _ := logtest.NewNullLogger()
	var out bytes.Buffer
	r := &Context{out: &out, log: logger}
	if bus != nil {
		r.dev = i2cdev.New(bus, uint8(bus.Addr), nil)
	}
	err = ctx.Run(r)
	return out.String(), err
}

func TestGet(t *testing.T) {
	bus := &i2cdevtest.Registers{Addr: 0x48}
	bus.Regs[0x10] = 0xff
	bus.Regs[0x20] = 0x00
	bus.Regs[0x21] = 0x80

	var tests = []struct {
		args     []string
		expected string
	}{
		{[]string{"get", "0x10"}, "0xFF (255)\n"},
		{[]string{"get", "16", "--width", "s8"}, "-1\n"},
		{[]string{"get", "0x20", "--width", "u16"}, "0x8000 (32768)\n"},
		{[]string{"get", "0x20", "--width", "s16"}, "-32768\n"},
	}
	for _, test := range tests {
		out, err := run(t, bus, test.args...)
		if err != nil {
			t.Errorf("%v: %v", test.args, err)
			continue
		}
		if out != test.expected {
			t.Errorf("%v: output %q expected %q", test.args, out, test.expected)
		}
	}

	if _, err := run(t, bus, "get", "0x10", "--width", "u32"); err == nil {
		t.Error("expected an error for an unknown width")
	}
	if _, err := run(t, bus, "get", "0x100"); err == nil {
		t.Error("expected an error for a register out of range")
	}
}

func TestSet(t *testing.T) {
	bus := &i2cdevtest.Registers{Addr: 0x48}
	if _, err := run(t, bus, "set", "0x10", "0x1ff"); err != nil {
		t.Fatal(err)
	}
	if bus.Regs[0x10] != 0xff {
		t.Errorf("register 0x10=%#02x expected 0xff", bus.Regs[0x10])
	}
	if _, err := run(t, bus, "set", "0x20", "0x1234", "--width", "u16"); err != nil {
		t.Fatal(err)
	}
	if bus.Regs[0x20] != 0x34 || bus.Regs[0x21] != 0x12 {
		t.Errorf("register pair holds %#02x %#02x", bus.Regs[0x20], bus.Regs[0x21])
	}
	if _, err := run(t, bus, "set", "0x10", "0x10000"); err == nil {
		t.Error("expected an error for a value out of range")
	}
}

func TestWriteDump(t *testing.T) {
	bus := &i2cdevtest.Registers{Addr: 0x48}
	if _, err := run(t, bus, "write", "0x30", "de00ad41"); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, bus, "dump", "0x30", "--len", "4")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "30  de 00 ad 41 ") {
		t.Errorf("unexpected dump %q", out)
	}
	if !strings.Contains(out, "|...A") {
		t.Errorf("ascii column missing from %q", out)
	}

	if _, err := run(t, bus, "write", "0x30", "zz"); err == nil {
		t.Error("expected an error for invalid hex")
	}
	long := strings.Repeat("00", i2cdev.MaxBlockLen+1)
	if _, err := run(t, bus, "write", "0x30", long); !errors.Is(err, i2cdev.ErrInvalidLength) {
		t.Errorf("expected ErrInvalidLength, got %v", err)
	}
}

func TestHexdumpRows(t *testing.T) {
	data := make([]byte, 20)
	out := hexdump(0xf8, data)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "f8  ") || !strings.HasPrefix(lines[1], "08  ") {
		t.Errorf("unexpected row offsets %q", out)
	}
}

func TestReverse(t *testing.T) {
	out, err := run(t, nil, "reverse", "0x1234")
	if err != nil {
		t.Fatal(err)
	}
	if out != "0x3412\n" {
		t.Errorf("output %q", out)
	}
	out, err = run(t, nil, "reverse", "0x12345678", "--width", "32")
	if err != nil {
		t.Fatal(err)
	}
	if out != "0x78563412\n" {
		t.Errorf("output %q", out)
	}
	if _, err := run(t, nil, "reverse", "0x12345", "--width", "16"); err == nil {
		t.Error("expected an error for a value wider than 16 bits")
	}
}

func TestFlags(t *testing.T) {
	var c cli
	k, err := newParser(&c)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := k.Parse([]string{"--bus", "0x2", "--addr", "0x48", "reverse", "1"}); err != nil {
		t.Fatal(err)
	}
	if c.Bus != 2 || c.Addr != 0x48 {
		t.Errorf("bus=%d addr=%#x", c.Bus, c.Addr)
	}

	logger, _ := logtest.NewNullLogger()
	if _, err := openDevice(&cli{Addr: -1}, logger); !errors.Is(err, errNoAddr) {
		t.Errorf("expected errNoAddr, got %v", err)
	}
	if _, err := openDevice(&cli{Addr: 0x80}, logger); err == nil {
		t.Error("expected an error for an 8 bit address")
	}
	if _, err := openDevice(&cli{Addr: 0x48, Bus: 1 << 30}, logger); !errors.Is(err, i2cdev.ErrBusUnavailable) {
		t.Errorf("expected ErrBusUnavailable, got %v", err)
	}
}

func TestLogLevel(t *testing.T) {
	for _, name := range []string{"-1", "7", "verbose"} {
		if _, err := getLogger(name); err == nil {
			t.Errorf("getLogger(%q) accepted an invalid level", name)
		}
	}
	log, err := getLogger("debug")
	if err != nil {
		t.Fatal(err)
	}
	if log.Logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level %s, expected debug", log.Logger.GetLevel())
	}

	var c cli
	k, err := newParser(&c)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := k.Parse([]string{"reverse", "1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := getLogger(c.LogLevel); err != nil {
		t.Errorf("default level %q rejected: %v", c.LogLevel, err)
	}
}

func TestHexdumpPlain(t *testing.T) {
	data := []byte{0x00, 0x7f, 0xff}
	out := hexdump(0, data)
	if strings.Contains(out, "\033") {
		t.Errorf("escape sequences without color support: %q", out)
	}
	if out != "00  00 7f ff "+strings.Repeat("   ", 13)+"  |...             |\n" {
		t.Errorf("unexpected plain dump %q", out)
	}

	color.NoColor = false
	defer func() { color.NoColor = true }()
	out = hexdump(0, data)
	if !strings.HasSuffix(out, "\033[0m\n") {
		t.Errorf("colored dump is not reset: %q", out)
	}
}
