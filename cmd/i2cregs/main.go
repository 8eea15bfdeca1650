// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// i2cregs reads and writes the registers of a single I²C peripheral.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GermanBionicSystems/smbus/i2cdev"
	"github.com/alecthomas/kong"
	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Context is passed to the Run method of every command.
type Context struct {
	dev *i2cdev.Dev
	out io.Writer
	log logrus.FieldLogger
}

type cli struct {
	Bus      int `optional:"" help:"I²C bus number, -1 selects the first available bus." type:"int" default:"-1" env:"I2CREGS_BUS"`
	Addr     int `optional:"" help:"7 bit address of the peripheral." type:"int" default:"-1" env:"I2CREGS_ADDR"`
	LogLevel string `optional:"" help:"Log level: panic, fatal, error, warn, info, debug or trace. debug traces every transaction." default:"info" env:"I2CREGS_LOGLEVEL"`

	Get     GetCmd     `cmd:"" help:"Read and decode a register."`
	Set     SetCmd     `cmd:"" help:"Write a byte or word register."`
	Dump    DumpCmd    `cmd:"" help:"Read a block of registers and show a hexdump."`
	Write   WriteCmd   `cmd:"" help:"Write a hex encoded block of bytes to consecutive registers."`
	Reverse ReverseCmd `cmd:"" help:"Reverse the byte order of a 16 or 32 bit value."`
}

var errNoAddr = errors.New("--addr is required")

func newParser(c *cli) (*kong.Kong, error) {
	return kong.New(c,
		kong.Name("i2cregs"),
		kong.Description("Read and write the registers of an I²C peripheral."),
		kong.NamedMapper("int", intMapper{}))
}

func main() {
	var c cli
	k, err := newParser(&c)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	ctx, err := k.Parse(os.Args[1:])
	k.FatalIfErrorf(err)

	logger, err := getLogger(c.LogLevel)
	k.FatalIfErrorf(err)
	log := logger.WithField("prefix", "i2cregs")
	run := &Context{out: colorable.NewColorableStdout(), log: log}
	if !strings.HasPrefix(ctx.Command(), "reverse") {
		run.dev, err = openDevice(&c, log)
		if err != nil {
			log.WithError(err).Error("Failed to open device")
			os.Exit(1)
		}
	}

	err = ctx.Run(run)
	if run.dev != nil {
		err = multierr.Append(err, run.dev.Close())
	}
	if err != nil {
		log.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

func openDevice(c *cli, log logrus.FieldLogger) (*i2cdev.Dev, error) {
	if c.Addr < 0 {
		return nil, errNoAddr
	}
	if c.Addr > 0x7F {
		return nil, fmt.Errorf("address 0x%X is not a 7 bit address", c.Addr)
	}
	opts := &i2cdev.Opts{Logger: log}
	if c.Bus < 0 {
		return i2cdev.OpenDefault(uint8(c.Addr), opts)
	}
	return i2cdev.Open(uint8(c.Addr), uint32(c.Bus), opts)
}
