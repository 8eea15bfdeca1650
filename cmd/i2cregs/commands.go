// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"math"

	"github.com/GermanBionicSystems/smbus/common"
)

func register(r int) (uint8, error) {
	if r < 0 || r > 0xFF {
		return 0, fmt.Errorf("register 0x%X out of range", r)
	}
	return uint8(r), nil
}

type GetCmd struct {
	Register int    `arg:"" name:"register" help:"Register to read." type:"int"`
	Width    string `optional:"" help:"One of u8, s8, u16 or s16." default:"u8"`
}

func (g *GetCmd) Run(c *Context) error {
	reg, err := register(g.Register)
	if err != nil {
		return err
	}
	switch g.Width {
	case "u8":
		v, err := c.dev.ReadU8(reg)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "0x%02X (%d)\n", v, v)
	case "s8":
		v, err := c.dev.ReadS8(reg)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%d\n", v)
	case "u16":
		v, err := c.dev.ReadU16(reg)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "0x%04X (%d)\n", v, v)
	case "s16":
		v, err := c.dev.ReadS16(reg)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%d\n", v)
	default:
		return fmt.Errorf("unknown width %q", g.Width)
	}
	return nil
}

type SetCmd struct {
	Register int    `arg:"" name:"register" help:"Register to write." type:"int"`
	Value    int64  `arg:"" name:"value" help:"Value to write, truncated to the width." type:"int"`
	Width    string `optional:"" help:"One of u8 or u16." default:"u8"`
}

func (s *SetCmd) Run(c *Context) error {
	reg, err := register(s.Register)
	if err != nil {
		return err
	}
	switch s.Width {
	case "u8":
		if s.Value < 0 || s.Value > math.MaxUint16 {
			return fmt.Errorf("value %d out of range", s.Value)
		}
		err = c.dev.WriteU8(reg, uint16(s.Value))
	case "u16":
		if s.Value < 0 || s.Value > math.MaxUint32 {
			return fmt.Errorf("value %d out of range", s.Value)
		}
		err = c.dev.WriteU16(reg, uint32(s.Value))
	default:
		return fmt.Errorf("unknown width %q", s.Width)
	}
	if err != nil {
		return err
	}
	c.log.Infof("Wrote register 0x%02X", reg)
	return nil
}

type DumpCmd struct {
	Register int `arg:"" name:"register" help:"First register to read." type:"int"`
	Len      int `optional:"" help:"Number of registers to read." default:"16"`
}

func (d *DumpCmd) Run(c *Context) error {
	reg, err := register(d.Register)
	if err != nil {
		return err
	}
	data, err := c.dev.ReadBlock(reg, d.Len)
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, hexdump(int(reg), data))
	return nil
}

type WriteCmd struct {
	Register int    `arg:"" name:"register" help:"First register to write." type:"int"`
	Data     string `arg:"" name:"data" help:"Hex encoded bytes, at most 32."`
}

func (w *WriteCmd) Run(c *Context) error {
	reg, err := register(w.Register)
	if err != nil {
		return err
	}
	data, err := hex.DecodeString(w.Data)
	if err != nil {
		return err
	}
	if err := c.dev.WriteBlock(reg, data); err != nil {
		return err
	}
	c.log.Infof("Wrote %d bytes from register 0x%02X", len(data), reg)
	return nil
}

type ReverseCmd struct {
	Value int64 `arg:"" name:"value" help:"Value to byte swap." type:"int"`
	Width int   `optional:"" help:"16 or 32." default:"16"`
}

func (r *ReverseCmd) Run(c *Context) error {
	switch r.Width {
	case 16:
		if r.Value < 0 || r.Value > math.MaxUint16 {
			return fmt.Errorf("value %d does not fit in 16 bits", r.Value)
		}
		fmt.Fprintf(c.out, "0x%04X\n", common.ReverseBytes16(uint16(r.Value)))
	case 32:
		if r.Value < 0 || r.Value > math.MaxUint32 {
			return fmt.Errorf("value %d does not fit in 32 bits", r.Value)
		}
		fmt.Fprintf(c.out, "0x%08X\n", common.ReverseBytes32(uint32(r.Value)))
	default:
		return fmt.Errorf("unsupported width %d", r.Width)
	}
	return nil
}
