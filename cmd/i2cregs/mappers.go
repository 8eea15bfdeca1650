// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/alecthomas/kong"
)

// intMapper decodes integers in any base strconv understands, so registers
// and values can be given as 0x10, 0b1010 or 16.
type intMapper struct{}

func (intMapper) Decode(ctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	if err := ctx.Scan.PopValueInto("int", &value); err != nil {
		return err
	}
	i, err := strconv.ParseInt(value, 0, 64)
	if err != nil {
		return err
	}
	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if target.OverflowInt(i) {
			return fmt.Errorf("%s is out of range", value)
		}
		target.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if i < 0 || target.OverflowUint(uint64(i)) {
			return fmt.Errorf("%s is out of range", value)
		}
		target.SetUint(uint64(i))
	default:
		return fmt.Errorf("int mapper can't decode into %s", target.Type())
	}
	return nil
}
