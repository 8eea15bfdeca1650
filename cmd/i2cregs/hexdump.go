// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	imgcolor "image/color"
	"strings"

	"github.com/fatih/color"
	"github.com/maruel/ansi256"
)

// hexdump formats data read from consecutive registers starting at offset.
// Non-zero bytes are highlighted and each row ends with a strip of blocks
// whose brightness follows the byte values. Without color support the strip
// and all escape sequences are left out.
func hexdump(offset int, data []byte) string {
	var result strings.Builder
	mark := color.New(color.FgYellow)

	for len(data) > 0 {
		l := len(data)
		if l > 16 {
			l = 16
		}
		work := data[:l]
		data = data[l:]

		var workHex, workASCII, strip string
		for i := 0; i < 16; i++ {
			if i >= len(work) {
				workHex += "   "
				workASCII += " "
			} else {
				m := work[i]
				if m != 0 {
					workHex += mark.Sprintf("%02x", m) + " "
				} else {
					workHex += "00 "
				}
				if !color.NoColor {
					strip += ansi256.Default.Block(imgcolor.NRGBA{m, m, m, 255})
				}

				if m < 32 || m > 126 {
					m = '.'
				}
				workASCII += string(rune(m))
			}
			if i%8 == 7 {
				workHex += " "
			}
		}

		if color.NoColor {
			fmt.Fprintf(&result, "%02x  %s|%s|\n", offset&0xFF, workHex, workASCII)
		} else {
			fmt.Fprintf(&result, "%02x  %s|%s| %s\033[0m\n", offset&0xFF, workHex, workASCII, strip)
		}
		offset += l
	}

	return result.String()
}
