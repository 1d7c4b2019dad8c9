/*
 * HP35 - ROM disassembler
 *
 * Copyright 2026, classic-calc authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package disasm renders one HP-35 microinstruction byte pair as
// text. It re-derives the same bit fields emu/cpu's decoder uses
// (spec.md §4.2, §4.3); the two live in separate packages because one
// executes state and the other only ever reads two bytes, but the bit
// arithmetic itself must stay identical, so see emu/cpu/decode.go
// before changing either.
package disasm

import (
	"fmt"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

func formatByte(str *strings.Builder, data byte) {
	str.WriteByte(hexDigits[(data>>4)&0xf])
	str.WriteByte(hexDigits[data&0xf])
}

var arithMnemonic = map[byte]string{
	0x00: "TSTC", 0x02: "A-C>T", 0x03: "DECC", 0x04: "B>C",
	0x05: "0-C>C", 0x06: "0>C", 0x08: "SLA", 0x09: "A>B",
	0x0A: "A-C>C", 0x0C: "C>A", 0x0D: "TSTA", 0x0E: "A+C>C",
	0x0F: "C+1>C", 0x10: "A-B>T", 0x11: "B<>C", 0x12: "SRC",
	0x13: "DECA", 0x14: "SRB", 0x15: "C+C>C", 0x16: "SRA",
	0x17: "0>A", 0x18: "A-B>A", 0x19: "A<>B", 0x1A: "A-C>A",
	0x1B: "A-1>A", 0x1C: "A+B>A", 0x1D: "A<>C", 0x1E: "A+C>A",
	0x1F: "A+1>A",
}

var sliceName = map[byte]string{
	0: "P", 1: "MANT", 2: "EXP", 3: "ALL", 4: "0..P", 5: "MANT+S", 6: "D2", 7: "SIGN",
}

// bit-field accessors, mirroring emu/cpu.MicroInstruction exactly.

func family(h, l byte) byte     { return l & 0x03 }
func sliceCode(h, l byte) byte  { return (l >> 2) & 0x07 }
func opCode(h, l byte) byte     { return ((l >> 5) & 0x07) | ((h << 3) & 0x18) }
func bitSel(h, l byte) byte     { return ((h & 0x03) << 2) | ((l & 0xC0) >> 6) }
func branchTgt(h, l byte) byte  { return ((l & 0xFC) >> 2) | ((h & 0x03) << 6) }
func callTgt(h, l byte) byte    { return ((l >> 2) & 0x3F) | ((h << 6) & 0xC0) }
func constNibble(h, l byte) byte { return (l >> 6) | (h << 2) }
func l3f(l byte) byte           { return l & 0x3F }
func l7f(l byte) byte           { return l & 0x7F }
func hLow2(h byte) byte         { return h & 0x03 }
func lMaskEF(l byte) byte       { return l & 0xEF }

// Disassemble renders one (H, L) microinstruction pair as a mnemonic
// line. It always consumes exactly 2 bytes; the HP-35 microcode word
// is fixed-width, unlike the variable-length instructions a
// byte-oriented CISC disassembler has to track.
func Disassemble(h, l byte) string {
	switch family(h, l) {
	case 0b01:
		return fmt.Sprintf("CALL   %03o", callTgt(h, l))

	case 0b10:
		op := opCode(h, l)
		name, ok := arithMnemonic[op]

		if !ok {
			name = fmt.Sprintf("NOP(%02x)", op)
		}

		return fmt.Sprintf("%-7s %s", name, sliceName[sliceCode(h, l)])

	case 0b11:
		return fmt.Sprintf("BR     %03o", branchTgt(h, l))

	default:
		return miscMnemonic(h, l)
	}
}

func miscMnemonic(h, l byte) string {
	if l == 0xD0 {
		return "JMPKEY"
	}

	if l7f(l) == 0x30 {
		return "RET"
	}

	if l7f(l) == 0x10 {
		return "BANKSEL"
	}

	switch l3f(l) {
	case 0x14:
		return fmt.Sprintf("TSTBIT %d", bitSel(h, l))
	case 0x04:
		return fmt.Sprintf("SETBIT %d", bitSel(h, l))
	case 0x24:
		return fmt.Sprintf("CLRBIT %d", bitSel(h, l))
	case 0x34:
		return "CLRALLBIT"
	case 0x2C:
		return fmt.Sprintf("TSTP %d", bitSel(h, l))
	case 0x0C:
		return fmt.Sprintf("SETP %d", bitSel(h, l))
	case 0x3C:
		return "INCP"
	case 0x1C:
		return "DECP"
	case 0x18:
		return fmt.Sprintf("LDC %X", constNibble(h, l))
	}

	switch lMaskEF(l) {
	case 0xA8:
		switch hLow2(h) {
		case 0:
			return "SWAPCM"
		case 1:
			return "POP"
		case 2:
			return "C<M"
		case 3:
			return "CLRALL"
		}
	case 0x28:
		switch hLow2(h) {
		case 0:
			return "DISPOFF"
		case 1:
			return "PUSH"
		case 2:
			return "DISPTOGGLE"
		case 3:
			return "ROTDOWN"
		}
	}

	return "???"
}

// DisassembleRange renders every instruction in data (a sequence of
// (H, L) pairs) as one line per instruction, prefixed with its
// instruction index within data (its PC when data is one whole bank).
func DisassembleRange(data []byte) []string {
	lines := make([]string, 0, len(data)/2)

	for pc := 0; pc+1 < len(data); pc += 2 {
		h, l := data[pc], data[pc+1]

		var bytes strings.Builder
		formatByte(&bytes, h)
		formatByte(&bytes, l)

		lines = append(lines, fmt.Sprintf("%03d  %s  %s", pc/2, bytes.String(), Disassemble(h, l)))
	}

	return lines
}
