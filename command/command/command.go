/*
 * HP35 - Shared console formatting and key-name lookup
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

// Package command holds console-facing helpers shared by the line-mode
// parser and any future terminal front end: the key-name table a human
// types at a prompt, and register dump formatting. Unlike the machine
// it talks to, this package is free to keep lookup tables as
// package-level state; there's exactly one operator console, not one
// per emulated calculator.
package command

import (
	"fmt"
	"strings"

	"github.com/classic-calc/hp35/emu/cpu"
	"github.com/classic-calc/hp35/emu/keypad"
)

const hexDigits = "0123456789ABCDEF"

var keyNames = map[string]byte{
	"clr": byte(keypad.CLR), "exp": byte(keypad.EXP), "ln": byte(keypad.LN),
	"log": byte(keypad.LOG), "pow": byte(keypad.POW), "rcl": byte(keypad.RCL),
	"sto": byte(keypad.STO), "rot": byte(keypad.ROT), "swap": byte(keypad.SWAP),
	"inv": byte(keypad.INV), "add": byte(keypad.ADD), "mult": byte(keypad.MULT),
	"pi": byte(keypad.PI), "dot": byte(keypad.DOT), "div": byte(keypad.DIV),
	"tan": byte(keypad.TAN), "cos": byte(keypad.COS), "sin": byte(keypad.SIN),
	"arc": byte(keypad.ARC), "sqrt": byte(keypad.SQRT), "sub": byte(keypad.SUB),
	"clx": byte(keypad.CLX), "eex": byte(keypad.EEX), "chs": byte(keypad.CHS),
	"enter": byte(keypad.ENTER),
	"0":     byte(keypad.Dig0), "1": byte(keypad.Dig1), "2": byte(keypad.Dig2),
	"3": byte(keypad.Dig3), "4": byte(keypad.Dig4), "5": byte(keypad.Dig5),
	"6": byte(keypad.Dig6), "7": byte(keypad.Dig7), "8": byte(keypad.Dig8),
	"9": byte(keypad.Dig9),
}

// KeyByName looks up a canonical key code by its console name, matched
// case-insensitively. Digits are named by their own digit character.
func KeyByName(name string) (byte, bool) {
	code, ok := keyNames[strings.ToLower(name)]
	return code, ok
}

// FormatRegisters renders the six working registers plus M and T as
// one line of hex nibbles per register, least significant digit last,
// matching how the digits are indexed in spec.md's register diagrams.
func FormatRegisters(a, b, c, d, e, f, m, t cpu.Reg) string {
	var sb strings.Builder

	row := func(name string, r cpu.Reg) {
		fmt.Fprintf(&sb, "%-2s ", name)
		for i := len(r) - 1; i >= 0; i-- {
			sb.WriteByte(hexDigits[r[i]&0xf])
		}
		sb.WriteByte('\n')
	}

	row("A", a)
	row("B", b)
	row("C", c)
	row("D", d)
	row("E", e)
	row("F", f)
	row("M", m)
	row("T", t)

	return sb.String()
}
