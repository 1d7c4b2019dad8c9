/*
 * HP35 - Terminal shell (termbox)
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

// cmd/hp35tui is the concrete, swappable terminal host shell: a
// termbox keyboard poller feeding emu/core and a renderer translating
// emu/display.Frame cells into seven-segment glyphs, the same
// division of labor as ejholmes/chip8's keyboard/terminalDisplay pair
// (the core loop itself never imports termbox).
package main

import (
	"fmt"
	"os"

	"github.com/nsf/termbox-go"

	"github.com/classic-calc/hp35/emu/core"
	"github.com/classic-calc/hp35/emu/display"
	"github.com/classic-calc/hp35/emu/keypad"
	"github.com/classic-calc/hp35/emu/rom"
)

// keyCols maps a terminal rune to the physical-key column the
// standard HP-35 dispatch table expects (spec.md §6), for the 16
// function-row positions.
var keyCols = map[rune]int{
	'c': 0, 'e': 1, 'l': 2, 'o': 3,
	'p': 4, 'r': 5, 's': 6, 't': 7,
	'w': 8, 'i': 9, 'n': 10, 'j': 11,
	'g': 12, 'q': 13, 'x': 14, '\r': 15,
}

// rawKeys maps a terminal rune directly to a canonical key code for
// the digit and arithmetic keys the 3x16 dispatch table has no column
// for (emu/core.RawKey exists exactly for this).
var rawKeys = map[rune]keypad.Code{
	'0': keypad.Dig0, '1': keypad.Dig1, '2': keypad.Dig2, '3': keypad.Dig3,
	'4': keypad.Dig4, '5': keypad.Dig5, '6': keypad.Dig6, '7': keypad.Dig7,
	'8': keypad.Dig8, '9': keypad.Dig9,
	'+': keypad.ADD, '-': keypad.SUB, '*': keypad.MULT, '/': keypad.DIV,
	'.': keypad.DOT, 'v': keypad.PI,
}

func main() {
	if len(os.Args) < 2 {
		os.Exit(2)
	}

	image, err := rom.LoadFile(os.Args[1])
	if err != nil {
		os.Exit(1)
	}

	if err := termbox.Init(); err != nil {
		os.Exit(1)
	}
	defer termbox.Close()

	in := make(chan core.Packet, 16)
	calc := core.NewCore(image, in, renderFrame)
	go calc.Start()
	defer calc.Stop()

	renderStatus(calc)

	for {
		ev := termbox.PollEvent()
		if ev.Type != termbox.EventKey {
			continue
		}

		switch {
		case ev.Key == termbox.KeyEsc || ev.Ch == 'Q':
			return

		case ev.Key == termbox.KeyEnter:
			calc.SendKey(keyCols['\r'])

		case ev.Ch == 'f':
			calc.SendCycleLayer()

		case ev.Ch == 0:
			// unhandled control key

		default:
			if code, ok := rawKeys[ev.Ch]; ok {
				calc.SendRawKey(byte(code))
				continue
			}
			if col, ok := keyCols[ev.Ch]; ok {
				calc.SendKey(col)
			}
		}

		renderStatus(calc)
	}
}

// renderFrame draws one projected display frame as seven-segment
// glyphs across the top row of the terminal. It runs on the core
// loop's own goroutine (emu/core.Core's onFrame contract), so it must
// not block: termbox.SetCell/Flush are cheap, synchronous calls.
func renderFrame(f display.Frame) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	for i, cell := range f {
		termbox.SetCell(i*3, 0, glyph(cell), termbox.ColorGreen, termbox.ColorDefault)
		if cell&0x80 != 0 {
			termbox.SetCell(i*3+1, 0, '.', termbox.ColorGreen, termbox.ColorDefault)
		}
	}

	termbox.Flush()
}

// glyph renders one seven-segment bitmap as the closest printable
// digit or a blank/minus, for a terminal that cannot draw segments
// directly.
func glyph(c display.Cell) rune {
	switch c & 0x7F {
	case 0x3F:
		return '0'
	case 0x06:
		return '1'
	case 0x5B:
		return '2'
	case 0x4F:
		return '3'
	case 0x66:
		return '4'
	case 0x6D:
		return '5'
	case 0x7D:
		return '6'
	case 0x07:
		return '7'
	case 0x7F:
		return '8'
	case 0x6F:
		return '9'
	case 0x40:
		return '-'
	default:
		return ' '
	}
}

// renderStatus draws PC/Offset/error state on the terminal's status
// line, a plain-text stand-in for the physical HP-35's lack of any
// such readout (useful while driving the emulator from a keyboard
// instead of reading its flashing-display error banner directly).
func renderStatus(c *core.Core) {
	text := fmt.Sprintf("PC %03o  OFFSET %d  ERROR %v", c.PC(), c.Offset(), c.ErrorTrap())

	for i, ch := range text {
		termbox.SetCell(i, 2, ch, termbox.ColorWhite, termbox.ColorDefault)
	}

	termbox.Flush()
}
