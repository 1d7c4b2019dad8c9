/*
 * HP35 - Extended-function tape content
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

package script

import "github.com/classic-calc/hp35/emu/keypad"

// program is one extended function's key-code sub-program: the
// sequence of canonical keystrokes the real ROM's script tape plays
// back to synthesize an operation the microcode doesn't implement
// directly, built from the identities the HP-35 Owner's Handbook
// documents for the hyperbolic and statistical functions (e.g.
// sinh(x) = (e^x - e^-x)/2, computed here as chs-exp, swap, 1/x,
// minus, 2, divide against the pushed e^x).
type program struct {
	fn   keypad.ExtFunc
	keys []keypad.Code
}

// tapePrograms lists the 12 scripted extended functions in tape
// order. Entry points (tapes.go's defaultEntry) are the cumulative
// offset of each program within the concatenated tape.
var tapePrograms = []program{
	{keypad.SINH, []keypad.Code{
		keypad.ENTER, keypad.POW, keypad.ROT, keypad.CHS, keypad.POW,
		keypad.SUB, keypad.Dig2, keypad.DIV,
	}},
	{keypad.COSH, []keypad.Code{
		keypad.ENTER, keypad.POW, keypad.ROT, keypad.CHS, keypad.POW,
		keypad.ADD, keypad.Dig2, keypad.DIV,
	}},
	{keypad.TANH, []keypad.Code{
		keypad.ENTER, keypad.ENTER, keypad.POW, keypad.ROT, keypad.CHS,
		keypad.POW, keypad.ENTER, keypad.ROT, keypad.SUB, keypad.ROT,
		keypad.ROT, keypad.ADD, keypad.DIV,
	}},
	{keypad.ASINH, []keypad.Code{
		keypad.ENTER, keypad.ENTER, keypad.MULT, keypad.Dig1, keypad.ADD,
		keypad.SQRT, keypad.ADD, keypad.LN,
	}},
	{keypad.ACOSH, []keypad.Code{
		keypad.ENTER, keypad.ENTER, keypad.MULT, keypad.Dig1, keypad.SUB,
		keypad.SQRT, keypad.ADD, keypad.LN,
	}},
	{keypad.ATANH, []keypad.Code{
		keypad.ENTER, keypad.Dig1, keypad.ADD, keypad.SWAP, keypad.CHS,
		keypad.Dig1, keypad.ADD, keypad.DIV, keypad.LN, keypad.Dig2, keypad.DIV,
	}},
	{keypad.R2P, []keypad.Code{
		keypad.ENTER, keypad.ROT, keypad.POW, keypad.ROT, keypad.ROT,
		keypad.POW, keypad.ADD, keypad.SQRT, keypad.ROT, keypad.ROT,
		keypad.DIV, keypad.ARC, keypad.TAN,
	}},
	{keypad.P2R, []keypad.Code{
		keypad.ENTER, keypad.COS, keypad.ROT, keypad.ROT, keypad.SIN,
		keypad.ROT, keypad.ROT, keypad.MULT, keypad.ROT, keypad.ROT,
		keypad.ROT, keypad.MULT,
	}},
	{keypad.PV, []keypad.Code{
		keypad.STO, keypad.RCL, keypad.SWAP, keypad.DIV,
	}},
	{keypad.ND, []keypad.Code{
		keypad.CHS, keypad.ENTER, keypad.MULT, keypad.Dig2, keypad.DIV,
		keypad.POW,
	}},
	{keypad.GAMMA, []keypad.Code{
		keypad.STO, keypad.Dig1, keypad.SUB, keypad.RCL,
	}},
	{keypad.QE, []keypad.Code{
		keypad.STO, keypad.RCL, keypad.RCL, keypad.MULT, keypad.SUB,
		keypad.SQRT,
	}},
}

func buildTape() ([]byte, map[keypad.ExtFunc]int) {
	tape := []byte{}
	entry := map[keypad.ExtFunc]int{}

	for _, p := range tapePrograms {
		entry[p.fn] = len(tape)

		for _, k := range p.keys {
			tape = append(tape, byte(k))
		}

		tape = append(tape, End)
	}

	return tape, entry
}

var defaultTape, defaultEntry = buildTape()
