/*
 * HP35 - Display projection
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

// Package display projects the A and B working registers onto a
// seven-segment frame buffer, on the falling edge of the CPU's
// display-enable latch (spec.md §4.7).
package display

// Cell is one seven-segment position: the low 7 bits are the segment
// bitmap (a..g), bit 7 is the decimal point.
type Cell byte

const dpBit = 0x80

// Segment bitmaps for digits 0-9 and blank, abcdefg packed into the
// low 7 bits (a = bit 0). There is no minus-sign cell of its own: the
// sign position reuses the 'g' segment alone, the conventional single-
// bar rendering of a minus sign on a seven-segment digit.
const (
	segBlank = 0x00
	segMinus = 0x40 // g only
	seg0     = 0x3F
	seg1     = 0x06
	seg2     = 0x5B
	seg3     = 0x4F
	seg4     = 0x66
	seg5     = 0x6D
	seg6     = 0x7D
	seg7     = 0x07
	seg8     = 0x7F
	seg9     = 0x6F
)

var digitSeg = [10]byte{seg0, seg1, seg2, seg3, seg4, seg5, seg6, seg7, seg8, seg9}

// Frame is the 8-cell seven-segment frame buffer: cell 0 is the
// mantissa sign, cells 1..7 the mantissa digits most-significant
// first, matching the left-to-right reading order of the physical
// display (spec.md §4.7, §6 "Display frame buffer").
type Frame [8]Cell

// Project reads the A and B working registers on a display-enable
// falling edge and produces the frame the host driver renders. The
// digit value at each mantissa position comes from A; B at the same
// index carries the per-digit flags (blank, decimal point) the real
// chip set uses to punctuate the mantissa, per spec.md §4.7: index 13
// is the sign slot, 12..6 the mantissa, 2..0 the exponent.
func Project(a, b [14]byte) Frame {
	var f Frame

	if a[13] >= 8 {
		f[0] = Cell(segMinus)
	} else {
		f[0] = Cell(segBlank)
	}

	cell := 1

	for i := 12; i >= 6; i-- {
		flag := b[i]
		digit := a[i]

		var bits byte
		if flag >= 8 {
			bits = segBlank
		} else if digit <= 9 {
			bits = digitSeg[digit]
		}

		f[cell] = Cell(bits)
		if flag == 2 {
			f[cell] |= Cell(dpBit)
		}
		cell++
	}

	return f
}

// ExpSign, ExpTens, ExpUnits read the exponent fields out of the A
// register directly — they are not part of the 8-cell mantissa
// bitmap (spec.md §4.7 lists them as auxiliary indices 0..2 of A,
// distinct from the 8-cell buffer the external interface names in
// §6), so callers needing the exponent read it from the raw register
// rather than from a Frame cell.
func ExpSign(a [14]byte) bool { return a[2] >= 8 }
func ExpTens(a [14]byte) byte { return a[1] }
func ExpUnits(a [14]byte) byte { return a[0] }
