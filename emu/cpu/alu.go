/*
 * HP35 - BCD ALU and digit-slice primitives
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

package cpu

// addDigit is the decimal add-with-carry primitive (spec.md §4.1):
// one BCD digit in, one BCD digit plus carry-out out.
func addDigit(x, y, cin byte) (s, cout byte) {
	s = x + y + cin
	if s >= 10 {
		return s - 10, 1
	}

	return s, 0
}

// subDigit is the decimal sub-with-borrow primitive (spec.md §4.1).
func subDigit(x, y, bin byte) (d, bout byte) {
	// Signed arithmetic avoids an underflow wrap on the unsigned byte
	// before the borrow correction below.
	v := int(x) - int(y) - int(bin)
	if v < 0 {
		return byte(v + 10), 1
	}

	return byte(v), 0
}

// addSlice adds src into dst over [first, last] ascending, carrying
// between digits, and returns the final carry-out.
func addSlice(dst, src *Reg, first, last int, cin byte) byte {
	c := cin
	for i := first; i <= last; i++ {
		var s byte
		s, c = addDigit(dst[i], src[i], c)
		dst[i] = s
	}

	return c
}

// subSlice subtracts src from dst over [first, last] ascending,
// borrowing between digits, and returns the final borrow-out.
func subSlice(dst, src *Reg, first, last int, bin byte) byte {
	b := bin
	for i := first; i <= last; i++ {
		var d byte
		d, b = subDigit(dst[i], src[i], b)
		dst[i] = d
	}

	return b
}

// addSliceInto computes x+y over [first, last] into dst without dst
// necessarily aliasing x or y, returning the carry-out. Used by ops
// that write a register distinct from both operands (e.g. A+C→T).
func addSliceInto(dst, x, y *Reg, first, last int, cin byte) byte {
	c := cin
	for i := first; i <= last; i++ {
		var s byte
		s, c = addDigit(x[i], y[i], c)
		dst[i] = s
	}

	return c
}

// subSliceInto computes x-y over [first, last] into dst, returning the
// borrow-out.
func subSliceInto(dst, x, y *Reg, first, last int, bin byte) byte {
	b := bin
	for i := first; i <= last; i++ {
		var d byte
		d, b = subDigit(x[i], y[i], b)
		dst[i] = d
	}

	return b
}

// testNonzeroSlice reports whether any digit in [first, last] is
// nonzero, without modifying r.
func testNonzeroSlice(r *Reg, first, last int) bool {
	for i := first; i <= last; i++ {
		if r[i] != 0 {
			return true
		}
	}

	return false
}

// testDecrementZeroSlice simulates subtracting 1 from the slice
// [first, last] without writing the result back, and reports whether
// every resulting digit would be zero (spec.md §4.3's decrement-test
// opcodes).
func testDecrementZeroSlice(r *Reg, first, last int) bool {
	b := byte(1)
	allZero := true

	for i := first; i <= last; i++ {
		d, bout := subDigit(r[i], 0, b)
		b = bout

		if d != 0 {
			allZero = false
		}
	}

	return allZero
}

// copySlice copies src into dst over [first, last].
func copySlice(dst, src *Reg, first, last int) {
	for i := first; i <= last; i++ {
		dst[i] = src[i]
	}
}

// swapSlice exchanges dst and src over [first, last].
func swapSlice(dst, src *Reg, first, last int) {
	for i := first; i <= last; i++ {
		dst[i], src[i] = src[i], dst[i]
	}
}

// zeroSlice clears [first, last] in r.
func zeroSlice(r *Reg, first, last int) {
	for i := first; i <= last; i++ {
		r[i] = 0
	}
}

// shiftLeftSlice shifts the digits in [first, last] one position
// toward last, discarding the digit at last and zero-filling first.
func shiftLeftSlice(r *Reg, first, last int) {
	for i := last; i > first; i-- {
		r[i] = r[i-1]
	}

	r[first] = 0
}

// shiftRightSlice shifts the digits in [first, last] one position
// toward first, discarding the digit at first and zero-filling last.
func shiftRightSlice(r *Reg, first, last int) {
	for i := first; i < last; i++ {
		r[i] = r[i+1]
	}

	r[last] = 0
}
