/*
 * HP35 - Arithmetic/register opcode table
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

// execArith runs one arithmetic/register-family microinstruction
// (spec.md §4.3): compute the digit slice from the instruction's slice
// code and P, then dispatch on the 5-bit opcode. Every branch either
// writes one working register over the slice and sets CARRY from the
// BCD carry/borrow out, or — for the five test opcodes — leaves its
// subject register untouched and only sets CARRY.
func (c *Cpu) execArith(mi MicroInstruction) {
	first, last := sliceSpan(mi.SliceCode(), c.P)

	var zero Reg

	switch mi.OpCode() {
	case 0x00: // C nonzero test
		c.Carry = testNonzeroSlice(&c.C, first, last)
	case 0x02: // A-C -> T
		c.Carry = subSliceInto(&c.T, &c.A, &c.C, first, last, 0) != 0
	case 0x03: // C decrement test
		c.Carry = testDecrementZeroSlice(&c.C, first, last)
	case 0x04: // B -> C
		copySlice(&c.C, &c.B, first, last)
		c.Carry = false
	case 0x05: // 0-C -> C
		c.Carry = subSliceInto(&c.C, &zero, &c.C, first, last, 0) != 0
	case 0x06: // 0 -> C
		zeroSlice(&c.C, first, last)
		c.Carry = false
	case 0x07: // unused opcode slot; no real ROM selects it
	case 0x08: // shift A left
		shiftLeftSlice(&c.A, first, last)
		c.Carry = false
	case 0x09: // A -> B
		copySlice(&c.B, &c.A, first, last)
		c.Carry = false
	case 0x0A: // A-C -> C
		c.Carry = subSliceInto(&c.C, &c.A, &c.C, first, last, 0) != 0
	case 0x0B: // unused opcode slot; no real ROM selects it
	case 0x0C: // C -> A
		copySlice(&c.A, &c.C, first, last)
		c.Carry = false
	case 0x0D: // A nonzero test
		c.Carry = testNonzeroSlice(&c.A, first, last)
	case 0x0E: // A+C -> C
		c.Carry = addSliceInto(&c.C, &c.A, &c.C, first, last, 0) != 0
	case 0x0F: // C+1 -> C
		c.Carry = addSliceInto(&c.C, &c.C, &zero, first, last, 1) != 0
	case 0x11: // B <-> C
		swapSlice(&c.B, &c.C, first, last)
		c.Carry = false
	case 0x12: // shift C right
		shiftRightSlice(&c.C, first, last)
		c.Carry = false
	case 0x13: // A decrement test
		c.Carry = testDecrementZeroSlice(&c.A, first, last)
	case 0x14: // shift B right
		shiftRightSlice(&c.B, first, last)
		c.Carry = false
	case 0x15: // C+C -> C
		c.Carry = addSliceInto(&c.C, &c.C, &c.C, first, last, 0) != 0
	case 0x16: // shift A right
		shiftRightSlice(&c.A, first, last)
		c.Carry = false
	case 0x17: // 0 -> A
		zeroSlice(&c.A, first, last)
		c.Carry = false
	case 0x18: // A-B -> A
		c.Carry = subSlice(&c.A, &c.B, first, last, 0) != 0
	case 0x19: // A <-> B
		swapSlice(&c.A, &c.B, first, last)
		c.Carry = false
	case 0x1A: // A-C -> A
		c.Carry = subSlice(&c.A, &c.C, first, last, 0) != 0
	case 0x1B: // A-1 -> A
		c.Carry = subSliceInto(&c.A, &c.A, &zero, first, last, 1) != 0
	case 0x1C: // A+B -> A
		c.Carry = addSlice(&c.A, &c.B, first, last, 0) != 0
	case 0x1D: // A <-> C
		swapSlice(&c.A, &c.C, first, last)
		c.Carry = false
	case 0x1E: // A+C -> A
		c.Carry = addSlice(&c.A, &c.C, first, last, 0) != 0
	case 0x1F: // A+1 -> A
		c.Carry = addSliceInto(&c.A, &c.A, &zero, first, last, 1) != 0
	case 0x10: // A-B -> T, test only; A is not updated
		c.Carry = subSliceInto(&c.T, &c.A, &c.B, first, last, 0) != 0
	}
}
