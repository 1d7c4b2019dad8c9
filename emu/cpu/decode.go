/*
 * HP35 - Microinstruction decoder
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

// MicroInstruction wraps one (H, L) microcode byte pair and exposes
// the bit-field accessors spec.md §9 asks for, concentrating the
// fragile bit arithmetic in one place instead of scattering it through
// the executor.
type MicroInstruction struct {
	H, L byte
}

// Family returns L&0x03, the major instruction family selector
// (spec.md §4.2).
func (mi MicroInstruction) Family() byte {
	return mi.L & 0x03
}

// SliceCode returns the 3-bit field selecting one of the seven
// canonical digit spans (spec.md §4.3).
func (mi MicroInstruction) SliceCode() byte {
	return (mi.L >> 2) & 0x07
}

// OpCode returns the 5-bit arithmetic opcode index (spec.md §4.3).
func (mi MicroInstruction) OpCode() byte {
	return ((mi.L >> 5) & 0x07) | ((mi.H << 3) & 0x18)
}

// BitSel returns the 4-bit status/pointer index (spec.md §4.2).
func (mi MicroInstruction) BitSel() byte {
	return ((mi.H & 0x03) << 2) | ((mi.L & 0xC0) >> 6)
}

// BranchTarget returns the PC value a conditional branch jumps to
// (spec.md §4.2).
func (mi MicroInstruction) BranchTarget() byte {
	return ((mi.L & 0xFC) >> 2) | ((mi.H & 0x03) << 6)
}

// CallTarget returns the PC value a subroutine call jumps to
// (spec.md §4.2).
func (mi MicroInstruction) CallTarget() byte {
	return ((mi.L >> 2) & 0x3F) | ((mi.H << 6) & 0xC0)
}

// ConstNibble returns the 4-bit immediate loaded into C[P] by the
// load-constant microinstruction (spec.md §4.2).
func (mi MicroInstruction) ConstNibble() byte {
	return (mi.L >> 6) | (mi.H << 2)
}

// l3f is the low 6 bits of L, used to dispatch the misc-family
// sub-table (spec.md §4.2).
func (mi MicroInstruction) l3f() byte {
	return mi.L & 0x3F
}

// l7f is the low 7 bits of L, used by the return/bank-select tests.
func (mi MicroInstruction) l7f() byte {
	return mi.L & 0x7F
}

// hLow2 is the low 2 bits of H, used by the special-move table.
func (mi MicroInstruction) hLow2() byte {
	return mi.H & 0x03
}

// lMaskEF masks out bit 4 of L, used by the special-move table.
func (mi MicroInstruction) lMaskEF() byte {
	return mi.L & 0xEF
}

// kind tags one decoded microinstruction variant. Decoding happens
// once per cycle into this tagged union (spec.md §9 "Decoder as
// dispatch"), instead of re-testing bit patterns during execution —
// eliminating the hazard where two scattered tests could both match
// and the last write silently wins.
type kind int

const (
	kCall kind = iota
	kArith
	kBranch
	kJumpKey
	kReturn
	kBankSel
	kStatusTest
	kStatusSet
	kStatusClear
	kStatusClearAll
	kPtrTest
	kPtrSet
	kPtrInc
	kPtrDec
	kLoadConst
	kSwapCM
	kPush
	kPop
	kCFromM
	kRotateDown
	kClearAll
	kDisplayDisable
	kDisplayToggle
	kNone // unreachable over a well-formed ROM; see spec.md §7
)

// decoded is the result of decoding one MicroInstruction: a kind tag
// plus the raw instruction, from which execute derives whatever
// operands that kind needs.
type decoded struct {
	kind kind
	mi   MicroInstruction
}

// decode classifies a fetched microinstruction into exactly one
// variant. The family field (L&3) partitions the space into four
// disjoint groups; within the miscellaneous family, the sub-dispatch
// tables below are themselves pairwise disjoint over L and H (jump-
// on-key, return, and bank select have l3f 0x10 or 0x30, and the
// special moves have l3f 0x28 or 0x38, none of which the l3f table
// tests), so exactly one case below ever matches a given (H, L) pair.
func decode(mi MicroInstruction) decoded {
	switch mi.Family() {
	case 0b01:
		return decoded{kind: kCall, mi: mi}
	case 0b10:
		return decoded{kind: kArith, mi: mi}
	case 0b11:
		return decoded{kind: kBranch, mi: mi}
	default:
		return decodeMisc(mi)
	}
}

func decodeMisc(mi MicroInstruction) decoded {
	if mi.L == 0xD0 {
		return decoded{kind: kJumpKey, mi: mi}
	}

	if mi.l7f() == 0x30 {
		return decoded{kind: kReturn, mi: mi}
	}

	if mi.l7f() == 0x10 {
		return decoded{kind: kBankSel, mi: mi}
	}

	switch mi.l3f() {
	case 0x14:
		return decoded{kind: kStatusTest, mi: mi}
	case 0x04:
		return decoded{kind: kStatusSet, mi: mi}
	case 0x24:
		return decoded{kind: kStatusClear, mi: mi}
	case 0x34:
		return decoded{kind: kStatusClearAll, mi: mi}
	case 0x2C:
		return decoded{kind: kPtrTest, mi: mi}
	case 0x0C:
		return decoded{kind: kPtrSet, mi: mi}
	case 0x3C:
		return decoded{kind: kPtrInc, mi: mi}
	case 0x1C:
		return decoded{kind: kPtrDec, mi: mi}
	case 0x18:
		return decoded{kind: kLoadConst, mi: mi}
	}

	switch mi.lMaskEF() {
	case 0xA8:
		switch mi.hLow2() {
		case 0:
			return decoded{kind: kSwapCM, mi: mi}
		case 1:
			return decoded{kind: kPop, mi: mi}
		case 2:
			return decoded{kind: kCFromM, mi: mi}
		case 3:
			return decoded{kind: kClearAll, mi: mi}
		}
	case 0x28:
		switch mi.hLow2() {
		case 0:
			return decoded{kind: kDisplayDisable, mi: mi}
		case 1:
			return decoded{kind: kPush, mi: mi}
		case 2:
			return decoded{kind: kDisplayToggle, mi: mi}
		case 3:
			return decoded{kind: kRotateDown, mi: mi}
		}
	}

	return decoded{kind: kNone, mi: mi}
}

// regID names a working register for the slice-selector and
// register-move microops.
type regID int

const (
	regA regID = iota
	regB
	regC
	regD
	regE
	regF
	regM
	regT
)

// sliceSpan returns the inclusive [first, last] digit range named by
// the arithmetic instruction's slice code (spec.md §4.3).
func sliceSpan(code byte, p byte) (first, last int) {
	switch code {
	case 0:
		return int(p), int(p)
	case 1:
		return 3, 12
	case 2:
		return 0, 2
	case 3:
		return 0, 13
	case 4:
		return 0, int(p)
	case 5:
		return 3, 13
	case 6:
		return 2, 2
	default: // 7
		return 13, 13
	}
}
