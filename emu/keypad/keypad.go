/*
 * HP35 - Key code space and physical-key dispatch table
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

// Package keypad holds the HP-35 key code space (spec.md §6) and the
// 3x16 physical-key by function-layer dispatch table (spec.md §6
// "Key-press mapping"). It does not own the single-slot key latch —
// that lives on the CPU (spec.md §3) — this package is lookup tables
// and the KeyEvent the host shell produces.
package keypad

// Code is a canonical HP-35 key code, as delivered by the jump-on-key
// microinstruction and used on script tapes.
type Code byte

// Canonical HP-35 key codes (spec.md §6).
const (
	CLR   Code = 0
	EXP   Code = 2
	LN    Code = 3
	LOG   Code = 4
	POW   Code = 6
	RCL   Code = 8
	STO   Code = 10
	ROT   Code = 11
	SWAP  Code = 12
	INV   Code = 14
	Dig6  Code = 18
	Dig5  Code = 19
	Dig4  Code = 20
	ADD   Code = 22
	Dig3  Code = 26
	Dig2  Code = 27
	Dig1  Code = 28
	MULT  Code = 30
	PI    Code = 34
	DOT   Code = 35
	Dig0  Code = 36
	DIV   Code = 38
	TAN   Code = 40
	COS   Code = 42
	SIN   Code = 43
	ARC   Code = 44
	SQRT  Code = 46
	Dig9  Code = 50
	Dig8  Code = 51
	Dig7  Code = 52
	SUB   Code = 54
	CLX   Code = 56
	EEX   Code = 58
	CHS   Code = 59
	ENTER Code = 62

	// None is the sentinel meaning "no key pending".
	None Code = 0xFF
)

// ExtFunc is an extended-function id (spec.md §6), values 64..77. These
// are never delivered to the CPU directly; the shell translates them
// into a mode change (HYP, Bright) or a script sequencer arming.
type ExtFunc byte

const (
	HYP    ExtFunc = 64
	Bright ExtFunc = 65
	R2P    ExtFunc = 66
	P2R    ExtFunc = 67
	PV     ExtFunc = 68
	ND     ExtFunc = 69
	GAMMA  ExtFunc = 70
	QE     ExtFunc = 71
	SINH   ExtFunc = 72
	COSH   ExtFunc = 73
	TANH   ExtFunc = 74
	ASINH  ExtFunc = 75
	ACOSH  ExtFunc = 76
	ATANH  ExtFunc = 77
)

// KeyEvent is what the host key-matrix scanner (out of scope, spec.md
// §1) hands to the calculator. Row/Col identify the physical key;
// Layer is the function-layer the F key had most recently selected.
type KeyEvent struct {
	Row, Col int
	Layer    int
}

// Entry is one cell of the 3x16 dispatch table: either a canonical key
// code or an extended-function id, never both.
type Entry struct {
	Code    Code
	Ext     ExtFunc
	IsExt   bool
	IsBlank bool // unpopulated key position
}

// Layout is the physical-key x function-layer dispatch table: 3
// layers (fg in {0,1,2}), 16 keys per layer.
type Layout struct {
	table [3][16]Entry
}

// NewLayout builds the standard HP-35 dispatch table.
func NewLayout() *Layout {
	l := &Layout{}

	plain := func(c Code) Entry { return Entry{Code: c} }
	ext := func(e ExtFunc) Entry { return Entry{Ext: e, IsExt: true} }

	// Layer 0: un-shifted keys.
	l.table[0] = [16]Entry{
		plain(CLR), plain(EXP), plain(LN), plain(LOG),
		plain(POW), plain(RCL), plain(STO), plain(ROT),
		plain(SWAP), plain(INV), plain(SIN), plain(COS),
		plain(TAN), plain(SQRT), plain(CHS), plain(ENTER),
	}

	// Layer 1: f-shifted keys (extended functions).
	l.table[1] = [16]Entry{
		ext(HYP), plain(EXP), ext(ASINH), ext(GAMMA),
		ext(PV), plain(RCL), plain(STO), ext(QE),
		plain(SWAP), plain(INV), ext(SINH), ext(COSH),
		ext(TANH), ext(ND), plain(CHS), plain(ENTER),
	}

	// Layer 2: g-shifted keys (polar/rectangular conversion; a further
	// press of F from this layer signals screen-off, see NextLayer).
	l.table[2] = [16]Entry{
		ext(Bright), plain(EXP), ext(ACOSH), ext(ATANH),
		ext(R2P), plain(RCL), plain(STO), ext(P2R),
		plain(SWAP), plain(INV), plain(SIN), plain(COS),
		plain(TAN), plain(SQRT), plain(CHS), plain(ENTER),
	}

	return l
}

// Resolve maps a (col, layer) pair to the dispatch table entry. Col
// selects one of 16 physical key positions (a single flattened 0..15
// index per layer, matching the flattened key matrix the real keyboard
// scanner reports); there is no separate row argument. Out-of-range
// col or layer values report ok=false.
func (l *Layout) Resolve(col, layer int) (Entry, bool) {
	if layer < 0 || layer > 2 || col < 0 || col > 15 {
		return Entry{}, false
	}

	e := l.table[layer][col]
	if e.IsBlank {
		return Entry{}, false
	}

	return e, true
}

// NextLayer implements the F key's three-state cycle: 0 -> 1 -> 2 ->
// "screen off" (signalled by returning next=0, screenOff=true).
func NextLayer(layer int) (next int, screenOff bool) {
	switch layer {
	case 0:
		return 1, false
	case 1:
		return 2, false
	default:
		return 0, true
	}
}
