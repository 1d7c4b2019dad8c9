/*
 * HP35 - CPU: microinstruction fetch and execute
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

/*
   The HP-35, introduced by Hewlett-Packard in 1972, was the first
   handheld scientific calculator. Its five-chip set (Control & Timing,
   Arithmetic & Register, and three ROM chips) executes a 768-word,
   10-bit-wide microcode program one instruction per cycle against six
   14-nibble working registers plus a scratchpad, performing all
   arithmetic in binary-coded decimal over a digit slice selected by
   the instruction itself.

   This package owns no package-level state: a Cpu value is the whole
   machine. Construct one with NewCPU and drive it one cycle at a time
   with Step.
*/

package cpu

import "github.com/classic-calc/hp35/emu/rom"

// regLen is the number of nibbles in a working register: 14 digits,
// index 13 the sign, 0..2 the exponent, 3..12 the mantissa.
const regLen = 14

// Reg is one 14-nibble working register.
type Reg [regLen]byte

// Cpu holds the complete state of one HP-35: the six working
// registers, the scratchpad M, the scratch register T, the 12-bit
// status array, the pointer and program-counter scalars, the carry
// flags, the key latch, and the display-enable latch. There is no
// process-wide storage; every operation takes a *Cpu.
type Cpu struct {
	A, B, C, D, E, F, M Reg
	T                   Reg

	S [12]bool

	P   byte // 4-bit pointer, wraps mod 16
	PC  byte // 8-bit program counter, wraps mod 256
	Ret byte // subroutine return slot, one level deep

	Offset byte // 3-bit ROM bank selector

	Carry     bool
	PrevCarry bool

	// Key latch: single-slot mailbox. See PressKey.
	pendingKey byte
	keyValid   bool
	KeyROM     byte // last key code latched into the CPU

	DisplayEnable bool // display-enable latch
	displayWasOn  bool // value sampled at the start of the cycle

	// ErrorTrap is set once PC reaches 191 while Offset==0 (spec.md
	// §4.6) and stays set until the next PressKey, mirroring the
	// real ROM's flashing-display error banner.
	ErrorTrap bool

	image *rom.Image
}

// NewCPU returns a powered-on HP-35: every register and flag zeroed
// (spec.md §3 "Lifecycle"), bound to the given immutable ROM image.
func NewCPU(image *rom.Image) *Cpu {
	return &Cpu{image: image}
}

// PressKey fills the single-slot key latch, overwriting any code not
// yet consumed. It also clears a latched error trap, matching the
// real machine's behavior of clearing the flashing-display state on
// the next keypress.
func (c *Cpu) PressKey(code byte) {
	c.pendingKey = code
	c.keyValid = true
	c.ErrorTrap = false
}

// Step executes exactly one microcycle: sample the key latch, snapshot
// PrevCarry, fetch, decode, execute, and advance PC unless the
// instruction already set it. It reports whether the display-enable
// latch fell this cycle — the event the script sequencer and the host
// shell both synchronize on (spec.md §4.5, §4.7).
func (c *Cpu) Step() (displayFell bool) {
	if c.keyValid {
		c.KeyROM = c.pendingKey
		c.S[0] = true
		c.keyValid = false
	}

	c.PrevCarry = c.Carry
	c.displayWasOn = c.DisplayEnable

	h, l := c.image.Fetch(c.Offset, c.PC)
	mi := MicroInstruction{H: h, L: l}
	d := decode(mi)

	pcSet := c.execute(d)
	if !pcSet {
		c.PC = (c.PC + 1) & 0xFF
	}

	if c.PC == 191 && c.Offset == 0 {
		c.ErrorTrap = true
	}

	displayFell = c.displayWasOn && !c.DisplayEnable

	return displayFell
}

// clearAll zeros A..F and M in a single cycle: the "Clear All"
// microinstruction (spec.md §3 "Lifecycle", opcode h3==3, low==0xA8).
func (c *Cpu) clearAll() {
	c.A = Reg{}
	c.B = Reg{}
	c.C = Reg{}
	c.D = Reg{}
	c.E = Reg{}
	c.F = Reg{}
	c.M = Reg{}
}

// reg returns a pointer to the named working register, used by the
// decoded instruction's register-class fields.
func (c *Cpu) reg(id regID) *Reg {
	switch id {
	case regA:
		return &c.A
	case regB:
		return &c.B
	case regC:
		return &c.C
	case regD:
		return &c.D
	case regE:
		return &c.E
	case regF:
		return &c.F
	case regM:
		return &c.M
	case regT:
		return &c.T
	default:
		return &c.T
	}
}
