/*
 * HP35 - Microinstruction executor
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

import "github.com/classic-calc/hp35/util/debug"

// execute applies one decoded microinstruction and reports whether it
// already set PC (a call, return, or taken branch), so Step knows
// whether to advance PC itself.
func (c *Cpu) execute(d decoded) (pcSet bool) {
	mi := d.mi

	switch d.kind {
	case kCall:
		c.Ret = c.PC
		c.PC = mi.CallTarget()
		return true

	case kArith:
		c.execArith(mi)
		return false

	case kBranch:
		if !c.PrevCarry {
			c.PC = mi.BranchTarget()
			return true
		}

		return false

	case kJumpKey:
		if !c.S[0] {
			debug.Debugf("cpu", debug.Decoder, "jump-on-key at pc %03o with no key pending, stale key %d", c.PC, c.KeyROM)
		}

		c.PC = c.KeyROM
		c.S[0] = false
		return true

	case kReturn:
		c.PC = c.Ret
		return true

	case kBankSel:
		c.Offset = ((mi.H << 1) & 6) | ((mi.L >> 7) & 1)
		return false

	case kStatusTest:
		c.Carry = c.S[mi.BitSel()]
		return false

	case kStatusSet:
		c.S[mi.BitSel()] = true
		return false

	case kStatusClear:
		c.S[mi.BitSel()] = false
		return false

	case kStatusClearAll:
		for i := range c.S {
			c.S[i] = false
		}

		return false

	case kPtrTest:
		c.Carry = c.P == mi.BitSel()
		return false

	case kPtrSet:
		c.P = mi.BitSel()
		return false

	case kPtrInc:
		c.P = (c.P + 1) & 0xF
		return false

	case kPtrDec:
		c.P = (c.P - 1) & 0xF
		return false

	case kLoadConst:
		c.C[c.P&0xF] = mi.ConstNibble()
		c.P = (c.P - 1) & 0xF
		return false

	case kSwapCM:
		c.C, c.M = c.M, c.C
		return false

	case kPush:
		c.F = c.E
		c.E = c.D
		c.D = c.C
		return false

	case kPop:
		c.A = c.D
		c.D = c.E
		c.E = c.F
		return false

	case kCFromM:
		c.C = c.M
		return false

	case kRotateDown:
		c.C, c.D, c.E, c.F = c.F, c.C, c.D, c.E
		return false

	case kClearAll:
		c.clearAll()
		return false

	case kDisplayDisable:
		c.DisplayEnable = false
		return false

	case kDisplayToggle:
		c.DisplayEnable = !c.DisplayEnable
		return false

	default: // kNone: unreachable over a well-formed ROM, spec.md §7
		debug.Debugf("cpu", debug.Decoder, "no microinstruction matches %02X%02X at pc %03o", mi.H, mi.L, c.PC)
		return false
	}
}
