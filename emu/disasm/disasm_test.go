/*
 * HP35 - ROM disassembler tests
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

package disasm

import "testing"

func TestDisassembleJumpKey(t *testing.T) {
	if got := Disassemble(0x00, 0xD0); got != "JMPKEY" {
		t.Errorf("expected JMPKEY, got %q", got)
	}
}

func TestDisassembleReturn(t *testing.T) {
	if got := Disassemble(0x00, 0x30); got != "RET" {
		t.Errorf("expected RET, got %q", got)
	}
}

func TestDisassembleCall(t *testing.T) {
	// Family bits 01: L&0x03==0x01.
	got := Disassemble(0x00, 0x05)
	if got[:4] != "CALL" {
		t.Errorf("expected a CALL mnemonic, got %q", got)
	}
}

func TestDisassembleBranch(t *testing.T) {
	got := Disassemble(0x00, 0x03)
	if got[:2] != "BR" {
		t.Errorf("expected a branch mnemonic, got %q", got)
	}
}

func TestDisassembleArithKnownOpcode(t *testing.T) {
	// op=0x09 (A>B): ((l>>5)&7)|((h<<3)&0x18) == 9 -> h bits(h&3)=1,
	// l bits (l>>5)&7=1. l&3 must be 0b10 for arithmetic family.
	h := byte(1)
	l := byte((1 << 5) | 0b10)

	got := Disassemble(h, l)
	if got[:4] != "A>B " && got[:3] != "A>B" {
		t.Errorf("expected A>B mnemonic, got %q", got)
	}
}

func TestDisassembleRangeLength(t *testing.T) {
	data := []byte{0x00, 0xD0, 0x00, 0x30}
	lines := DisassembleRange(data)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
}
