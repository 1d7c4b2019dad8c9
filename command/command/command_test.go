/*
 * HP35 - Console helper tests
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

package command

import (
	"strings"
	"testing"

	"github.com/classic-calc/hp35/emu/cpu"
	"github.com/classic-calc/hp35/emu/keypad"
)

func TestKeyByNameDigit(t *testing.T) {
	code, ok := KeyByName("7")
	if !ok || code != byte(keypad.Dig7) {
		t.Fatalf("expected Dig7, got %d ok=%v", code, ok)
	}
}

func TestKeyByNameCaseInsensitive(t *testing.T) {
	code, ok := KeyByName("ENTER")
	if !ok || code != byte(keypad.ENTER) {
		t.Fatalf("expected ENTER, got %d ok=%v", code, ok)
	}
}

func TestKeyByNameUnknown(t *testing.T) {
	if _, ok := KeyByName("bogus"); ok {
		t.Error("expected bogus key name to be rejected")
	}
}

func TestFormatRegistersContainsAllRows(t *testing.T) {
	var a, b, c, d, e, f, m, tr cpu.Reg
	a[0] = 5

	out := FormatRegisters(a, b, c, d, e, f, m, tr)
	for _, row := range []string{"A ", "B ", "C ", "D ", "E ", "F ", "M ", "T "} {
		if !strings.Contains(out, row) {
			t.Errorf("expected output to contain row %q:\n%s", row, out)
		}
	}
}
