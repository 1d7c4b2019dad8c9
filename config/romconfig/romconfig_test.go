/*
 * HP35 - ROM config keyword tests
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

package romconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/classic-calc/hp35/emu/rom"
)

func TestLoadSetsImage(t *testing.T) {
	Image = nil

	path := filepath.Join(t.TempDir(), "hp35.rom")
	if err := os.WriteFile(path, make([]byte, rom.BankSize), 0o600); err != nil {
		t.Fatalf("write fixture ROM: %v", err)
	}

	if err := load(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if Image == nil {
		t.Fatal("expected Image to be set after load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	Image = nil

	if err := load(filepath.Join(t.TempDir(), "missing.rom")); err == nil {
		t.Error("expected an error for a missing ROM file")
	}
}
