/*
 * HP35 - Extended-function script sequencer tests
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

package script

import (
	"testing"

	"github.com/classic-calc/hp35/emu/keypad"
)

func fixtureTape() ([]byte, map[keypad.ExtFunc]int) {
	tape := []byte{1, 2, End}
	entry := map[keypad.ExtFunc]int{keypad.SINH: 0}

	return tape, entry
}

func TestArmUnknownFunction(t *testing.T) {
	tape, entry := fixtureTape()
	s := NewSequencerFromTape(tape, entry)

	if s.Arm(keypad.COSH) {
		t.Errorf("Arm succeeded for an unregistered function")
	}

	if s.Armed() {
		t.Errorf("sequencer reports armed after a failed Arm")
	}
}

func TestTickPacingAndLock(t *testing.T) {
	tape, entry := fixtureTape()
	s := NewSequencerFromTape(tape, entry)

	if !s.Arm(keypad.SINH) {
		t.Fatalf("Arm failed for a registered function")
	}

	// Period-1 ticks produce nothing.
	for i := 0; i < Period-1; i++ {
		if _, ok := s.Tick(); ok {
			t.Fatalf("tick %d produced a byte before Period elapsed", i)
		}
	}

	code, ok := s.Tick()
	if !ok || code != 1 {
		t.Fatalf("expected first tape byte 1, got %d ok=%v", code, ok)
	}

	// Locked (cooling) until a frame boundary arrives: further ticks,
	// even Period of them, must not advance the tape.
	for i := 0; i < Period+2; i++ {
		if _, ok := s.Tick(); ok {
			t.Fatalf("tick produced a byte while cooling")
		}
	}

	s.FrameBoundary()

	for i := 0; i < Period-1; i++ {
		if _, ok := s.Tick(); ok {
			t.Fatalf("tick produced a byte before Period elapsed post-boundary")
		}
	}

	code, ok = s.Tick()
	if !ok || code != 2 {
		t.Fatalf("expected second tape byte 2, got %d ok=%v", code, ok)
	}
}

func TestTickDisarmsOnEnd(t *testing.T) {
	tape := []byte{End}
	entry := map[keypad.ExtFunc]int{keypad.SINH: 0}
	s := NewSequencerFromTape(tape, entry)

	s.Arm(keypad.SINH)

	for i := 0; i < Period; i++ {
		s.Tick()
	}

	if s.Armed() {
		t.Errorf("sequencer still armed after reading End")
	}
}

func TestCancel(t *testing.T) {
	tape, entry := fixtureTape()
	s := NewSequencerFromTape(tape, entry)

	s.Arm(keypad.SINH)
	s.Cancel()

	if s.Armed() {
		t.Errorf("sequencer still armed after Cancel")
	}
}

func TestDefaultTapeCoversAllExtendedFunctions(t *testing.T) {
	fns := []keypad.ExtFunc{
		keypad.R2P, keypad.P2R, keypad.PV, keypad.ND, keypad.GAMMA, keypad.QE,
		keypad.SINH, keypad.COSH, keypad.TANH, keypad.ASINH, keypad.ACOSH, keypad.ATANH,
	}

	for _, fn := range fns {
		if _, ok := defaultEntry[fn]; !ok {
			t.Errorf("default tape has no entry point for %v", fn)
		}
	}

	s := NewSequencer()
	for _, fn := range fns {
		if !s.Arm(fn) {
			t.Errorf("NewSequencer could not arm %v", fn)
		}
	}
}
