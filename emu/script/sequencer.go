/*
 * HP35 - Extended-function script sequencer
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

// Package script holds the extended-function tape and the sequencer
// that replays it through the CPU's key latch, one byte every Period
// loop iterations, gated by the CPU's display-enable falling edge.
package script

import "github.com/classic-calc/hp35/emu/keypad"

// Period is the reference pacing: one tape byte injected per this
// many unlocked loop iterations.
const Period = 6

// End is the tape sentinel marking the close of one function's
// sub-program.
const End byte = 0xFF

// state names the sequencer's three reachable states (spec.md §4.5
// design note): Idle, armed-and-counting, and locked-waiting-for-the-
// CPU's-display-boundary.
type state int

const (
	idle state = iota
	armed
	cooling
)

// Sequencer replays one extended-function tape at a time. The zero
// value is not usable; build one with NewSequencer.
type Sequencer struct {
	tape  []byte
	entry map[keypad.ExtFunc]int

	st    state
	ptr   int
	ticks int
}

// NewSequencer builds a sequencer over the standard 12-function tape.
func NewSequencer() *Sequencer {
	return NewSequencerFromTape(defaultTape, defaultEntry)
}

// NewSequencerFromTape builds a sequencer over a caller-supplied tape
// and entry-point table, used by tests to exercise short fixtures
// without the full default tape.
func NewSequencerFromTape(tape []byte, entry map[keypad.ExtFunc]int) *Sequencer {
	return &Sequencer{tape: tape, entry: entry, st: idle}
}

// Arm starts replaying the tape for the given extended function,
// discarding anything already in flight. It reports whether fn has a
// registered entry point.
func (s *Sequencer) Arm(fn keypad.ExtFunc) bool {
	off, ok := s.entry[fn]
	if !ok {
		return false
	}

	s.ptr = off
	s.ticks = 0
	s.st = armed

	return true
}

// Armed reports whether a tape is currently in flight.
func (s *Sequencer) Armed() bool {
	return s.st != idle
}

// Tick advances the sequencer by one loop iteration (spec.md §5 step
// (d)). It returns the key code to inject into the CPU's latch and
// whether one was produced this iteration. Ticks only accumulate
// while unlocked (state armed); a cooling sequencer produces nothing
// until FrameBoundary clears the lock.
func (s *Sequencer) Tick() (code byte, ok bool) {
	if s.st != armed {
		return 0, false
	}

	s.ticks++
	if s.ticks < Period {
		return 0, false
	}

	s.ticks = 0

	b := s.tape[s.ptr]
	if b == End {
		s.st = idle
		return 0, false
	}

	s.ptr++
	s.st = cooling

	return b, true
}

// FrameBoundary is called when the CPU reports its display-enable
// latch fell this cycle. It clears the sequencer's lock, allowing the
// next tape byte to be counted down to.
func (s *Sequencer) FrameBoundary() {
	if s.st == cooling {
		s.st = armed
		s.ticks = 0
	}
}

// Cancel disarms the sequencer immediately regardless of state. The
// reference implementation instead lets the tape run to End on a
// keypress (spec.md §5 "Cancellation"); Cancel exists for a host shell
// that chooses the other documented option and must say so.
func (s *Sequencer) Cancel() {
	s.st = idle
	s.ptr = 0
	s.ticks = 0
}
