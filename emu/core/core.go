/*
 * HP35 - Core emulator loop
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

// Package core drives the HP-35 one microcycle at a time, wiring the
// CPU, the key-matrix dispatch table, and the extended-function
// script sequencer into the single cooperative loop spec.md §5
// describes.
package core

import (
	"log/slog"
	"sync"
	"time"

	"github.com/classic-calc/hp35/emu/cpu"
	"github.com/classic-calc/hp35/emu/display"
	"github.com/classic-calc/hp35/emu/keypad"
	"github.com/classic-calc/hp35/emu/rom"
	"github.com/classic-calc/hp35/emu/script"
)

// MsgKind identifies what a Packet asks the core loop to do. The
// host shell is the only producer; the loop is the only consumer —
// this mirrors the teacher's master.Packet channel, shrunk from a
// telnet/device dispatch down to the HP-35's one real external event,
// a key press.
type MsgKind int

const (
	// KeyPress delivers one physical key at (Col) under the current
	// function layer.
	KeyPress MsgKind = iota
	// CycleLayer is the F key: advance the function layer.
	CycleLayer
	// RunCmd resumes free-running execution.
	RunCmd
	// StopCmd pauses the loop before its next CPU microcycle.
	StopCmd
	// StepCmd executes exactly one CPU microcycle while paused, then
	// re-pauses. A no-op while already running.
	StepCmd
	// ResetCmd powers the machine back on: a fresh Cpu bound to the same
	// ROM image, function layer 0, sequencer idle.
	ResetCmd
	// RawKey injects a canonical key code directly, bypassing the
	// physical-key/function-layer dispatch table. The console's key
	// command uses this: the 3x16 table only covers the function-key
	// row, so it has no entry for digits or the four arithmetic keys.
	RawKey
)

// Packet is one message from the host shell to the core loop.
type Packet struct {
	Msg  MsgKind
	Col  int
	Code byte // canonical key code, for RawKey
}

// Core owns the whole running machine: the CPU, the physical-key
// dispatch table, the current function layer, and the script
// sequencer. There is no package-level state; every running machine
// is its own Core.
type Core struct {
	wg      sync.WaitGroup
	done    chan struct{}
	in      chan Packet
	running bool // free-running vs. paused by StopCmd
	step    bool // one-shot: execute exactly one microcycle, then re-pause

	image  *rom.Image
	cpu    *cpu.Cpu
	layout *keypad.Layout
	seq    *script.Sequencer
	layer  int

	// onFrame, if set, is called with the projected display on every
	// display-enable falling edge (spec.md §4.7). It runs on the core
	// loop's own goroutine and must not block.
	onFrame func(display.Frame)
}

// NewCore builds a powered-on HP-35 bound to image, fed key events
// from in, and reporting frames to onFrame.
func NewCore(image *rom.Image, in chan Packet, onFrame func(display.Frame)) *Core {
	return &Core{
		done:    make(chan struct{}),
		in:      in,
		image:   image,
		cpu:     cpu.NewCPU(image),
		layout:  keypad.NewLayout(),
		seq:     script.NewSequencer(),
		onFrame: onFrame,
	}
}

// Start runs the cooperative loop until Stop is called. It performs,
// per iteration, exactly the ordering spec.md §5 names: (a) drain one
// pending host packet, (b) an extended-function packet arms the
// sequencer as part of that same drain, (c) one CPU microcycle, (d)
// one sequencer tick, (e) loop back to (a).
func (c *Core) Start() {
	c.wg.Add(1)
	defer c.wg.Done()

	c.running = true

	for {
		select {
		case <-c.done:
			slog.Info("shutdown HP-35 core")
			return
		case pkt := <-c.in:
			c.processPacket(pkt)
		default:
		}

		if !c.running && !c.step {
			continue
		}

		c.step = false

		displayFell := c.cpu.Step()

		if code, ok := c.seq.Tick(); ok {
			c.cpu.PressKey(code)
		}

		if displayFell {
			c.seq.FrameBoundary()

			if c.onFrame != nil {
				c.onFrame(display.Project(c.cpu.A, c.cpu.B))
			}
		}
	}
}

// Stop signals the loop to exit and waits up to a second for it to do
// so, mirroring the teacher's shutdown discipline.
func (c *Core) Stop() {
	close(c.done)

	done := make(chan struct{})

	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		slog.Warn("timed out waiting for HP-35 core to finish")
	}
}

// processPacket resolves one host event against the current function
// layer (spec.md §6 "Key-press mapping") and either injects a
// canonical key code or arms the script sequencer for an extended
// function. Pressing a plain key while the sequencer is armed does not
// interrupt the tape already in flight: a plain keypress never touches
// the sequencer, so the current tape runs to its sentinel (spec.md §5
// "Cancellation", the reference choice). Another extended-function key
// re-arms it, discarding the tape in flight, and ResetCmd cancels it.
func (c *Core) processPacket(pkt Packet) {
	switch pkt.Msg {
	case RunCmd:
		c.running = true

	case StopCmd:
		c.running = false

	case StepCmd:
		c.step = true

	case ResetCmd:
		c.cpu = cpu.NewCPU(c.image)
		c.seq.Cancel()
		c.layer = 0

	case RawKey:
		c.cpu.PressKey(pkt.Code)

	case CycleLayer:
		next, screenOff := keypad.NextLayer(c.layer)
		c.layer = next

		if screenOff {
			c.cpu.PressKey(byte(keypad.CLR))
		}

	case KeyPress:
		entry, ok := c.layout.Resolve(pkt.Col, c.layer)
		if !ok {
			return
		}

		if !entry.IsExt {
			c.cpu.PressKey(byte(entry.Code))
			return
		}

		switch entry.Ext {
		case keypad.HYP, keypad.Bright:
			// Mode changes with no CPU-visible effect in this model;
			// the host shell owns HYP labeling and brightness.
		default:
			c.seq.Arm(entry.Ext)
		}
	}
}

// ErrorTrap reports whether the CPU's overflow/underflow banner is
// latched (spec.md §4.6), for a host shell to render.
func (c *Core) ErrorTrap() bool {
	return c.cpu.ErrorTrap
}

// SendStop, SendRun, and SendStep enqueue the corresponding control
// packet for the loop goroutine to pick up on its next iteration.
func (c *Core) SendStop() { c.in <- Packet{Msg: StopCmd} }
func (c *Core) SendRun()  { c.in <- Packet{Msg: RunCmd} }
func (c *Core) SendStep() { c.in <- Packet{Msg: StepCmd} }

// SendReset enqueues a power-on reset.
func (c *Core) SendReset() { c.in <- Packet{Msg: ResetCmd} }

// SendRawKey enqueues a canonical key code, injected directly.
func (c *Core) SendRawKey(code byte) { c.in <- Packet{Msg: RawKey, Code: code} }

// SendKey enqueues a physical keypress at the given column under the
// layer active when the loop processes it.
func (c *Core) SendKey(col int) { c.in <- Packet{Msg: KeyPress, Col: col} }

// SendCycleLayer enqueues an F-key press.
func (c *Core) SendCycleLayer() { c.in <- Packet{Msg: CycleLayer} }

// Registers returns a snapshot of the six working registers, M, and T
// for a debug console to render. It is only safe to call while the
// loop is paused (StopCmd sent and acknowledged) — like the rest of
// Cpu, Core keeps no lock, trading a harmless race on a live A/B/C/D
// read for a console command against the single-threaded-by-design
// model spec.md §5 describes.
func (c *Core) Registers() (a, b, cReg, d, e, f, m, tReg cpu.Reg) {
	return c.cpu.A, c.cpu.B, c.cpu.C, c.cpu.D, c.cpu.E, c.cpu.F, c.cpu.M, c.cpu.T
}

// PC, Pointer, and Offset return the CPU's scalar control state.
func (c *Core) PC() byte { return c.cpu.PC }
func (c *Core) Pointer() byte { return c.cpu.P }
func (c *Core) Offset() byte { return c.cpu.Offset }

// Image returns the ROM image the core was built from, for a console
// disassemble command to render alongside PC/Offset.
func (c *Core) Image() *rom.Image { return c.image }
