/*
 * HP35 - Command parser
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

// Package parser tokenizes and dispatches operator console commands
// against a running Core. There is no device/attach concept for an
// HP-35: the command set is just step/run/stop/key/reset/dump/disasm
// and quit.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	command "github.com/classic-calc/hp35/command/command"
	"github.com/classic-calc/hp35/emu/core"
	"github.com/classic-calc/hp35/emu/disasm"
)

type cmd struct {
	name     string // Command name.
	min      int    // Minimum match size.
	process  func(*cmdLine, *core.Core) (bool, error)
	complete func(*cmdLine) []string
}

type cmdLine struct {
	line string // Current command.
	pos  int    // Position in line.
}

var cmdList = []cmd{
	{name: "step", min: 2, process: step},
	{name: "run", min: 1, process: run},
	{name: "stop", min: 3, process: stop},
	{name: "reset", min: 3, process: reset},
	{name: "key", min: 1, process: key},
	{name: "dump", min: 2, process: dump},
	{name: "disasm", min: 3, process: disassemble},
	{name: "quit", min: 1, process: quit},
}

// ProcessCommand executes one line of input against core. The bool
// return is true when the console should exit.
func ProcessCommand(commandLine string, c *core.Core) (bool, error) {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	match := matchList(name)
	if len(match) == 0 {
		return false, errors.New("command not found: " + name)
	}

	if len(match) > 1 {
		return false, errors.New("ambiguous command: " + name)
	}

	return match[0].process(&line, c)
}

// CompleteCmd returns the tab-completion candidates for the partial
// line given, for liner's SetCompleter.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	if !line.isEOL() && line.line[line.pos] == ' ' {
		line.skipSpace()

		match := matchList(name)
		if len(match) != 1 || match[0].complete == nil {
			return nil
		}

		return match[0].complete(&line)
	}

	match := matchList(name)
	matches := make([]string, len(match))
	for i, m := range match {
		matches[i] = m.name
	}

	return matches
}

// matchCommand reports whether command is a prefix of match.name at
// least match.min characters long.
func matchCommand(match cmd, command string) bool {
	if len(command) > len(match.name) {
		return false
	}

	for i := range command {
		if match.name[i] != command[i] {
			return false
		}
	}

	return len(command) >= match.min
}

func matchList(command string) []cmd {
	if command == "" {
		return nil
	}

	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, command) {
			match = append(match, m)
		}
	}

	return match
}

// skipSpace advances past leading whitespace.
func (line *cmdLine) skipSpace() {
	for line.pos < len(line.line) && unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
}

// isEOL reports whether the line is exhausted or at a trailing comment.
func (line *cmdLine) isEOL() bool {
	return line.pos >= len(line.line) || line.line[line.pos] == '#'
}

// getWord returns the next alphanumeric token, or "" if none remains.
func (line *cmdLine) getWord() string {
	line.skipSpace()

	start := line.pos
	for !line.isEOL() && !unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}

	return line.line[start:line.pos]
}

// getInt parses the next token as a decimal or 0x-prefixed hex
// integer.
func (line *cmdLine) getInt() (int, error) {
	word := line.getWord()
	if word == "" {
		return 0, errors.New("expected a number")
	}

	if strings.HasPrefix(word, "0x") || strings.HasPrefix(word, "0X") {
		v, err := strconv.ParseInt(word[2:], 16, 32)
		return int(v), err
	}

	v, err := strconv.Atoi(word)
	return v, err
}

func step(line *cmdLine, c *core.Core) (bool, error) {
	n := 1

	if !line.isEOL() {
		var err error
		if n, err = line.getInt(); err != nil {
			return false, err
		}
	}

	for i := 0; i < n; i++ {
		c.SendStep()
	}

	return false, nil
}

func run(_ *cmdLine, c *core.Core) (bool, error) {
	c.SendRun()
	return false, nil
}

func stop(_ *cmdLine, c *core.Core) (bool, error) {
	c.SendStop()
	return false, nil
}

func reset(_ *cmdLine, c *core.Core) (bool, error) {
	c.SendReset()
	return false, nil
}

func key(line *cmdLine, c *core.Core) (bool, error) {
	name := line.getWord()
	if name == "" {
		return false, errors.New("key requires a name, e.g. \"key enter\"")
	}

	code, ok := command.KeyByName(name)
	if !ok {
		return false, errors.New("unknown key: " + name)
	}

	c.SendRawKey(code)

	return false, nil
}

func dump(_ *cmdLine, c *core.Core) (bool, error) {
	a, b, cReg, d, e, f, m, t := c.Registers()

	fmt.Print(command.FormatRegisters(a, b, cReg, d, e, f, m, t))
	fmt.Printf("PC %03o  P %X  OFFSET %d  ERROR %v\n", c.PC(), c.Pointer(), c.Offset(), c.ErrorTrap())

	return false, nil
}

func disassemble(line *cmdLine, c *core.Core) (bool, error) {
	start := 0
	count := 16

	if !line.isEOL() {
		var err error
		if start, err = line.getInt(); err != nil {
			return false, err
		}
	}

	if !line.isEOL() {
		var err error
		if count, err = line.getInt(); err != nil {
			return false, err
		}
	}

	data := c.Image().Bytes()

	from := start * 2
	to := from + count*2
	if from < 0 || from > len(data) {
		return false, errors.New("disasm: start out of range")
	}
	if to > len(data) {
		to = len(data)
	}

	for _, text := range disasm.DisassembleRange(data[from:to]) {
		fmt.Println(text)
	}

	return false, nil
}

func quit(_ *cmdLine, _ *core.Core) (bool, error) {
	return true, nil
}
