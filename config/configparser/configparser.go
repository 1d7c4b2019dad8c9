/*
 * HP35 - Configuration file parser
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

package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Option is one option on a config line: a name, an optional '='
// value, and any comma-separated values after it, e.g. "DEBUG
// decoder,script" yields one Option with Name "decoder", Value
// ["script"], and no EqualOpt.
type Option struct {
	Name     string
	EqualOpt string
	Value    []*string
}

// Current option line being parsed.
type optionLine struct {
	line string
	pos  int
}

/* Configuration file format, unchanged from the S/370 shape this is
 * grounded on, minus device addressing (the HP-35 has nothing to
 * address):
 *
 * '#' indicates comment, rest of line is ignored.
 * <line> := <keyword> <whitespace> <value> |
 *            <keyword> <whitespace> <options>
 * <options> ::= *(<option> *(<whitespace>))
 * <option> ::= <name> ['=' <quoteopt>] *(',' <string>)
 * <quoteopt> ::= <string> | '"' *(<letter> | <whitespace>) '"'
 */

const (
	TypeOption  = 1 + iota // Accepts exactly one value.
	TypeOptions            // Accepts a list of options.
	TypeSwitch             // No value; sets a flag.
)

type keywordDef struct {
	create func(string, []Option) error
	ty     int
}

var keywords = map[string]keywordDef{}

var lineNumber int

func getKeyword(name string) int {
	k, ok := keywords[name]
	if !ok {
		return 0
	}

	return k.ty
}

// RegisterOption registers a keyword that takes exactly one value,
// e.g. "ROM hp35.rom".
func RegisterOption(name string, fn func(string, []Option) error) {
	keywords[strings.ToUpper(name)] = keywordDef{create: fn, ty: TypeOption}
}

// RegisterOptions registers a keyword that takes a comma-separated
// option list, e.g. "DEBUG decoder,script".
func RegisterOptions(name string, fn func(string, []Option) error) {
	keywords[strings.ToUpper(name)] = keywordDef{create: fn, ty: TypeOptions}
}

// RegisterSwitch registers a bare keyword with no value.
func RegisterSwitch(name string, fn func(string, []Option) error) {
	keywords[strings.ToUpper(name)] = keywordDef{create: fn, ty: TypeSwitch}
}

// RegisterFile registers a keyword whose single value is a file path,
// e.g. "LOGFILE hp35.log" — the common case of RegisterOption used by
// util/debug (DEBUGFILE) and config/romconfig (ROM).
func RegisterFile(name string, fn func(string) error) {
	RegisterOption(name, func(value string, _ []Option) error {
		return fn(value)
	})
}

func createOption(name string, value string) error {
	name = strings.ToUpper(name)

	k, ok := keywords[name]
	if !ok {
		return errors.New("unknown option: " + name)
	}

	if k.ty != TypeOption {
		return errors.New("not a single-value option: " + name)
	}

	return k.create(value, nil)
}

func createOptions(name string, options []Option) error {
	name = strings.ToUpper(name)

	k, ok := keywords[name]
	if !ok {
		return errors.New("unknown option: " + name)
	}

	if k.ty != TypeOptions {
		return errors.New("not an options-list option: " + name)
	}

	return k.create("", options)
}

func createSwitch(name string) error {
	name = strings.ToUpper(name)

	k, ok := keywords[name]
	if !ok {
		return errors.New("unknown switch: " + name)
	}

	if k.ty != TypeSwitch {
		return errors.New("not a switch option: " + name)
	}

	return k.create("", nil)
}

// LoadConfigFile reads and applies a configuration file line by line.
func LoadConfigFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	lineNumber = 0
	reader := bufio.NewReader(file)

	for {
		line := optionLine{}

		var err error

		line.line, err = reader.ReadString('\n')
		lineNumber++

		if len(line.line) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return err
		}

		if parseErr := line.parseLine(); parseErr != nil {
			return parseErr
		}
	}

	return nil
}

// parseLine dispatches one configuration line to its registered
// keyword handler.
func (line *optionLine) parseLine() error {
	name := line.parseKeyword()
	if name == "" {
		return nil
	}

	switch getKeyword(name) {
	case TypeOption:
		value, err := line.parseValue()
		if err != nil {
			return err
		}

		return createOption(name, value)

	case TypeOptions:
		options, err := line.parseOptions()
		if err != nil {
			return err
		}

		return createOptions(name, options)

	case TypeSwitch:
		line.skipSpace()
		if !line.isEOL() {
			return fmt.Errorf("switch %s followed by options, line: %d", name, lineNumber)
		}

		return createSwitch(name)

	case 0:
		return fmt.Errorf("no keyword %s registered, line: %d", name, lineNumber)
	}

	return nil
}

func (line *optionLine) skipSpace() {
	for !line.isEOL() && unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
}

func (line *optionLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}

	return line.line[line.pos] == '#'
}

func (line *optionLine) getNext(inQuote bool) byte {
	line.pos++
	if line.isEOL() {
		return 0
	}

	by := line.line[line.pos]
	if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) || inQuote {
		return by
	}

	return 0
}

func (line *optionLine) getPeek() byte {
	if (line.pos + 1) >= len(line.line) {
		return 0
	}

	return line.line[line.pos+1]
}

// parseKeyword reads the leading identifier on a line: the config key.
func (line *optionLine) parseKeyword() string {
	line.skipSpace()
	if line.isEOL() {
		return ""
	}

	name := ""

	for !line.isEOL() {
		by := line.line[line.pos]
		if !unicode.IsLetter(rune(by)) && !unicode.IsNumber(rune(by)) {
			break
		}

		name += string([]byte{by})
		line.pos++
	}

	return strings.ToUpper(name)
}

// parseValue reads a single bare or quoted value following a keyword.
func (line *optionLine) parseValue() (string, error) {
	value, ok := line.parseQuoteString()
	if !ok {
		return "", fmt.Errorf("invalid quoted string, line: %d", lineNumber)
	}

	return value, nil
}

func (line *optionLine) parseQuoteString() (string, bool) {
	inQuote := false
	value := ""

	if line.getPeek() == '"' {
		inQuote = true
		_ = line.getNext(true)
	}

	for {
		by := line.getNext(true)
		if by == '"' && inQuote {
			by = line.getNext(inQuote)
			if by != '"' {
				return value, true
			}
		}

		space := unicode.IsSpace(rune(by))
		if !inQuote && (space || by == 0 || by == ',') {
			return value, true
		}

		value += string(by)

		if line.isEOL() {
			return value, !inQuote
		}
	}
}

func (line *optionLine) getName() (string, error) {
	if line.isEOL() {
		return "", nil
	}

	by := line.line[line.pos]
	if !unicode.IsLetter(rune(by)) {
		return "", fmt.Errorf("invalid option encountered, line: %d [%d]", lineNumber, line.pos)
	}

	value := ""

	for {
		value += string([]byte{by})

		by = line.getNext(false)
		if by == 0 {
			break
		}
	}

	return value, nil
}

func (line *optionLine) parseOption() (*Option, error) {
	line.skipSpace()

	value, err := line.getName()
	if value == "" {
		return nil, err
	}

	option := Option{Name: value}

	if line.isEOL() {
		return &option, nil
	}

	if line.line[line.pos] == '=' {
		v, ok := line.parseQuoteString()
		if !ok {
			return nil, fmt.Errorf("invalid quoted string, line: %d [%d]", lineNumber, line.pos)
		}

		option.EqualOpt = v
	}

	line.skipSpace()

	for !line.isEOL() && line.line[line.pos] == ',' {
		line.pos++
		line.skipSpace()

		v, err := line.getName()
		if err != nil {
			return nil, err
		}

		if v != "" {
			option.Value = append(option.Value, &v)
		}

		line.skipSpace()
	}

	return &option, nil
}

func (line *optionLine) parseOptions() ([]Option, error) {
	options := []Option{}

	for {
		option, err := line.parseOption()
		if err != nil {
			return nil, err
		}

		if option == nil {
			break
		}

		options = append(options, *option)
	}

	return options, nil
}
