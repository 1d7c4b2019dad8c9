/*
 * HP35 - Configuration file parser test set.
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

import "testing"

var (
	testValue   string
	testOptions []Option
	testType    string
)

func resetTest() {
	testValue = "unset"
	testOptions = nil
	testType = ""
}

func cleanUpConfig() {
	keywords = map[string]keywordDef{}
	resetTest()
}

func modOption(value string, options []Option) error {
	testValue = value
	testType = "option"
	testOptions = options

	return nil
}

func modOptions(value string, options []Option) error {
	testValue = value
	testType = "options"
	testOptions = options

	return nil
}

func modSwitch(value string, options []Option) error {
	testValue = value
	testType = "switch"
	testOptions = options

	return nil
}

func TestRegisterOption(t *testing.T) {
	cleanUpConfig()
	RegisterOption("logfile", modOption)

	if err := createOption("nosuch", "x"); err == nil {
		t.Errorf("create non existent option succeeded")
	}

	if err := createOption("LOGFILE", "hp35.log"); err != nil {
		t.Errorf("unable to create option: %v", err)
	}

	if testType != "option" || testValue != "hp35.log" {
		t.Errorf("option not dispatched correctly: %q %q", testType, testValue)
	}
}

func TestRegisterSwitch(t *testing.T) {
	cleanUpConfig()
	RegisterSwitch("bright", modSwitch)

	if err := createSwitch("nosuch"); err == nil {
		t.Errorf("create non existent switch succeeded")
	}

	if err := createSwitch("BRIGHT"); err != nil {
		t.Errorf("unable to create switch: %v", err)
	}

	if testType != "switch" {
		t.Errorf("switch not dispatched")
	}

	if err := createOption("bright", "x"); err == nil {
		t.Errorf("created switch as option")
	}
}

func TestParseLineSwitch(t *testing.T) {
	cleanUpConfig()
	RegisterSwitch("bright", modSwitch)

	line := optionLine{line: "bright"}
	if err := line.parseLine(); err != nil {
		t.Errorf("parseLine failed to parse switch: %v", err)
	}

	if testType != "switch" {
		t.Errorf("switch not created")
	}

	resetTest()

	line = optionLine{line: "bright  # comment"}
	if err := line.parseLine(); err != nil {
		t.Errorf("parseLine failed on switch with comment: %v", err)
	}

	if testType != "switch" {
		t.Errorf("switch not created with trailing comment")
	}

	resetTest()

	line = optionLine{line: "bright high"}
	if err := line.parseLine(); err == nil {
		t.Errorf("parseLine accepted an argument on a switch")
	}
}

func TestParseLineOption(t *testing.T) {
	cleanUpConfig()
	RegisterOption("logfile", modOption)

	line := optionLine{line: "LOGFILE hp35.log   # comment"}
	if err := line.parseLine(); err != nil {
		t.Errorf("parseLine failed to parse option: %v", err)
	}

	if testType != "option" || testValue != "hp35.log" {
		t.Errorf("option value not set: %q %q", testType, testValue)
	}
}

func TestParseLineOptionsComma(t *testing.T) {
	cleanUpConfig()
	RegisterOptions("debug", modOptions)

	line := optionLine{line: "debug decoder, script"}
	if err := line.parseLine(); err != nil {
		t.Errorf("parseLine failed: %v", err)
	}

	if len(testOptions) != 1 {
		t.Fatalf("expected 1 option, got %d", len(testOptions))
	}

	if testOptions[0].Name != "decoder" || len(testOptions[0].Value) != 1 || *testOptions[0].Value[0] != "script" {
		t.Errorf("unexpected option name or values: %+v", testOptions)
	}
}

func TestParseLineOptionsEqual(t *testing.T) {
	cleanUpConfig()
	RegisterOptions("debug", modOptions)

	line := optionLine{line: `level=trace second=another option`}
	if err := line.parseLine(); err == nil {
		t.Errorf("expected unknown-keyword error for bare line")
	}

	line = optionLine{line: `debug level=trace second=another option`}
	if err := line.parseLine(); err != nil {
		t.Errorf("parseLine failed: %v", err)
	}

	if len(testOptions) != 3 {
		t.Fatalf("expected 3 options, got %d: %+v", len(testOptions), testOptions)
	}

	if testOptions[0].Name != "level" || testOptions[0].EqualOpt != "trace" {
		t.Errorf("first option wrong: %+v", testOptions[0])
	}

	if testOptions[1].Name != "second" || testOptions[1].EqualOpt != "another" {
		t.Errorf("second option wrong: %+v", testOptions[1])
	}

	if testOptions[2].Name != "option" {
		t.Errorf("third option wrong: %+v", testOptions[2])
	}
}

func TestParseLineOptionsQuote(t *testing.T) {
	cleanUpConfig()
	RegisterOptions("debug", modOptions)

	line := optionLine{line: `debug param="Value Second"`}
	if err := line.parseLine(); err != nil {
		t.Errorf("parseLine failed: %v", err)
	}

	if len(testOptions) != 1 || testOptions[0].EqualOpt != "Value Second" {
		t.Errorf("quoted value not parsed: %+v", testOptions)
	}
}

func TestRegisterFile(t *testing.T) {
	cleanUpConfig()

	var got string

	RegisterFile("LOGFILE", func(v string) error {
		got = v
		return nil
	})

	if err := createOption("LOGFILE", "hp35.log"); err != nil {
		t.Errorf("unable to create file option: %v", err)
	}

	if got != "hp35.log" {
		t.Errorf("RegisterFile callback did not receive value: %q", got)
	}
}
