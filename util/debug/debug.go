/*
 * HP35 - Log debug data to a file
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

package debug

import (
	"fmt"
	"os"

	config "github.com/classic-calc/hp35/config/configparser"
)

// Trace category bits, ORed together to select what Debugf reports.
// There is no device/channel tree here (the HP-35 core has no
// peripheral roster), so the categories name its own subsystems: the
// decoder's precondition checks, and the script sequencer's tape
// bookkeeping.
const (
	Decoder = 1 << iota
	Script
)

var logFile *os.File

// Enabled holds the trace categories turned on by the DEBUG config
// keyword. Cpu and the script sequencer are plain value types with no
// package-level state of their own, so the enabled-category mask lives
// here rather than in either package.
var Enabled int

// Enable turns on one or more trace categories.
func Enable(mask int) {
	Enabled |= mask
}

// Debugf reports a formatted debug message tagged with module, gated
// by mask&Enabled: callers pass the category this particular message
// belongs to as mask.
func Debugf(module string, mask int, format string, a ...interface{}) {
	if logFile == nil || (mask&Enabled) == 0 {
		return
	}

	fmt.Fprintf(logFile, module+": "+format+"\n", a...)
}

// register a debug file on initialize.
func init() {
	config.RegisterFile("DEBUGFILE", create)
}

func create(fileName string) error {
	if logFile != nil {
		return fmt.Errorf("can't have more than one debug file, previous: %s", logFile.Name())
	}

	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to create debug file: %s", fileName)
	}

	logFile = file

	return nil
}
