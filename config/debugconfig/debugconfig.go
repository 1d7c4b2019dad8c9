/*
 * HP35 - Debug options configuration.
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

package debugconfig

import (
	"errors"
	"strings"

	config "github.com/classic-calc/hp35/config/configparser"
	"github.com/classic-calc/hp35/util/debug"
)

// categories maps a DEBUG config option name to the trace bit it
// turns on. There is no channel/device/tape roster to dispatch
// against here, only the decoder and the script sequencer.
var categories = map[string]int{
	"DECODER": debug.Decoder,
	"SCRIPT":  debug.Script,
}

// register the DEBUG keyword on initialize.
func init() {
	config.RegisterOptions("DEBUG", setDebug)
}

// setDebug handles a line of the form "DEBUG decoder, script".
func setDebug(_ string, options []config.Option) error {
	for _, opt := range options {
		if err := enable(opt.Name); err != nil {
			return err
		}

		for _, value := range opt.Value {
			if err := enable(*value); err != nil {
				return err
			}
		}
	}

	return nil
}

func enable(name string) error {
	bit, ok := categories[strings.ToUpper(name)]
	if !ok {
		return errors.New("debug option invalid: " + name)
	}

	debug.Enable(bit)

	return nil
}
