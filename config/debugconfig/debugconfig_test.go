/*
 * HP35 - Debug options configuration test set.
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
	"testing"

	config "github.com/classic-calc/hp35/config/configparser"
	"github.com/classic-calc/hp35/util/debug"
)

func TestSetDebugUnknown(t *testing.T) {
	err := setDebug("", []config.Option{{Name: "nosuch"}})
	if err == nil {
		t.Errorf("expected error for unknown debug option")
	}
}

func TestSetDebugDecoder(t *testing.T) {
	debug.Enabled = 0

	if err := setDebug("", []config.Option{{Name: "decoder"}}); err != nil {
		t.Errorf("setDebug failed: %v", err)
	}

	if debug.Enabled&debug.Decoder == 0 {
		t.Errorf("decoder category not enabled")
	}

	if debug.Enabled&debug.Script != 0 {
		t.Errorf("script category enabled unexpectedly")
	}
}

func TestSetDebugValueList(t *testing.T) {
	debug.Enabled = 0

	value := "script"
	opt := config.Option{Name: "decoder", Value: []*string{&value}}

	if err := setDebug("", []config.Option{opt}); err != nil {
		t.Errorf("setDebug failed: %v", err)
	}

	if debug.Enabled&debug.Decoder == 0 || debug.Enabled&debug.Script == 0 {
		t.Errorf("expected both categories enabled, got mask %d", debug.Enabled)
	}
}
