/*
 * HP35 - ROM image config keyword
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

// Package romconfig registers the "ROM" config file keyword: a single
// file path naming the microcode image to power on with. There is
// nothing to attach or detach on an HP-35 the way the mainframe's
// config file addresses card readers and tape drives; one machine has
// exactly one ROM.
package romconfig

import (
	config "github.com/classic-calc/hp35/config/configparser"
	"github.com/classic-calc/hp35/emu/rom"
)

// Image holds the ROM loaded by the "ROM" config keyword, or nil if
// the config file never named one.
var Image *rom.Image

func init() {
	config.RegisterFile("ROM", load)
}

func load(path string) error {
	img, err := rom.LoadFile(path)
	if err != nil {
		return err
	}

	Image = img

	return nil
}
