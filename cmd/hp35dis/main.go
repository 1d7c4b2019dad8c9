/*
 * HP35 - ROM disassembler CLI
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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/classic-calc/hp35/emu/disasm"
	"github.com/classic-calc/hp35/emu/rom"
)

func main() {
	var bank int
	var all bool

	rootCmd := &cobra.Command{
		Use:   "hp35dis <rom-image>",
		Short: "Disassemble an HP-35 microcode ROM image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := rom.LoadFile(args[0])
			if err != nil {
				return err
			}

			data := img.Bytes()

			banks := []int{bank}
			if all {
				banks = make([]int, 0, rom.PopulatedBanks)
				for b := 0; b < rom.PopulatedBanks; b++ {
					banks = append(banks, b)
				}
			}

			for _, b := range banks {
				start := b * rom.BankSize
				end := start + rom.BankSize
				if start >= len(data) {
					continue
				}
				if end > len(data) {
					end = len(data)
				}

				fmt.Printf("; bank %d\n", b)
				for _, line := range disasm.DisassembleRange(data[start:end]) {
					fmt.Println(line)
				}
			}

			return nil
		},
	}

	rootCmd.Flags().IntVar(&bank, "bank", 0, "ROM bank to disassemble (ignored with --all)")
	rootCmd.Flags().BoolVar(&all, "all", false, "disassemble every populated bank")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
