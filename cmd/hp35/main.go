/*
 * HP35 - Main process.
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
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	getopt "github.com/pborman/getopt/v2"

	"github.com/classic-calc/hp35/command/reader"
	config "github.com/classic-calc/hp35/config/configparser"
	"github.com/classic-calc/hp35/config/romconfig"
	"github.com/classic-calc/hp35/emu/core"
	"github.com/classic-calc/hp35/emu/rom"
	logger "github.com/classic-calc/hp35/util/logger"

	_ "github.com/classic-calc/hp35/config/debugconfig"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optROM := getopt.StringLong("rom", 'r', "", "ROM image (overrides the config file's ROM keyword)")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}

	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	debugOff := false
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, &debugOff))
	slog.SetDefault(Logger)

	Logger.Info("HP-35 emulator started")

	if *optConfig != "" {
		if err := config.LoadConfigFile(*optConfig); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
	}

	image := romconfig.Image
	if *optROM != "" {
		var err error
		if image, err = rom.LoadFile(*optROM); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
	}

	if image == nil {
		Logger.Error("no ROM image given: pass --rom or set ROM in the config file")
		os.Exit(1)
	}

	in := make(chan core.Packet, 16)
	calc := core.NewCore(image, in, nil)

	go calc.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		reader.ConsoleReader(calc)
		close(done)
	}()

	select {
	case <-sigChan:
		Logger.Info("got quit signal")
	case <-done:
	}

	Logger.Info("shutting down HP-35 core")
	calc.Stop()
}
