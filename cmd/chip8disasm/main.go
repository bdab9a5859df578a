// Package main implements a CHIP-8 program image disassembler
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8vm/internal/app"
	"github.com/retroenv/chip8vm/internal/cli"
	"github.com/retroenv/chip8vm/internal/config"
	"github.com/retroenv/chip8vm/internal/disasm"
	"github.com/retroenv/chip8vm/internal/loader"
	"github.com/retroenv/chip8vm/internal/memory"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, err := cli.ParseDisassemblerFlags()
	logger := config.NewLogger(false, opts.Quiet)
	build := app.Build{Version: version, Commit: commit, Date: date}

	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, "chip8disasm", opts.Quiet, build)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	if opts.Output != "" {
		app.PrintBanner(logger, "chip8disasm", opts.Quiet, build)
	}

	if err := disasmFile(logger, opts, os.Stdout); err != nil {
		logger.Error("Disassembling failed", log.Err(err))
		os.Exit(1)
	}
}

func disasmFile(logger *log.Logger, opts options.Disassembler, stdout io.Writer) (err error) {
	image, err := loader.New(logger).Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	if opts.Output == "" {
		return writeListing(stdout, image)
	}

	outputFile, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", opts.Output, err)
	}
	defer func() {
		if closeErr := outputFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", closeErr)
		}
	}()

	return writeListing(outputFile, image)
}

func writeListing(w io.Writer, image []byte) error {
	if err := disasm.Write(w, image, memory.InlineDisplay.Program.Start); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}
