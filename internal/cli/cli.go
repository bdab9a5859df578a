// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/chip8vm/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags, usage: "chip8vm [options] <program image>"}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}
	return opts, nil
}

// ParseDisassemblerFlags parses the command line flags of the listing tool.
func ParseDisassemblerFlags() (options.Disassembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Disassembler
	flags.StringVar(&opts.Input, "i", "", "name of the input program image")
	flags.StringVar(&opts.Output, "o", "", "name of the output listing file, printed on console if no name given")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags, usage: "chip8disasm [options] <program image>"}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	usage string
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage line and the flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: %s\n\n", e.usage)
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks that the program image is the last argument.
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after program image, please pass the program image as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Display = strings.ToLower(opts.Display)
	switch opts.Display {
	case options.DisplayInline, options.DisplayExternal:
	default:
		return fmt.Errorf("unsupported display mode: %s. Valid options: %s, %s",
			opts.Display, options.DisplayInline, options.DisplayExternal)
	}

	if opts.Rate < 0 {
		return fmt.Errorf("invalid instruction rate %d, must not be negative", opts.Rate)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input program image")
	flags.StringVar(&opts.Wav, "wav", "", "name of a .wav file to record the sound timer beep to")
	flags.IntVar(&opts.Rate, "rate", options.DefaultRate, "instructions executed per second, 0 runs unthrottled")
	flags.Uint64Var(&opts.Cycles, "cycles", 0, "stop after this many instructions, 0 runs until the program exits")
	flags.StringVar(&opts.Display, "display", options.DisplayInline, "framebuffer location (inline/external)")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.ShiftUsesVx, "shift-vx", false, "shift instructions shift Vx in place instead of Vy")
	flags.BoolVar(&opts.KeepIndex, "keep-index", false, "register block transfers leave I unchanged")
}
