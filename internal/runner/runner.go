// Package runner orchestrates loading and running a program image.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/retroenv/chip8vm/internal/audio"
	"github.com/retroenv/chip8vm/internal/cpu"
	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/loader"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/timer"
	"github.com/retroenv/retrogolib/log"
)

// Result describes a finished run.
type Result struct {
	Cycles     uint64
	Exited     bool   // the program jumped to itself
	Frame      []bool // final display pixels in row-major order
	BeepFrames int    // frames during which the sound timer was active
}

// Runner runs program images on the virtual machine.
type Runner struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new runner.
func New(logger *log.Logger) *Runner {
	return &Runner{
		logger: logger,
		loader: loader.New(logger),
	}
}

// Execute loads the program image named by the options and runs it.
func (r *Runner) Execute(ctx context.Context, opts options.Program, writer io.Writer) (*Result, error) {
	program, err := r.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	return r.ExecuteProgram(ctx, program, opts, writer)
}

// ExecuteProgram runs a program image that is already in memory. The run
// ends when the program exits, the cycle limit is reached, a fatal error
// occurs or the context is canceled. Unless quiet, the final frame is
// written to the writer.
func (r *Runner) ExecuteProgram(ctx context.Context, program []byte, opts options.Program,
	writer io.Writer) (*Result, error) {

	proc, err := cpu.New(r.logger, program, processorOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("creating processor: %w", err)
	}

	r.printInfo(opts, len(program))

	var recorder *audio.Recorder
	if opts.Wav != "" {
		recorder = audio.NewRecorder()
	}

	runErr := r.run(ctx, proc, opts, recorder)

	result := &Result{
		Cycles: proc.Cycles(),
		Exited: proc.Exited(),
		Frame:  proc.Frame(),
	}
	if recorder != nil {
		result.BeepFrames = recorder.ActiveFrames()
		if err := recorder.WriteFile(opts.Wav); err != nil {
			return result, fmt.Errorf("writing beep recording: %w", err)
		}
	}

	if !opts.Quiet {
		if err := display.Render(writer, proc.Display()); err != nil {
			return result, err
		}
	}

	if runErr != nil {
		return result, runErr
	}
	return result, nil
}

// processorOptions maps the program options to the processor options.
func processorOptions(opts options.Program) cpu.Options {
	cpuOpts := cpu.DefaultOptions()
	cpuOpts.Trace = opts.Trace
	cpuOpts.Quirks = cpu.Quirks{
		ShiftUsesVx: opts.ShiftUsesVx,
		KeepIndex:   opts.KeepIndex,
	}
	if opts.Display == options.DisplayExternal {
		cpuOpts.Display = display.New()
	}
	return cpuOpts
}

// stepsPerFrame returns the number of instructions that make up one timer
// frame at the given rate.
func stepsPerFrame(rate int) uint64 {
	if rate <= 0 {
		rate = options.DefaultRate
	}
	return uint64(max(rate/timer.Frequency, 1))
}

func (r *Runner) run(ctx context.Context, proc *cpu.Processor, opts options.Program,
	recorder *audio.Recorder) error {

	var tick <-chan time.Time
	if opts.Rate > 0 {
		ticker := time.NewTicker(max(time.Second/time.Duration(opts.Rate), time.Nanosecond))
		defer ticker.Stop()
		tick = ticker.C
	}
	frameSteps := stepsPerFrame(opts.Rate)

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if err := proc.Step(); err != nil {
			return fmt.Errorf("executing program: %w", err)
		}

		if recorder != nil && proc.Cycles()%frameSteps == 0 {
			recorder.Frame(proc.Beep())
		}

		switch {
		case proc.Exited():
			r.logger.Info("Program exited", log.Hex("pc", proc.PC()), log.Int("cycles", int(proc.Cycles())))
			return nil
		case opts.Cycles > 0 && proc.Cycles() >= opts.Cycles:
			r.logger.Info("Cycle limit reached", log.Int("cycles", int(proc.Cycles())))
			return nil
		}
	}
}

// printInfo prints information about the program being run.
func (r *Runner) printInfo(opts options.Program, size int) {
	if opts.Quiet {
		return
	}

	r.logger.Info("Running CHIP-8 program",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.String("display", opts.Display),
		log.Int("rate", opts.Rate),
	)
}
