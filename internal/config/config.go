// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger for the program options. Instruction
// tracing is logged at debug level and enables it.
func CreateLogger(opts options.Program) *log.Logger {
	return NewLogger(opts.Debug || opts.Trace, opts.Quiet)
}

// NewLogger creates a logger with appropriate settings
func NewLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
