package config

import (
	"testing"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name string
		opts options.Program
	}{
		{"default", options.Program{}},
		{"debug", options.Program{Flags: options.Flags{Debug: true}}},
		{"trace", options.Program{Flags: options.Flags{Trace: true}}},
		{"quiet", options.Program{Flags: options.Flags{Quiet: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, CreateLogger(tt.opts))
		})
	}
}
