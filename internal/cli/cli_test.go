package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = args
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags:      options.Flags{Rate: options.DefaultRate, Display: options.DisplayInline},
			},
		},
		{
			name: "input flag",
			args: []string{"prog", "-i", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8"},
				Flags:      options.Flags{Rate: options.DefaultRate, Display: options.DisplayInline},
			},
		},
		{
			name: "all flags",
			args: []string{"prog", "-rate", "0", "-cycles", "100", "-display", "External",
				"-wav", "beep.wav", "-trace", "-q", "-shift-vx", "-keep-index", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8", Wav: "beep.wav"},
				Flags: options.Flags{
					Rate:    0,
					Cycles:  100,
					Display: options.DisplayExternal,
					Trace:   true,
					Quiet:   true,
				},
				Quirks: options.Quirks{ShiftUsesVx: true, KeepIndex: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArgs(t, tt.args...)

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		usageError bool
	}{
		{"no input", []string{"prog"}, true},
		{"unknown flag", []string{"prog", "-unknown", "test.ch8"}, true},
		{"flag after input", []string{"prog", "test.ch8", "-q"}, true},
		{"invalid display", []string{"prog", "-display", "window", "test.ch8"}, false},
		{"negative rate", []string{"prog", "-rate", "-5", "test.ch8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArgs(t, tt.args...)

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usageError, errors.As(err, &usageErr))
		})
	}
}

func TestParseDisassemblerFlags(t *testing.T) {
	setArgs(t, "prog", "-o", "out.asm", "test.ch8")

	opts, err := ParseDisassemblerFlags()
	assert.NoError(t, err)
	assert.Equal(t, "test.ch8", opts.Input)
	assert.Equal(t, "out.asm", opts.Output)

	setArgs(t, "prog")
	_, err = ParseDisassemblerFlags()
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
}
