package app

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestBuild_VersionString(t *testing.T) {
	tests := []struct {
		name     string
		build    Build
		expected string
	}{
		{"empty", Build{}, "dev"},
		{"version only", Build{Version: "1.0.0"}, "1.0.0"},
		{"short commit", Build{Version: "1.0.0", Commit: "abc"}, "1.0.0 (abc)"},
		{"long commit", Build{Version: "1.0.0", Commit: "0123456789abcdef"}, "1.0.0 (0123456)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.build.VersionString())
		})
	}
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	PrintBanner(logger, "chip8vm", false, Build{Version: "1.0.0", Date: "2024-01-01"})
	PrintBanner(logger, "chip8vm", true, Build{})
}
