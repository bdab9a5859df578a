package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/chip8vm/internal/memory"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestLoad(t *testing.T) {
	t.Run("load program image", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x12, 0x34, 0x56, 0x78})

		loader := New(log.NewTestLogger(t))
		data, err := loader.Load(tmpFile)
		assert.NoError(t, err)
		assert.True(t, bytes.Equal([]byte{0x12, 0x34, 0x56, 0x78}, data))
	})

	t.Run("empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		loader := New(log.NewTestLogger(t))
		_, err := loader.Load(tmpFile)
		assert.True(t, errors.Is(err, ErrEmptyProgram))
	})

	t.Run("oversized file", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, memory.Size+10))

		loader := New(log.NewTestLogger(t))
		_, err := loader.Load(tmpFile)
		assert.True(t, errors.Is(err, memory.ErrOversizedLoad))
	})

	t.Run("missing file", func(t *testing.T) {
		loader := New(log.NewTestLogger(t))
		_, err := loader.Load(filepath.Join(t.TempDir(), "missing.ch8"))
		assert.ErrorContains(t, err, "opening file")
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestRead(t *testing.T) {
	data, err := Read(bytes.NewReader(make([]byte, memory.Size)))
	assert.NoError(t, err)
	assert.Len(t, data, memory.Size)
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "program.ch8")
	err := os.WriteFile(path, data, 0o600)
	assert.NoError(t, err)
	return path
}
