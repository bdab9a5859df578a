// Package loader handles program image loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8vm/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

// ErrEmptyProgram is returned for program images without any content.
var ErrEmptyProgram = errors.New("empty program image")

// Loader handles loading program images from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new program image loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads the raw program image from the file. Images larger than the
// address space are rejected without reading them completely.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	l.logger.Debug("Program image loaded", log.String("file", path), log.Int("size", len(data)))
	return data, nil
}

// Read reads a raw program image.
func Read(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, memory.Size+1))
	if err != nil {
		return nil, fmt.Errorf("reading program image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyProgram
	}
	if len(data) > memory.Size {
		return nil, fmt.Errorf("%w: image exceeds the %d byte address space", memory.ErrOversizedLoad, memory.Size)
	}
	return data, nil
}
