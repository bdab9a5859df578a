// Package audio records the beep signal of the sound timer as a WAV file.
package audio

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Output format and tone of the recording.
const (
	SampleRate    = 44100
	BitDepth      = 16
	Channels      = 1
	ToneFrequency = 440
	FrameRate     = 60

	// SamplesPerFrame is the number of samples recorded for one frame.
	SamplesPerFrame = SampleRate / FrameRate

	amplitude = 8000
	pcmFormat = 1
)

// Recorder buffers the beep signal frame by frame in memory.
type Recorder struct {
	samples []int
	phase   int // sample position within the tone
	frames  int
	active  int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Frame appends one frame of audio: a square wave tone when the beep is
// active, silence otherwise.
func (r *Recorder) Frame(active bool) {
	r.frames++
	if active {
		r.active++
	}
	for range SamplesPerFrame {
		if !active {
			r.samples = append(r.samples, 0)
			continue
		}

		// the first half of each tone period is high
		if (r.phase*2*ToneFrequency/SampleRate)%2 == 0 {
			r.samples = append(r.samples, amplitude)
		} else {
			r.samples = append(r.samples, -amplitude)
		}
		r.phase = (r.phase + 1) % SampleRate
	}
}

// Frames returns the number of recorded frames.
func (r *Recorder) Frames() int {
	return r.frames
}

// ActiveFrames returns the number of recorded frames with the tone on.
func (r *Recorder) ActiveFrames() int {
	return r.active
}

// Encode writes the recording as WAV data.
func (r *Recorder) Encode(w io.WriteSeeker) error {
	enc := wav.NewEncoder(w, SampleRate, BitDepth, Channels, pcmFormat)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: Channels,
			SampleRate:  SampleRate,
		},
		Data:           r.samples,
		SourceBitDepth: BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav data: %w", err)
	}
	return nil
}

// WriteFile writes the recording to a WAV file.
func (r *Recorder) WriteFile(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing file %s: %w", path, closeErr)
		}
	}()

	return r.Encode(file)
}
