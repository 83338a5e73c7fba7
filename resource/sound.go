package resource

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// BytesPerFrame is the size of one decoded frame: two channels of signed
// 16-bit little-endian samples.
const BytesPerFrame = 4

// pcmStream is the decoded stream shared by the wav, vorbis and mp3
// decoders.
type pcmStream interface {
	io.ReadSeeker
	Length() int64
	SampleRate() int
}

// Sound is a fully decoded sound effect.
type Sound struct {
	// PCM holds interleaved stereo 16-bit little-endian samples.
	PCM        []byte
	SampleRate int
}

// Frames returns the number of stereo frames in s.
func (s *Sound) Frames() int {
	return len(s.PCM) / BytesPerFrame
}

// Duration returns the playing time of s.
func (s *Sound) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}
	return time.Duration(s.Frames()) * time.Second / time.Duration(s.SampleRate)
}

// LoadSound decodes a whole audio file into memory. The format is picked
// from the extension: .wav, .ogg or .mp3.
func LoadSound(path string) (*Sound, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("resource: open sound: %w", err)
	}
	return SoundFromBytes(data, filepath.Ext(path))
}

// SoundFromBytes decodes in-memory audio of the given format, named by
// extension with or without the leading dot.
func SoundFromBytes(data []byte, format string) (*Sound, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	s, err := decodeAudio(bytes.NewReader(data), format)
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("resource: decode sound: %w", err)
	}
	return &Sound{PCM: pcm, SampleRate: s.SampleRate()}, nil
}

// Music is an audio file decoded on demand while it is read. It is meant
// for long tracks that should not be held in memory; Music is an
// io.ReadSeekCloser over the same PCM layout as Sound.
type Music struct {
	pcmStream
	f *os.File
}

// OpenMusic opens a streamed audio file. The caller must Close it.
func OpenMusic(path string) (*Music, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("resource: open music: %w", err)
	}
	s, err := decodeAudio(f, filepath.Ext(path))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Music{pcmStream: s, f: f}, nil
}

// Duration returns the playing time of the whole track.
func (m *Music) Duration() time.Duration {
	rate := m.SampleRate()
	if rate <= 0 {
		return 0
	}
	return time.Duration(m.Length()/BytesPerFrame) * time.Second / time.Duration(rate)
}

// Close closes the underlying file.
func (m *Music) Close() error {
	return m.f.Close()
}

func decodeAudio(r io.ReadSeeker, format string) (pcmStream, error) {
	var (
		s   pcmStream
		err error
	)
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "wav":
		s, err = wav.DecodeWithoutResampling(r)
	case "ogg", "oga":
		s, err = vorbis.DecodeWithoutResampling(r)
	case "mp3":
		s, err = mp3.DecodeWithoutResampling(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("resource: decode %s: %w", format, err)
	}
	return s, nil
}
