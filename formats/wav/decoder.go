// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/aup3wav/audio"
)

// pcmReader is an interface for wav.Decoder to allow testing
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio wav.Decoder to implement audio.Source
type source struct {
	dec        pcmReader
	format     *goaudio.Format
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.format,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]) / 32768.0
	}

	// Fewer samples than requested means the data chunk is exhausted
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

// Decoder reads PCM 16-bit WAV streams.
type Decoder struct{}

var _ audio.Decoder = Decoder{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec, err := open(rs)
	if err != nil {
		return nil, err
	}

	return &source{
		dec:        dec,
		format:     dec.Format(),
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
	}, nil
}

func open(rs io.ReadSeeker) (*wav.Decoder, error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != formatPCM || dec.BitDepth != bitsPerSample {
		return nil, ErrOnlyPCM16bitSupported
	}
	return dec, nil
}

// Info describes a decoded WAV file.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Samples    int // per channel
	Duration   time.Duration
}

// Probe decodes the WAV file at path and reports its layout.
func Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("%w", err)
	}
	defer f.Close()

	dec, err := open(f)
	if err != nil {
		return Info{}, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Info{}, fmt.Errorf("read pcm: %w", err)
	}

	info := Info{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}
	info.Samples = len(buf.Data) / max(info.Channels, 1)
	info.Duration = audio.Duration(info.Samples, info.SampleRate)

	return info, nil
}

// Verify probes path and checks it is a mono 16-bit file at sampleRate with
// exactly samples samples. A mismatch wraps ErrVerify.
func Verify(path string, sampleRate, samples int) (Info, error) {
	info, err := Probe(path)
	if err != nil {
		return info, fmt.Errorf("%w: %w", ErrVerify, err)
	}

	switch {
	case info.Channels != 1:
		return info, fmt.Errorf("%w: %d channels, want 1", ErrVerify, info.Channels)
	case info.SampleRate != sampleRate:
		return info, fmt.Errorf("%w: %d Hz, want %d", ErrVerify, info.SampleRate, sampleRate)
	case info.Samples != samples:
		return info, fmt.Errorf("%w: %d samples, want %d", ErrVerify, info.Samples, samples)
	}

	return info, nil
}
