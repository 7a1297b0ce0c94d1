// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func TestWriteWAV16_ValidFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 200, -200}
	buf := new(bytes.Buffer)

	err := WriteWAV16(buf, 8000, samples)
	if err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	// Verify RIFF header
	if buf.Len() < 44 {
		t.Fatalf("WAV file too small: %d bytes", buf.Len())
	}

	data := buf.Bytes()
	if string(data[0:4]) != "RIFF" {
		t.Errorf("RIFF marker = %q, want \"RIFF\"", string(data[0:4]))
	}

	if string(data[8:12]) != "WAVE" {
		t.Errorf("WAVE marker = %q, want \"WAVE\"", string(data[8:12]))
	}
}

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	samples := []int16{}
	buf := new(bytes.Buffer)

	err := WriteWAV16(buf, 8000, samples)
	if err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	// Should still create valid WAV header
	if buf.Len() != 44 {
		t.Errorf("WAV file size = %d, want 44 (header only)", buf.Len())
	}
}

func TestWriteWAV16_CorrectHeader(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400}
	buf := new(bytes.Buffer)

	err := WriteWAV16(buf, 44100, samples)
	if err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()

	// Verify fmt chunk marker
	if string(data[12:16]) != "fmt " {
		t.Errorf("fmt marker = %q, want \"fmt \"", string(data[12:16]))
	}

	// Verify fmt chunk size (should be 16 for PCM)
	fmtSize := binary.LittleEndian.Uint32(data[16:20])
	if fmtSize != 16 {
		t.Errorf("fmt chunk size = %d, want 16", fmtSize)
	}

	// Verify audio format (1 = PCM)
	audioFormat := binary.LittleEndian.Uint16(data[20:22])
	if audioFormat != 1 {
		t.Errorf("audio format = %d, want 1 (PCM)", audioFormat)
	}

	// Verify number of channels (1 = mono)
	numChannels := binary.LittleEndian.Uint16(data[22:24])
	if numChannels != 1 {
		t.Errorf("num channels = %d, want 1", numChannels)
	}

	// Verify sample rate
	sampleRate := binary.LittleEndian.Uint32(data[24:28])
	if sampleRate != 44100 {
		t.Errorf("sample rate = %d, want 44100", sampleRate)
	}

	// Block align and byte rate for mono 16-bit
	if got := binary.LittleEndian.Uint16(data[32:34]); got != 2 {
		t.Errorf("block align = %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint32(data[28:32]); got != 88200 {
		t.Errorf("byte rate = %d, want 88200", got)
	}

	// Verify bits per sample (should be 16)
	bitsPerSample := binary.LittleEndian.Uint16(data[34:36])
	if bitsPerSample != 16 {
		t.Errorf("bits per sample = %d, want 16", bitsPerSample)
	}

	// Verify data chunk marker
	if string(data[36:40]) != "data" {
		t.Errorf("data marker = %q, want \"data\"", string(data[36:40]))
	}

	// Verify data size
	dataSize := binary.LittleEndian.Uint32(data[40:44])
	expectedDataSize := uint32(len(samples) * 2)
	if dataSize != expectedDataSize {
		t.Errorf("data size = %d, want %d", dataSize, expectedDataSize)
	}
}

func TestWriteWAV16_SampleData(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -200, 300, -400}
	buf := new(bytes.Buffer)

	err := WriteWAV16(buf, 8000, samples)
	if err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()

	// Sample data starts at byte 44
	for i, expected := range samples {
		offset := 44 + (i * 2)
		actual := int16(binary.LittleEndian.Uint16(data[offset : offset+2]))
		if actual != expected {
			t.Errorf("sample[%d] = %d, want %d", i, actual, expected)
		}
	}
}

func TestWriteWAV16_RoundTrip(t *testing.T) {
	t.Parallel()

	// Write samples to WAV
	originalSamples := []int16{0, 100, -100, 32767, -32768, 12345, -6789}
	buf := new(bytes.Buffer)

	err := WriteWAV16(buf, 44100, originalSamples)
	if err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	// Decode and read back
	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}

	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	// Read samples as float32
	dst := make([]float32, len(originalSamples))
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != len(originalSamples) {
		t.Errorf("ReadSamples() n = %d, want %d", n, len(originalSamples))
	}

	for i, original := range originalSamples {
		if want := float32(original) / 32768.0; dst[i] != want {
			t.Errorf("sample[%d] = %v, want %v (original=%d)", i, dst[i], want, original)
		}
	}
}

func TestWriteWAV16_ByteOrder(t *testing.T) {
	t.Parallel()

	// Test that multi-byte values are written in little-endian
	samples := []int16{0x1234}
	buf := new(bytes.Buffer)

	err := WriteWAV16(buf, 8000, samples)
	if err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	// Sample should be at byte 44, little-endian: 0x34, 0x12
	if data[44] != 0x34 || data[45] != 0x12 {
		t.Errorf("sample bytes = [%02x %02x], want [34 12]", data[44], data[45])
	}
}

func TestWriteWAV16_SizeFields(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 3, 1000, 8191, 8192, 8193, 44100} {
		samples := make([]int16, n)
		buf := new(bytes.Buffer)

		if err := WriteWAV16(buf, 44100, samples); err != nil {
			t.Fatalf("WriteWAV16(%d samples) error = %v", n, err)
		}

		data := buf.Bytes()
		if len(data) != 44+2*n {
			t.Errorf("%d samples: file size = %d, want %d", n, len(data), 44+2*n)
		}
		if got := binary.LittleEndian.Uint32(data[40:44]); got != uint32(2*n) {
			t.Errorf("%d samples: data size = %d, want %d", n, got, 2*n)
		}
		if got := binary.LittleEndian.Uint32(data[4:8]); got != uint32(36+2*n) {
			t.Errorf("%d samples: RIFF size = %d, want %d", n, got, 36+2*n)
		}
	}
}

// shortWriter accepts at most limit bytes per call and never reports an error.
type shortWriter struct {
	limit int
}

func (w shortWriter) Write(p []byte) (int, error) {
	return min(len(p), w.limit), nil
}

// failingWriter fails once more than budget bytes have been written.
type failingWriter struct {
	budget int
}

var errDiskFull = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.budget {
		return 0, errDiskFull
	}
	w.budget -= len(p)
	return len(p), nil
}

func TestWriteWAV16_ShortWrite(t *testing.T) {
	t.Parallel()

	err := WriteWAV16(shortWriter{limit: 10}, 44100, []int16{1, 2, 3})
	if !errors.Is(err, ErrShortWrite) {
		t.Fatalf("WriteWAV16() error = %v, want ErrShortWrite", err)
	}
	if !errors.Is(err, ErrEncode) {
		t.Errorf("WriteWAV16() error = %v, want it to wrap ErrEncode", err)
	}
}

func TestWriteWAV16_WriterError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		budget int
	}{
		{"header", 0},
		{"samples", 44},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := WriteWAV16(&failingWriter{budget: tt.budget}, 44100, []int16{1, 2, 3})
			if !errors.Is(err, ErrEncode) || !errors.Is(err, errDiskFull) {
				t.Errorf("WriteWAV16() error = %v, want ErrEncode wrapping the writer error", err)
			}
		})
	}
}

// BenchmarkWriteWAV16 benchmarks writing WAV files
func BenchmarkWriteWAV16(b *testing.B) {
	samples := make([]int16, 44100) // 1 second at 44.1kHz
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		buf := new(bytes.Buffer)
		_ = WriteWAV16(buf, 44100, samples)
	}
}

// BenchmarkWriteWAV16_RoundTrip benchmarks write+decode
func BenchmarkWriteWAV16_RoundTrip(b *testing.B) {
	samples := make([]int16, 8000) // 1 second at 8kHz
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		buf := new(bytes.Buffer)
		_ = WriteWAV16(buf, 8000, samples)

		decoder := Decoder{}
		_, _ = decoder.Decode(bytes.NewReader(buf.Bytes()))
	}
}
