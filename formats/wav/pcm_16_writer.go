// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	headerSize    = 44
	maxDataSize   = 1<<32 - 1 - (headerSize - 8)
	formatPCM     = 1
	bitsPerSample = 16
)

// WriteWAV16 writes a canonical mono 16-bit PCM WAV at sampleRate.  samples must be int16 PCM.
// This uses an optimized implementation for minimal allocations.
//
// Every failure, including a writer that accepts fewer bytes than it was
// given, wraps ErrEncode.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if uint64(len(samples))*2 > maxDataSize {
		return ErrDataTooLarge
	}

	numChannels := uint16(1)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := uint16(numChannels) * uint16(bitsPerSample/8)
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	// Pre-allocate buffer for entire header (44 bytes)
	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if err := writeFull(w, header); err != nil {
		return err
	}

	if len(samples) == 0 {
		return nil
	}

	// Write 8K samples at a time
	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if err := writeFull(w, buf); err != nil {
			return err
		}
	}

	return nil
}

func writeFull(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if n < len(p) {
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrShortWrite, n, len(p))
	}
	return nil
}
