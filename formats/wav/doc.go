// SPDX-License-Identifier: EPL-2.0

// Package wav writes and reads canonical PCM 16-bit WAV files.
//
// Output files always carry a 44-byte header made of a RIFF descriptor, a
// 16-byte fmt chunk and a single data chunk:
//
//	RIFF <36+2N> WAVE
//	fmt  16 PCM(1) channels(1) rate byteRate blockAlign(2) bits(16)
//	data <2N> <N little-endian int16 samples>
//
// # Writing
//
// WriteWAV16 streams a file to any io.Writer. WriteFile writes to a path by way
// of a temporary sibling file that is renamed into place once flushed and
// synced, so a failed or interrupted write never leaves a truncated file under
// the destination name:
//
//	err := wav.WriteFile("take.wav", 44100, pcm)
//
// Every write failure wraps ErrEncode. ErrShortWrite, ErrDataTooLarge and
// ErrVerify narrow it down.
//
// # Reading
//
// Decoder wraps github.com/go-audio/wav and yields an audio.Source with
// samples scaled to [-1, 1). Probe and Verify read a written file back and
// report its layout:
//
//	info, err := wav.Verify("take.wav", 44100, len(pcm))
//
// Only PCM 16-bit input is accepted; anything else returns
// ErrOnlyPCM16bitSupported, and non-RIFF input returns ErrNotWavFile.
package wav
