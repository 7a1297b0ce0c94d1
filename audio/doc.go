// SPDX-License-Identifier: EPL-2.0

// Package audio turns decoded sample blocks into a continuous sample stream.
//
// # Source Interface
//
// Every producer of samples implements Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples fills dst and returns io.EOF once the stream is exhausted. A
// call may return n > 0 together with io.EOF.
//
// # Block Streams
//
// BlockSource is a Source over the rows of a project's block table. It pulls
// blocks lazily, skips blocks without a sample payload (NULL or a bare
// number) and decodes the rest as little-endian float32:
//
//	c, _ := project.Open("take.aup3")
//	defer c.Close()
//
//	src := audio.NewBlockSource(c.Blocks(ctx), audio.SkipMalformed)
//	defer src.Close()
//
//	buf := make([]float32, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// Block streams are always mono and always reported at ProjectSampleRate.
// Block ids are trusted as playback order; gaps in the id sequence are not
// detected.
//
// # Malformed Blocks
//
// A Policy decides what happens to a row that cannot be read or whose payload
// length is not a whole number of samples. SkipMalformed drops unreadable rows
// and truncates ragged payloads; FailOnMalformed ends the stream with an error
// wrapping project.ErrMalformedPayload. Stats counts what was skipped.
//
// # Whole-Stream Helpers
//
// Reconstruct collects a block stream into a single slice and reports
// project.ErrNoAudioData when nothing was decoded. Quantize converts the result
// to 16-bit PCM.
package audio
