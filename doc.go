// SPDX-License-Identifier: EPL-2.0

// Package aup3wav extracts the audio stored in .aup3 project files and writes
// it out as mono 16-bit 44100 Hz WAV.
//
// A project file is a SQLite database. Its sampleblocks table holds the
// recorded audio as a sequence of rows, each carrying a blob of little-endian
// 32-bit float samples. Conversion runs every file through the same stages:
//
//	project.Open           read-only container, block table lookup
//	(*Container).Blocks    rows in ascending blockid order
//	audio.Reconstruct      concatenated float samples
//	audio.Quantize         clip to [-1, 1], scale to int16
//	wav.WriteFile          canonical 44-byte header, atomic write
//
// # Quick Start
//
//	res, err := aup3wav.ConvertFile(ctx, "take.aup3", "take.wav", aup3wav.Options{})
//	switch {
//	case errors.Is(err, project.ErrNoAudioData):
//	    // nothing to extract, no output written
//	case err != nil:
//	    // unreadable container or failed write
//	}
//	fmt.Println(res.Samples, res.Duration)
//
// Block timing is not modelled: blocks are assumed adjacent, and the output is
// always labelled 44100 Hz whatever rate the project was recorded at.
//
// Whole directory trees are handled by the batch package.
package aup3wav
