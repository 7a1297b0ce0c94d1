// SPDX-License-Identifier: EPL-2.0

package aup3wav

import (
	"context"
	"fmt"
	"iter"
	"os"
	"time"

	"github.com/ik5/aup3wav/audio"
	"github.com/ik5/aup3wav/formats/wav"
	"github.com/ik5/aup3wav/project"
)

// BlockStore is the part of a project container conversion reads from.
// *project.Container implements it.
type BlockStore interface {
	HasBlockStore(ctx context.Context) (bool, error)
	Blocks(ctx context.Context) iter.Seq2[project.Block, error]
}

// Options controls a single conversion.
type Options struct {
	// Policy decides what happens to blocks with unusable payloads.
	Policy audio.Policy
	// Verify reads the output back after writing and checks its layout.
	Verify bool
}

// Result describes a written output file.
type Result struct {
	Samples  int
	Duration time.Duration
	Bytes    int64
	Stats    audio.Stats
}

// Extract reconstructs and quantizes the audio held by store.
//
// A store without a block table, or with no decodable samples, returns an
// error wrapping project.ErrNoAudioData.
func Extract(ctx context.Context, store BlockStore, policy audio.Policy) ([]int16, audio.Stats, error) {
	ok, err := store.HasBlockStore(ctx)
	if err != nil {
		return nil, audio.Stats{}, fmt.Errorf("%w", err)
	}
	if !ok {
		return nil, audio.Stats{}, fmt.Errorf("%w: no %s table", project.ErrNoAudioData, project.BlockTable)
	}

	samples, stats, err := audio.Reconstruct(store.Blocks(ctx), policy)
	if err != nil {
		return nil, stats, err
	}

	return audio.Quantize(samples), stats, nil
}

// Convert extracts the audio held by store and writes it to dst.
// Nothing is written when extraction fails, and an output that fails
// verification is removed.
func Convert(ctx context.Context, store BlockStore, dst string, opts Options) (Result, error) {
	pcm, stats, err := Extract(ctx, store, opts.Policy)
	if err != nil {
		return Result{Stats: stats}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{Stats: stats}, fmt.Errorf("%w", err)
	}

	if err := wav.WriteFile(dst, audio.ProjectSampleRate, pcm); err != nil {
		return Result{Stats: stats}, fmt.Errorf("write %s: %w", dst, err)
	}

	res := Result{
		Samples:  len(pcm),
		Duration: audio.Duration(len(pcm), audio.ProjectSampleRate),
		Bytes:    44 + 2*int64(len(pcm)),
		Stats:    stats,
	}

	if opts.Verify {
		if _, err := wav.Verify(dst, audio.ProjectSampleRate, len(pcm)); err != nil {
			_ = os.Remove(dst)
			return Result{Stats: stats}, fmt.Errorf("verify %s: %w", dst, err)
		}
	}

	return res, nil
}

// ConvertFile opens the project file at src and converts it to dst.
func ConvertFile(ctx context.Context, src, dst string, opts Options) (Result, error) {
	c, err := project.Open(src)
	if err != nil {
		return Result{}, err
	}
	defer c.Close()

	return Convert(ctx, c, dst, opts)
}
