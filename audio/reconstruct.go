// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"iter"

	"github.com/ik5/aup3wav/project"
	"github.com/ik5/aup3wav/utils"
)

// Reconstruct concatenates the samples of every block into one stream.
//
// No resampling and no gap detection is done: consecutive block ids are
// treated as adjacent in time. An empty block table, or blocks that yield no
// samples, return an error wrapping project.ErrNoAudioData.
func Reconstruct(blocks iter.Seq2[project.Block, error], policy Policy) ([]float32, Stats, error) {
	src := NewBlockSource(blocks, policy)
	defer src.Close()

	var samples []float32
	buf := make([]float32, src.BufSize())

	for {
		n, err := src.ReadSamples(buf)
		samples = append(samples, buf[:n]...)

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, src.Stats(), fmt.Errorf("%w", err)
		}
	}

	stats := src.Stats()
	switch {
	case stats.Blocks == 0:
		return nil, stats, fmt.Errorf("%w: %s table is empty", project.ErrNoAudioData, project.BlockTable)
	case len(samples) == 0:
		return nil, stats, fmt.Errorf("%w: no decodable samples in %d blocks", project.ErrNoAudioData, stats.Blocks)
	}

	return samples, stats, nil
}

// Quantize clips every sample to [-1, 1] and scales it to 16-bit PCM.
// The result always has the same length as samples.
func Quantize(samples []float32) []int16 {
	pcm := make([]int16, len(samples))
	for i, x := range samples {
		pcm[i] = utils.Float32ToInt16(x)
	}
	return pcm
}
