// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"strings"

	"github.com/ik5/aup3wav/project"
)

// sampleSize is the byte width of one stored float32 sample.
const sampleSize = 4

// Policy decides what happens to a block that is malformed: a row that could
// not be read, or a payload whose length is not a multiple of sampleSize.
type Policy int

const (
	// SkipMalformed drops unreadable rows and truncates ragged payloads to
	// whole samples, counting both in Stats.
	SkipMalformed Policy = iota
	// FailOnMalformed stops the stream with project.ErrMalformedPayload.
	FailOnMalformed
)

// ParsePolicy maps "skip" and "fail" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skip", "":
		return SkipMalformed, nil
	case "fail":
		return FailOnMalformed, nil
	default:
		return SkipMalformed, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

func (p Policy) String() string {
	switch p {
	case SkipMalformed:
		return "skip"
	case FailOnMalformed:
		return "fail"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Stats counts what happened to the blocks of one stream.
type Stats struct {
	Blocks        int // rows pulled, readable or not
	Decoded       int // blob blocks that were decoded
	SkippedNull   int
	SkippedScalar int
	Truncated     int // blobs with trailing bytes dropped
	Unreadable    int // rows skipped because they could not be read
	Samples       int
}

// Malformed is the number of blocks that lost data.
func (s Stats) Malformed() int { return s.Truncated + s.Unreadable }

// BlockSource is a mono Source that decodes project blocks as they are read.
// Samples keep block order and, within a block, stored order.
type BlockSource struct {
	next   func() (project.Block, error, bool)
	stop   func()
	policy Policy

	pending []byte // undecoded whole samples of the current block
	stats   Stats
	err     error
	done    bool
	closed  bool
}

var _ Source = (*BlockSource)(nil)

// NewBlockSource pulls blocks lazily from blocks. Close must be called to
// release the underlying sequence.
func NewBlockSource(blocks iter.Seq2[project.Block, error], policy Policy) *BlockSource {
	next, stop := iter.Pull2(blocks)
	return &BlockSource{
		next:   next,
		stop:   stop,
		policy: policy,
	}
}

func (s *BlockSource) SampleRate() int { return ProjectSampleRate }
func (s *BlockSource) Channels() int   { return 1 }
func (s *BlockSource) BufSize() int    { return defaultBufSize }

// Stats returns the counters accumulated so far.
func (s *BlockSource) Stats() Stats { return s.stats }

func (s *BlockSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.done = true
	s.stop()
	return nil
}

func (s *BlockSource) ReadSamples(dst []float32) (int, error) {
	if s.closed {
		return 0, ErrSourceClosed
	}
	if s.err != nil {
		return 0, s.err
	}

	n := 0
	for n < len(dst) {
		if len(s.pending) == 0 {
			if s.done {
				break
			}
			if err := s.advance(); err != nil {
				s.err = err
				return n, err
			}
			continue
		}

		k := min(len(dst)-n, len(s.pending)/sampleSize)
		for i := range k {
			bits := binary.LittleEndian.Uint32(s.pending[i*sampleSize:])
			dst[n+i] = math.Float32frombits(bits)
		}
		s.pending = s.pending[k*sampleSize:]
		s.stats.Samples += k
		n += k
	}

	if n == 0 && s.done {
		return 0, io.EOF
	}
	return n, nil
}

// advance loads the next block with samples into pending, or marks the
// source done when the sequence is exhausted.
func (s *BlockSource) advance() error {
	b, err, ok := s.next()
	if !ok {
		s.done = true
		return nil
	}
	s.stats.Blocks++

	if err != nil {
		if s.policy == SkipMalformed && errors.Is(err, project.ErrMalformedPayload) {
			s.stats.Unreadable++
			return nil
		}
		return err
	}

	switch b.Kind {
	case project.PayloadNull:
		s.stats.SkippedNull++
		return nil
	case project.PayloadScalar:
		s.stats.SkippedScalar++
		return nil
	}

	rem := len(b.Payload) % sampleSize
	if rem != 0 {
		if s.policy == FailOnMalformed {
			return fmt.Errorf("%w: block %d is %d bytes, not a multiple of %d",
				project.ErrMalformedPayload, b.ID, len(b.Payload), sampleSize)
		}
		s.stats.Truncated++
	}

	s.stats.Decoded++
	s.pending = b.Payload[:len(b.Payload)-rem]
	return nil
}
