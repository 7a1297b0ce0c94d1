// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"iter"

	"github.com/ik5/aup3wav/internal/projecttest"
	"github.com/ik5/aup3wav/project"
)

// item is one element yielded by a test block sequence.
type item struct {
	block project.Block
	err   error
}

func blobItem(id int64, samples ...float32) item {
	return item{block: project.Block{ID: id, Kind: project.PayloadBlob, Payload: projecttest.Floats(samples...)}}
}

func rawItem(id int64, payload []byte) item {
	return item{block: project.Block{ID: id, Kind: project.PayloadBlob, Payload: payload}}
}

func nullItem(id int64) item {
	return item{block: project.Block{ID: id, Kind: project.PayloadNull}}
}

func scalarItem(id int64) item {
	return item{block: project.Block{ID: id, Kind: project.PayloadScalar}}
}

func errItem(err error) item {
	return item{err: err}
}

// seqOf builds an in-memory block sequence. pulled counts how many items were
// handed out, so tests can assert laziness.
func seqOf(pulled *int, items ...item) iter.Seq2[project.Block, error] {
	return func(yield func(project.Block, error) bool) {
		for _, it := range items {
			if pulled != nil {
				*pulled++
			}
			if !yield(it.block, it.err) {
				return
			}
		}
	}
}
