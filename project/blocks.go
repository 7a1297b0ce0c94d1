// SPDX-License-Identifier: EPL-2.0

package project

import (
	"context"
	"fmt"
	"iter"
)

// PayloadKind tells how a block's samples column was stored.
type PayloadKind int

const (
	// PayloadNull is a block whose samples column is NULL.
	PayloadNull PayloadKind = iota
	// PayloadScalar is a placeholder block whose samples column holds a bare number.
	PayloadScalar
	// PayloadBlob is a block carrying raw sample bytes.
	PayloadBlob
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadNull:
		return "null"
	case PayloadScalar:
		return "scalar"
	case PayloadBlob:
		return "blob"
	default:
		return fmt.Sprintf("PayloadKind(%d)", int(k))
	}
}

// Block is one row of the block table.
type Block struct {
	ID   int64
	Kind PayloadKind
	// Payload holds the raw bytes when Kind is PayloadBlob, nil otherwise.
	Payload []byte

	// Precomputed waveform summaries. Not used for reconstruction.
	SumMin float64
	SumMax float64
	SumRMS float64
}

// HasPayload reports whether the block carries sample bytes.
func (b Block) HasPayload() bool { return b.Kind == PayloadBlob }

const blocksQuery = `SELECT blockid, samples, summin, summax, sumrms FROM ` + BlockTable + ` ORDER BY blockid ASC`

// Blocks returns the blocks ordered by ascending block id.
//
// The sequence is lazy and each range over it runs a new query. A row that
// cannot be scanned is yielded as an error wrapping ErrMalformedPayload and the
// sequence continues with the next row; query and iteration failures end it.
func (c *Container) Blocks(ctx context.Context) iter.Seq2[Block, error] {
	return func(yield func(Block, error) bool) {
		rows, err := c.db.QueryContext(ctx, blocksQuery)
		if err != nil {
			yield(Block{}, fmt.Errorf("query %s: %w", BlockTable, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var (
				id                     int64
				raw                    any
				sumMin, sumMax, sumRMS any
			)
			if err := rows.Scan(&id, &raw, &sumMin, &sumMax, &sumRMS); err != nil {
				if !yield(Block{}, fmt.Errorf("%w: scan block: %w", ErrMalformedPayload, err)) {
					return
				}
				continue
			}

			b := Block{
				ID:     id,
				SumMin: toFloat(sumMin),
				SumMax: toFloat(sumMax),
				SumRMS: toFloat(sumRMS),
			}
			b.Kind, b.Payload = classify(raw)

			if !yield(b, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(Block{}, fmt.Errorf("iterate %s: %w", BlockTable, err))
		}
	}
}

// classify maps the dynamically typed samples column onto a payload kind.
// Text is kept as raw bytes; only numbers and NULL are placeholders.
func classify(raw any) (PayloadKind, []byte) {
	switch v := raw.(type) {
	case nil:
		return PayloadNull, nil
	case []byte:
		return PayloadBlob, v
	case string:
		return PayloadBlob, []byte(v)
	default:
		// int64 and float64 in practice.
		return PayloadScalar, nil
	}
}

func toFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	default:
		return 0
	}
}
