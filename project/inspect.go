// SPDX-License-Identifier: EPL-2.0

package project

import (
	"context"
	"fmt"
	"slices"
)

// Inspection is a diagnostic snapshot of a project file's structure.
type Inspection struct {
	Path          string
	Tables        []string
	HasBlockStore bool
	Columns       []string
	BlockCount    int
	// FirstBlockID and FirstHasData describe the lowest-id block; both are zero
	// values when the block table is missing or empty.
	FirstBlockID int64
	FirstHasData bool
}

// Inspect opens path, collects an Inspection and closes the file again.
func Inspect(ctx context.Context, path string) (Inspection, error) {
	c, err := Open(path)
	if err != nil {
		return Inspection{Path: path}, err
	}
	defer c.Close()

	return c.Inspect(ctx)
}

// Inspect collects an Inspection from an open container.
func (c *Container) Inspect(ctx context.Context) (Inspection, error) {
	in := Inspection{Path: c.path}

	var err error
	if in.Tables, err = c.Tables(ctx); err != nil {
		return in, err
	}
	in.HasBlockStore = slices.Contains(in.Tables, BlockTable)
	if !in.HasBlockStore {
		return in, nil
	}

	if in.Columns, err = c.Columns(ctx, BlockTable); err != nil {
		return in, err
	}
	if in.BlockCount, err = c.BlockCount(ctx); err != nil {
		return in, err
	}

	if in.BlockCount == 0 {
		return in, nil
	}

	err = c.db.QueryRowContext(ctx,
		`SELECT blockid, samples IS NOT NULL FROM `+BlockTable+` ORDER BY blockid ASC LIMIT 1`,
	).Scan(&in.FirstBlockID, &in.FirstHasData)
	if err != nil {
		return in, fmt.Errorf("read first block: %w", err)
	}

	return in, nil
}
