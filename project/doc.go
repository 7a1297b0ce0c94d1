// SPDX-License-Identifier: EPL-2.0

// Package project reads audio sample blocks out of SQLite-backed project files
// (the ".aup3" block store format).
//
// A project file is a SQLite database. The audio is persisted as many
// independently stored chunks in the sampleblocks table:
//
//	CREATE TABLE sampleblocks (
//	    blockid      INTEGER PRIMARY KEY AUTOINCREMENT,
//	    sampleformat INTEGER,
//	    summin       REAL,
//	    summax       REAL,
//	    sumrms       REAL,
//	    summary256   BLOB,
//	    summary64k   BLOB,
//	    samples      BLOB
//	);
//
// # Opening a Container
//
// Containers are always opened read-only:
//
//	c, err := project.Open("session.aup3")
//	if err != nil {
//	    // errors.Is(err, project.ErrContainerOpen)
//	}
//	defer c.Close()
//
//	ok, _ := c.HasBlockStore(ctx)
//
// # Reading Blocks
//
// Blocks returns a lazy sequence ordered by ascending block id. Every call runs
// a fresh query, so the sequence can be ranged over more than once:
//
//	for b, err := range c.Blocks(ctx) {
//	    if err != nil {
//	        // errors.Is(err, project.ErrMalformedPayload) for unreadable rows
//	        continue
//	    }
//	    if b.Kind == project.PayloadBlob {
//	        // b.Payload holds little-endian float32 samples
//	    }
//	}
//
// Null payloads and payloads stored as a bare number are placeholder blocks and
// carry no samples. The summary columns are exposed for diagnostics only.
//
// Block id order is assumed to be playback order. The format does not
// guarantee it and nothing here cross-checks it against another index.
//
// # Inspection
//
// Inspect opens a file and reports its tables, the block table columns, the
// block count and whether the first block has a payload.
package project
