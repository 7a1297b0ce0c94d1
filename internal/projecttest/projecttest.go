// SPDX-License-Identifier: EPL-2.0

// Package projecttest writes block-store project files for tests.
package projecttest

import (
	"database/sql"
	"encoding/binary"
	"math"
	"testing"

	_ "modernc.org/sqlite"
)

// Schema of the block table as written by the editor.
const blockTableSchema = `CREATE TABLE sampleblocks (
	blockid      INTEGER PRIMARY KEY AUTOINCREMENT,
	sampleformat INTEGER,
	summin       REAL,
	summax       REAL,
	sumrms       REAL,
	summary256   BLOB,
	summary64k   BLOB,
	samples      BLOB
)`

const projectTableSchema = `CREATE TABLE project (id INTEGER PRIMARY KEY, dict BLOB, doc BLOB)`

// floatSampleFormat is the editor's tag for 32-bit float blocks.
const floatSampleFormat = 0x4000F

// Block describes one row to insert. Samples may be nil, a []byte, a string,
// an int64 or a float64; it is stored as-is.
type Block struct {
	ID      int64
	Samples any
}

// FloatBlock returns a block whose payload encodes samples as little-endian float32.
func FloatBlock(id int64, samples ...float32) Block {
	return Block{ID: id, Samples: Floats(samples...)}
}

// Floats encodes samples as little-endian float32 bytes.
func Floats(samples ...float32) []byte {
	buf := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(s))
	}
	return buf
}

// WriteProject creates a project file at path with a block table holding blocks.
func WriteProject(t testing.TB, path string, blocks ...Block) {
	t.Helper()

	db := create(t, path, projectTableSchema, blockTableSchema)
	defer db.Close()

	for _, b := range blocks {
		lo, hi, rms := summarize(b.Samples)
		_, err := db.Exec(
			`INSERT INTO sampleblocks (blockid, sampleformat, summin, summax, sumrms, samples) VALUES (?, ?, ?, ?, ?, ?)`,
			b.ID, floatSampleFormat, lo, hi, rms, b.Samples,
		)
		if err != nil {
			t.Fatalf("insert block %d: %v", b.ID, err)
		}
	}
}

// WriteProjectWithoutBlocks creates a valid project file that has no block table.
func WriteProjectWithoutBlocks(t testing.TB, path string) {
	t.Helper()

	db := create(t, path, projectTableSchema)
	db.Close()
}

func create(t testing.TB, path string, schema ...string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			t.Fatalf("create schema in %s: %v", path, err)
		}
	}
	return db
}

func summarize(samples any) (lo, hi, rms float64) {
	payload, ok := samples.([]byte)
	if !ok || len(payload) < 4 {
		return 0, 0, 0
	}

	n := len(payload) / 4
	lo, hi = math.Inf(1), math.Inf(-1)
	var sum float64
	for i := range n {
		v := float64(math.Float32frombits(binary.LittleEndian.Uint32(payload[4*i:])))
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		sum += v * v
	}
	return lo, hi, math.Sqrt(sum / float64(n))
}
