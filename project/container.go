// SPDX-License-Identifier: EPL-2.0

package project

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// BlockTable is the relation holding the audio sample blocks.
const BlockTable = "sampleblocks"

// Container is a read-only handle on a project file.
type Container struct {
	db   *sql.DB
	path string
}

// Open opens path read-only and verifies it is a readable SQLite database.
// Every failure wraps ErrContainerOpen.
func Open(path string) (*Container, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContainerOpen, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrContainerOpen, path)
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContainerOpen, err)
	}
	// One file, one reader.
	db.SetMaxOpenConns(1)

	c := &Container{db: db, path: path}

	// Ping alone succeeds on files that are not databases; reading the schema
	// forces SQLite to validate the header.
	if _, err := c.Tables(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", ErrContainerOpen, err)
	}

	return c, nil
}

func dsn(path string) string {
	// '?' and '#' would be taken as the start of the URI query or fragment.
	escaped := strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23").Replace(path)
	return fmt.Sprintf("file:%s?mode=ro", escaped)
}

// Path returns the file the container was opened from.
func (c *Container) Path() string { return c.path }

// Close releases the database handle.
func (c *Container) Close() error {
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close %s: %w", c.path, err)
	}
	return nil
}

// Tables lists the names of the relations stored in the container.
func (c *Container) Tables(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table'`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// HasBlockStore reports whether the block table exists. When it does not, the
// file has no audio and Blocks must not be called.
func (c *Container) HasBlockStore(ctx context.Context) (bool, error) {
	var n int
	err := c.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, BlockTable,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("look up %s: %w", BlockTable, err)
	}
	return n > 0, nil
}

// Columns lists the column names of table in declaration order.
func (c *Container) Columns(ctx context.Context, table string) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", table, err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan column name: %w", err)
		}
		cols = append(cols, name)
	}
	return cols, rows.Err()
}

// BlockCount returns the number of rows in the block table.
func (c *Container) BlockCount(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+BlockTable).Scan(&n); err != nil {
		return 0, fmt.Errorf("count blocks: %w", err)
	}
	return n, nil
}
