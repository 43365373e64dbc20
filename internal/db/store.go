// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/uptrace/bun"
)

// Entry is one recorded generation.
type Entry struct {
	bun.BaseModel `bun:"table:history,alias:h"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	CreatedAt    time.Time `bun:"created_at,notnull" json:"created_at"`
	Length       int       `bun:"length,notnull" json:"length"`
	Count        int       `bun:"count,notnull" json:"count"`
	TotalMinimum int       `bun:"total_minimum,notnull" json:"total_minimum"`
	Categories   []string  `bun:"categories,type:text,notnull" json:"categories"`
}

// Store is a bun-backed history store.
type Store struct {
	bun    *bun.DB
	dbType string
}

// Type returns the database type the store was opened with.
func (s *Store) Type() string { return s.dbType }

// Close releases the underlying connection pool.
func (s *Store) Close() error { return s.bun.Close() }

// Record inserts e. A zero CreatedAt is set to the current time and a zero
// Count to one.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.CreatedAt = e.CreatedAt.UTC()
	if e.Count == 0 {
		e.Count = 1
	}
	if e.Categories == nil {
		e.Categories = []string{}
	}
	e.ID = 0
	if _, err := s.bun.NewInsert().Model(&e).Exec(ctx); err != nil {
		return fmt.Errorf("record history: %w", MapDBError(err))
	}
	return nil
}

// List returns the newest entries first. limit <= 0 returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	var entries []Entry
	q := s.bun.NewSelect().Model(&entries).OrderExpr("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

// Count returns the number of recorded entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	n, err := s.bun.NewSelect().Model((*Entry)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return n, nil
}

// Prune deletes entries created before cutoff and returns how many were
// removed.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.bun.NewDelete().Model((*Entry)(nil)).Where("created_at < ?", cutoff.UTC()).Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune history: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Export writes every entry, oldest first, as zstd-compressed JSON lines.
func (s *Store) Export(ctx context.Context, w io.Writer) (int, error) {
	var entries []Entry
	if err := s.bun.NewSelect().Model(&entries).OrderExpr("created_at ASC, id ASC").Scan(ctx); err != nil {
		return 0, fmt.Errorf("export history: %w", err)
	}
	return len(entries), WriteEntries(w, entries)
}

// WriteEntries encodes entries as zstd-compressed JSON lines.
func WriteEntries(w io.Writer, entries []Entry) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}
	enc := json.NewEncoder(zw)
	for i := range entries {
		if err := enc.Encode(&entries[i]); err != nil {
			_ = zw.Close()
			return fmt.Errorf("encode entry %d: %w", entries[i].ID, err)
		}
	}
	return zw.Close()
}

// ReadEntries decodes a stream written by WriteEntries.
func ReadEntries(r io.Reader) ([]Entry, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer zr.Close()
	dec := json.NewDecoder(zr)
	var out []Entry
	for {
		var e Entry
		if err := dec.Decode(&e); err == io.EOF {
			return out, nil
		} else if err != nil {
			return nil, fmt.Errorf("decode entry: %w", err)
		}
		out = append(out, e)
	}
}
