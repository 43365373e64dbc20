// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), "sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRejectsUnknownType(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "x")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestOpenPropagatesOpenError(t *testing.T) {
	orig := sqlOpenFunc
	sqlOpenFunc = func(driverName, dsn string) (*sql.DB, error) { return nil, errors.New("boom") }
	defer func() { sqlOpenFunc = orig }()

	if _, err := Open(context.Background(), "sqlite", ":memory:"); err == nil {
		t.Fatalf("expected open error")
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	for i := 0; i < 2; i++ {
		s, err := Open(context.Background(), "sqlite", path)
		if err != nil {
			t.Fatalf("Open #%d: %v", i+1, err)
		}
		var n int
		if err := s.bun.DB.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&n); err != nil {
			t.Fatalf("count migrations: %v", err)
		}
		if n != 1 {
			t.Fatalf("open #%d: %d migrations recorded, want 1", i+1, n)
		}
		_ = s.Close()
	}
}

func TestRecordAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := s.Record(ctx, Entry{
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
			Length:       10 + i,
			TotalMinimum: i,
			Categories:   []string{"ASCII Digits", "ASCII Space"},
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if n, err := s.Count(ctx); err != nil || n != 3 {
		t.Fatalf("Count = %d, %v", n, err)
	}

	got, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List(2) returned %d entries", len(got))
	}
	if got[0].Length != 12 || got[1].Length != 11 {
		t.Fatalf("List is not newest first: %+v", got)
	}
	if got[0].Count != 1 {
		t.Fatalf("Count defaulted to %d, want 1", got[0].Count)
	}
	if !reflect.DeepEqual(got[0].Categories, []string{"ASCII Digits", "ASCII Space"}) {
		t.Fatalf("categories = %v", got[0].Categories)
	}
	if !got[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("created_at = %v", got[0].CreatedAt)
	}

	all, err := s.List(ctx, 0)
	if err != nil || len(all) != 3 {
		t.Fatalf("List(0) = %d entries, %v", len(all), err)
	}
}

func TestRecordDefaultsTimestamp(t *testing.T) {
	s := openTestStore(t)
	before := time.Now().Add(-time.Second)
	if err := s.Record(context.Background(), Entry{Length: 8}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	got, err := s.List(context.Background(), 1)
	if err != nil || len(got) != 1 {
		t.Fatalf("List = %v, %v", got, err)
	}
	if got[0].CreatedAt.Before(before) {
		t.Fatalf("created_at %v was not set to now", got[0].CreatedAt)
	}
	if got[0].Categories == nil || len(got[0].Categories) != 0 {
		t.Fatalf("categories = %#v, want empty", got[0].Categories)
	}
}

func TestPrune(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, at := range []time.Time{old, old.Add(time.Hour), time.Now()} {
		if err := s.Record(ctx, Entry{CreatedAt: at, Length: 4}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	n, err := s.Prune(ctx, old.AddDate(1, 0, 0))
	if err != nil || n != 2 {
		t.Fatalf("Prune = %d, %v; want 2", n, err)
	}
	if left, _ := s.Count(ctx); left != 1 {
		t.Fatalf("%d entries left, want 1", left)
	}
}

func TestExportRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		if err := s.Record(ctx, Entry{CreatedAt: base.Add(time.Duration(i) * time.Hour), Length: 20 + i, Categories: []string{"X"}}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	var buf bytes.Buffer
	n, err := s.Export(ctx, &buf)
	if err != nil || n != 4 {
		t.Fatalf("Export = %d, %v", n, err)
	}
	// zstd frame magic
	if !bytes.HasPrefix(buf.Bytes(), []byte{0x28, 0xB5, 0x2F, 0xFD}) {
		t.Fatalf("export is not zstd framed: % x", buf.Bytes()[:4])
	}
	got, err := ReadEntries(&buf)
	if err != nil {
		t.Fatalf("ReadEntries: %v", err)
	}
	if len(got) != 4 || got[0].Length != 20 || got[3].Length != 23 {
		t.Fatalf("decoded %+v", got)
	}
}

func TestMapDBError(t *testing.T) {
	tests := []struct {
		in   error
		want error
	}{
		{nil, nil},
		{errors.New("UNIQUE constraint failed: history.id"), ErrDuplicate},
		{errors.New("ERROR: duplicate key value (SQLSTATE 23505)"), ErrDuplicate},
	}
	for _, tt := range tests {
		if got := MapDBError(tt.in); !errors.Is(got, tt.want) && got != tt.want {
			t.Fatalf("MapDBError(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	other := errors.New("connection refused")
	if MapDBError(other) != other {
		t.Fatalf("unrelated errors must pass through")
	}
}
