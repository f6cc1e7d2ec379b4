package cache

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"
)

func openTestCache(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache", "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLite_RoundTrip(t *testing.T) {
	s := openTestCache(t)
	ctx := context.Background()

	data := json.RawMessage(`{"handle":"alice.test","year":2025}`)
	expires := time.Now().Add(time.Hour)
	if err := s.Put(ctx, "alice.test", 2025, data, expires); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	entry, err := s.Get(ctx, "alice.test", 2025)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if entry == nil {
		t.Fatal("Get() = nil, want the stored entry")
	}
	if entry.Handle != "alice.test" || entry.Year != 2025 {
		t.Errorf("entry key = %s/%d, want alice.test/2025", entry.Handle, entry.Year)
	}
	if string(entry.Data) != string(data) {
		t.Errorf("data = %s, want %s", entry.Data, data)
	}
	if entry.Expired(time.Now()) {
		t.Error("entry expired immediately")
	}
	if !entry.Expired(expires.Add(time.Second)) {
		t.Error("entry not expired past its deadline")
	}
}

func TestSQLite_MissIsNilNil(t *testing.T) {
	s := openTestCache(t)

	entry, err := s.Get(context.Background(), "nobody.test", 2025)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if entry != nil {
		t.Errorf("Get() = %+v, want nil on a miss", entry)
	}
}

func TestSQLite_PutUpserts(t *testing.T) {
	s := openTestCache(t)
	ctx := context.Background()

	if err := s.Put(ctx, "alice.test", 2025, json.RawMessage(`{"v":1}`), time.Now().Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, "alice.test", 2025, json.RawMessage(`{"v":2}`), time.Now().Add(2*time.Hour)); err != nil {
		t.Fatal(err)
	}

	entry, err := s.Get(ctx, "alice.test", 2025)
	if err != nil {
		t.Fatal(err)
	}
	if string(entry.Data) != `{"v":2}` {
		t.Errorf("data = %s, want the second write", entry.Data)
	}

	entries, err := s.Entries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("len(entries) = %d, want 1 after upsert", len(entries))
	}
}

func TestSQLite_EntriesOrdered(t *testing.T) {
	s := openTestCache(t)
	ctx := context.Background()
	expires := time.Now().Add(time.Hour)

	for _, e := range []struct {
		handle string
		year   int
	}{
		{"bob.test", 2024},
		{"alice.test", 2025},
		{"alice.test", 2024},
	} {
		if err := s.Put(ctx, e.handle, e.year, json.RawMessage(`{}`), expires); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := s.Entries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"alice.test/2024", "alice.test/2025", "bob.test/2024"}
	if len(entries) != len(want) {
		t.Fatalf("len(entries) = %d, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if got := key(e.Handle, e.Year); got != want[i] {
			t.Errorf("entries[%d] = %s, want %s", i, got, want[i])
		}
	}
}

func TestSQLite_DeleteAndClear(t *testing.T) {
	s := openTestCache(t)
	ctx := context.Background()
	expires := time.Now().Add(time.Hour)

	for year := 2023; year <= 2025; year++ {
		if err := s.Put(ctx, "alice.test", year, json.RawMessage(`{}`), expires); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.Delete(ctx, "alice.test", 2023); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if entry, _ := s.Get(ctx, "alice.test", 2023); entry != nil {
		t.Error("deleted entry still present")
	}

	n, err := s.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Clear() = %d, want 2", n)
	}
	if entries, _ := s.Entries(ctx); len(entries) != 0 {
		t.Errorf("len(entries) = %d after clear, want 0", len(entries))
	}
}

func TestSQLite_PutValidation(t *testing.T) {
	s := openTestCache(t)
	ctx := context.Background()

	if err := s.Put(ctx, "", 2025, json.RawMessage(`{}`), time.Now()); err == nil {
		t.Error("Put() with empty handle = nil error")
	}
	if err := s.Put(ctx, "alice.test", 2025, nil, time.Now()); err == nil {
		t.Error("Put() with empty data = nil error")
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Error("Open() with blank path = nil error")
	}
}

func TestOpen_Reopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, "alice.test", 2025, json.RawMessage(`{}`), time.Now().Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer func() { _ = s2.Close() }()

	entry, err := s2.Get(ctx, "alice.test", 2025)
	if err != nil {
		t.Fatal(err)
	}
	if entry == nil {
		t.Error("entry lost across reopen")
	}
}
