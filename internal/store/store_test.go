package store

import (
	"context"
	"path/filepath"
	"testing"
)

type kvStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	AddTally(ctx context.Context, day, dhikr string, n int) error
	Close() error
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "tasbih.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestStoreKeyValue(t *testing.T) {
	for name, st := range map[string]kvStore{
		"sqlite": openTestStore(t),
		"memory": NewMemory(),
	} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if _, ok, err := st.Get(ctx, "tasbeehData"); err != nil || ok {
				t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
			}
			if err := st.Set(ctx, "tasbeehData", `{"a":1}`); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := st.Set(ctx, "tasbeehData", `{"a":2}`); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			v, ok, err := st.Get(ctx, "tasbeehData")
			if err != nil || !ok {
				t.Fatalf("get: ok=%v err=%v", ok, err)
			}
			if v != `{"a":2}` {
				t.Fatalf("unexpected value %q", v)
			}
			if err := st.Delete(ctx, "tasbeehData"); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, ok, _ := st.Get(ctx, "tasbeehData"); ok {
				t.Fatalf("expected key deleted")
			}
		})
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasbih.db")
	ctx := context.Background()
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Set(ctx, "lastUsedDate", "Sat Oct 17 2026"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	st, err = Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer func() {
		_ = st.Close()
	}()
	v, ok, err := st.Get(ctx, "lastUsedDate")
	if err != nil || !ok || v != "Sat Oct 17 2026" {
		t.Fatalf("unexpected value %q ok=%v err=%v", v, ok, err)
	}
}

func TestListDailyTallies(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	mem := NewMemory()
	for _, s := range []kvStore{st, mem} {
		for _, add := range []struct {
			day, dhikr string
			n          int
		}{
			{"2026-10-15", "الحمد لله", 3},
			{"2026-10-16", "سبحان الله", 1},
			{"2026-10-16", "سبحان الله", 1},
			{"2026-10-16", "الله أكبر", 5},
			{"2026-10-17", "سبحان الله", 1},
		} {
			if err := s.AddTally(ctx, add.day, add.dhikr, add.n); err != nil {
				t.Fatalf("add tally: %v", err)
			}
		}
	}

	got, err := st.ListDailyTallies(ctx, "2026-10-16")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 tallies, got %d: %+v", len(got), got)
	}
	if got[0].Day != "2026-10-16" || got[0].Dhikr != "الله أكبر" || got[0].Count != 5 {
		t.Fatalf("unexpected first tally: %+v", got[0])
	}
	if got[1].Dhikr != "سبحان الله" || got[1].Count != 2 {
		t.Fatalf("expected accumulated tally, got %+v", got[1])
	}

	memGot, err := mem.ListDailyTallies(ctx, "2026-10-16")
	if err != nil {
		t.Fatalf("memory list: %v", err)
	}
	if len(memGot) != len(got) {
		t.Fatalf("memory store returned %d tallies, sqlite %d", len(memGot), len(got))
	}
	for i := range got {
		if memGot[i] != got[i] {
			t.Fatalf("row %d differs: memory %+v sqlite %+v", i, memGot[i], got[i])
		}
	}

	all, err := st.ListDailyTallies(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 tallies, got %d", len(all))
	}
}
