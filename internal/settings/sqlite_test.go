package settings

import (
	"context"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "settings.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_GetMissing(t *testing.T) {
	s := openTemp(t)
	v, err := s.Get(context.Background(), KeyAPIKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != "" {
		t.Errorf("expected empty value, got %q", v)
	}
}

func TestSQLite_SetOverwriteDelete(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	if err := s.Set(ctx, KeyAPIKey, "first"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, KeyAPIKey, "second"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, err := s.Get(ctx, KeyAPIKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != "second" {
		t.Errorf("got %q, want %q", v, "second")
	}

	if err := s.Delete(ctx, KeyAPIKey); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	v, _ = s.Get(ctx, KeyAPIKey)
	if v != "" {
		t.Errorf("expected empty after delete, got %q", v)
	}
}

func TestSQLite_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")
	ctx := context.Background()

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := s.Set(ctx, KeyAPIKey, "persisted"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	s.Close()

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	v, _ := s2.Get(ctx, KeyAPIKey)
	if v != "persisted" {
		t.Errorf("got %q after reopen", v)
	}
}

func TestOpen_DefaultsToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	st, err := Open(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()
	if _, ok := st.(*SQLite); !ok {
		t.Errorf("expected *SQLite, got %T", st)
	}
	if want := filepath.Join(home, ".go_tube", "settings.db"); DefaultPath() != want {
		t.Errorf("DefaultPath = %q, want %q", DefaultPath(), want)
	}
}
