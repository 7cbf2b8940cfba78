package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"bakeryctl/domain"
)

func sampleState() domain.State {
	return domain.State{
		Cookies: []domain.SessionCookie{{Name: "JSESSIONID", Value: "abc", Path: "/"}},
		Cart: []domain.CartLine{
			{BreadID: 1, Name: "Rye", Price: 50, Quantity: 2},
			{BreadID: 2, Name: "White", Price: 40, Quantity: 1},
		},
		Customer: domain.CustomerInfo{Name: "Anna", Phone: "+7 900", Address: "Baker st 1"},
	}
}

func TestFileStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	s := NewFileStore(path)
	ctx := context.Background()

	if err := s.Save(ctx, sampleState()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// a fresh store against the same path sees the saved state
	loaded, err := NewFileStore(path).Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Cart) != 2 || loaded.Cart[0].Quantity != 2 {
		t.Fatalf("unexpected cart after roundtrip: %+v", loaded.Cart)
	}
	if len(loaded.Cookies) != 1 || loaded.Cookies[0].Value != "abc" {
		t.Fatalf("unexpected cookies after roundtrip: %+v", loaded.Cookies)
	}
	if loaded.Customer.Name != "Anna" {
		t.Fatalf("unexpected customer after roundtrip: %+v", loaded.Customer)
	}
}

func TestFileStore_MissingFileLoadsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	st, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load of missing file should not error: %v", err)
	}
	if len(st.Cart) != 0 || len(st.Cookies) != 0 {
		t.Fatalf("expected empty state, got %+v", st)
	}
}

func TestFileStore_CorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, err := NewFileStore(path).Load(context.Background()); err == nil {
		t.Fatal("expected error loading corrupt state file")
	}
}

func TestFileStore_ResetWipesState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := NewFileStore(path)
	ctx := context.Background()

	if err := s.Save(ctx, sampleState()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	st, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(st.Cart) != 0 || len(st.Cookies) != 0 || st.Customer != (domain.CustomerInfo{}) {
		t.Fatalf("expected wiped state, got %+v", st)
	}
}

func TestFileStore_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	if err := NewFileStore(path).Save(context.Background(), sampleState()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file should be renamed away, stat err=%v", err)
	}
}

func TestFileStore_ContextCancellation(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Load(ctx); err == nil {
		t.Fatal("expected context error on load")
	}
	if err := s.Save(ctx, sampleState()); err == nil {
		t.Fatal("expected context error on save")
	}
}
