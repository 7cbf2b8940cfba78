package store

import (
	"context"
	"sync"
	"testing"

	"bakeryctl/domain"
)

func TestMemoryStore_SaveLoadReset(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	st, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(st.Cart) != 0 {
		t.Fatalf("expected empty initial state")
	}

	if err := s.Save(ctx, sampleState()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	st, _ = s.Load(ctx)
	if len(st.Cart) != 2 || st.Customer.Name != "Anna" {
		t.Fatalf("unexpected state after save: %+v", st)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	st, _ = s.Load(ctx)
	if len(st.Cart) != 0 || len(st.Cookies) != 0 {
		t.Fatalf("expected empty state after reset: %+v", st)
	}
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	if err := s.Save(ctx, sampleState()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	st, _ := s.Load(ctx)
	st.Cart[0].Quantity = 999

	again, _ := s.Load(ctx)
	if again.Cart[0].Quantity != 2 {
		t.Fatalf("mutating a loaded state must not affect the store")
	}
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	var wg sync.WaitGroup

	n := 50
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = s.Save(ctx, sampleState())
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Load(ctx)
		}()
	}
	wg.Wait()
}

func TestMemoryStore_ContextCancellation(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Load(ctx); err == nil {
		t.Fatal("expected context error on load")
	}
	if err := s.Save(ctx, domain.State{}); err == nil {
		t.Fatal("expected context error on save")
	}
	if err := s.Reset(ctx); err == nil {
		t.Fatal("expected context error on reset")
	}
}
