// Package store persists client state (session cookies, cart lines and the
// customer draft) between invocations.
package store

import (
	"context"
	"sync"

	"bakeryctl/domain"
)

// MemoryStore is a thread-safe in-memory domain.StateStore. State lives only
// for the lifetime of the process; used by tests and `--state memory`.
type MemoryStore struct {
	mu    sync.RWMutex
	state domain.State
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// compile-time assertion that MemoryStore implements domain.StateStore
var _ domain.StateStore = (*MemoryStore)(nil)

func (s *MemoryStore) Load(ctx context.Context) (domain.State, error) {
	if err := ctx.Err(); err != nil {
		return domain.State{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyState(s.state), nil
}

func (s *MemoryStore) Save(ctx context.Context, st domain.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = copyState(st)
	return nil
}

func (s *MemoryStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.State{}
	return nil
}

func copyState(st domain.State) domain.State {
	out := domain.State{Customer: st.Customer}
	if len(st.Cookies) > 0 {
		out.Cookies = make([]domain.SessionCookie, len(st.Cookies))
		copy(out.Cookies, st.Cookies)
	}
	if len(st.Cart) > 0 {
		out.Cart = make([]domain.CartLine, len(st.Cart))
		copy(out.Cart, st.Cart)
	}
	return out
}
