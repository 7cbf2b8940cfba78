// Package checkout turns the cart into an order request and submits it.
package checkout

import (
	"context"
	"sync"

	"bakeryctl/cart"
	"bakeryctl/domain"
)

// OrderCreator is the one backend operation checkout needs.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.Order, error)
}

// State is the submission lifecycle: Idle -> Validating -> Submitting ->
// Succeeded or Failed, returning to Idle once the terminal state has been
// observed.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Submitter validates customer input and the cart, submits the order once
// (no retry) and clears the cart on success. A busy flag rejects overlapping
// submissions; there is no stronger in-flight guard.
type Submitter struct {
	api  OrderCreator
	cart *cart.Cart

	mu    sync.Mutex
	state State
	busy  bool
}

// NewSubmitter wires a submitter to the backend client and the cart it owns
// during submission.
func NewSubmitter(api OrderCreator, c *cart.Cart) *Submitter {
	return &Submitter{api: api, cart: c, state: StateIdle}
}

// State reports the current state. Reading a terminal state resets the
// machine to Idle, so the caller observes Succeeded or Failed exactly once.
func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	if st == StateSucceeded || st == StateFailed {
		s.state = StateIdle
	}
	return st
}

func (s *Submitter) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Submit runs one full submission. Validation failures return the typed
// reason before any network call; backend failures leave the cart untouched
// so the user can retry without re-entering anything.
func (s *Submitter) Submit(ctx context.Context, info domain.CustomerInfo) (domain.Order, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return domain.Order{}, domain.NewSubmitInProgressError()
	}
	s.busy = true
	s.state = StateValidating
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	if err := info.Validate(); err != nil {
		s.setState(StateIdle)
		return domain.Order{}, err
	}
	lines := s.cart.Lines()
	if len(lines) == 0 {
		s.setState(StateIdle)
		return domain.Order{}, domain.NewEmptyCartError()
	}

	items := make([]domain.OrderRequestItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderRequestItem{BreadID: l.BreadID, Quantity: l.Quantity})
	}
	req := domain.OrderRequest{
		CustomerName:    info.Name,
		CustomerPhone:   info.Phone,
		DeliveryAddress: info.Address,
		Items:           items,
	}

	s.setState(StateSubmitting)
	order, err := s.api.CreateOrder(ctx, req)
	if err != nil {
		s.setState(StateFailed)
		return domain.Order{}, err
	}

	s.cart.Clear()
	s.setState(StateSucceeded)
	return order, nil
}
