// Package domain defines core business types and interfaces.
package domain

import "context"

// Bread is a catalog product as served by the backend. The catalog is
// backend-owned; the client never mutates it.
type Bread struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

// User is the identity returned by the current-user endpoint.
type User struct {
	Username      string `json:"username"`
	Authenticated bool   `json:"authenticated"`
}

// CartLine is one product in the cart. Name and Price are denormalized from
// the catalog at add time; the invariant of at most one line per bread id is
// enforced by the cart model.
type CartLine struct {
	BreadID  int64   `json:"breadId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns quantity times unit price for this line.
func (l CartLine) Subtotal() float64 {
	return float64(l.Quantity) * l.Price
}

// CustomerInfo holds the contact fields required to place an order.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Validate checks that every required field is non-empty.
func (c CustomerInfo) Validate() error {
	if c.Name == "" {
		return NewMissingFieldError("name")
	}
	if c.Phone == "" {
		return NewMissingFieldError("phone")
	}
	if c.Address == "" {
		return NewMissingFieldError("address")
	}
	return nil
}

// SessionCookie is the persisted form of a backend session cookie.
type SessionCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Path  string `json:"path,omitempty"`
}

// State is the client-held state that survives between invocations: the
// session cookies, the cart lines and the customer draft.
type State struct {
	Cookies  []SessionCookie `json:"cookies,omitempty"`
	Cart     []CartLine      `json:"cart,omitempty"`
	Customer CustomerInfo    `json:"customer"`
}

// StateStore persists client state between invocations.
type StateStore interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, st State) error
	Reset(ctx context.Context) error
}
