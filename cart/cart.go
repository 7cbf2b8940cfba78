// Package cart holds the client-side shopping cart model.
package cart

import (
	"sync"

	"bakeryctl/domain"
)

// Observer is notified with the cart's line count after every mutation.
type Observer func(lineCount int)

// Cart is an ordered collection of cart lines with at most one line per
// bread id. Insertion order is first-add order.
type Cart struct {
	mu        sync.Mutex
	lines     []domain.CartLine
	index     map[int64]int
	observers []Observer
}

// New constructs an empty cart.
func New() *Cart {
	return &Cart{index: make(map[int64]int)}
}

// Subscribe registers an observer called after every add or clear.
func (c *Cart) Subscribe(fn Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Add puts quantity units of a bread into the cart. If a line for the bread
// already exists its quantity is incremented; otherwise a new line is
// appended with the supplied name and price. Quantities below one are
// rejected and leave the cart unchanged.
func (c *Cart) Add(breadID int64, name string, price float64, quantity int) error {
	if quantity < 1 {
		return domain.NewInvalidQuantityError(quantity)
	}

	c.mu.Lock()
	if i, ok := c.index[breadID]; ok {
		c.lines[i].Quantity += quantity
	} else {
		c.index[breadID] = len(c.lines)
		c.lines = append(c.lines, domain.CartLine{
			BreadID:  breadID,
			Name:     name,
			Price:    price,
			Quantity: quantity,
		})
	}
	n := len(c.lines)
	obs := c.snapshotObservers()
	c.mu.Unlock()

	c.notify(obs, n)
	return nil
}

// Clear removes all lines. Calling Clear on an empty cart is a no-op apart
// from observer notification.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.index = make(map[int64]int)
	obs := c.snapshotObservers()
	c.mu.Unlock()

	c.notify(obs, 0)
}

// Restore replaces the cart contents with previously persisted lines,
// applying the same merge invariant as Add.
func (c *Cart) Restore(lines []domain.CartLine) error {
	c.Clear()
	for _, l := range lines {
		if err := c.Add(l.BreadID, l.Name, l.Price, l.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Total returns the sum of quantity times price over all lines.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

func (c *Cart) snapshotObservers() []Observer {
	obs := make([]Observer, len(c.observers))
	copy(obs, c.observers)
	return obs
}

// notify runs outside the lock so observers may call back into the cart.
func (c *Cart) notify(obs []Observer, lineCount int) {
	for _, fn := range obs {
		fn(lineCount)
	}
}
