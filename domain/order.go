package domain

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus is the backend's order lifecycle state.
type OrderStatus string

const (
	StatusNew        OrderStatus = "NEW"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// OrderDate wraps time.Time to accept both RFC 3339 and the backend's
// zone-less LocalDateTime encoding ("2006-01-02T15:04:05").
type OrderDate struct {
	time.Time
}

const localDateTime = "2006-01-02T15:04:05"

func (d OrderDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(localDateTime) + `"`), nil
}

func (d *OrderDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, localDateTime, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unsupported order date %q", s)
}

// OrderRequestItem is one line of an order request. Only the bread id and
// quantity are sent; prices are backend-authoritative.
type OrderRequestItem struct {
	BreadID  int64 `json:"breadId"`
	Quantity int   `json:"quantity"`
}

// OrderRequest is the payload for creating an order.
type OrderRequest struct {
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Items           []OrderRequestItem `json:"items"`
}

// OrderItem is one historical line item. Subtotal is backend-computed and
// trusted as-is.
type OrderItem struct {
	BreadName string  `json:"breadName"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
}

// Order is a backend-confirmed, persisted purchase record.
type Order struct {
	OrderID      int64       `json:"orderId"`
	CustomerName string      `json:"customerName"`
	OrderDate    OrderDate   `json:"orderDate"`
	Status       OrderStatus `json:"status"`
	TotalAmount  float64     `json:"totalAmount"`
	Items        []OrderItem `json:"items"`
}
