package api

import (
	"context"
	"fmt"
	"net/http"

	"bakeryctl/domain"
)

// CreateOrder submits an order request and returns the created order.
// A single call, no retry.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.Order, error) {
	var order domain.Order
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders", req, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// ListOrders fetches the order history.
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.doJSON(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, id int64) (domain.Order, error) {
	var order domain.Order
	path := fmt.Sprintf("/api/orders/%d", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// UpdateOrderStatus sets an order's status. The status travels as a bare
// JSON string, which is what the backend expects.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, domain.NewUnexpectedError("update order status",
			fmt.Errorf("unknown status %q", status))
	}
	var order domain.Order
	path := fmt.Sprintf("/api/orders/%d/status", id)
	if err := c.doJSON(ctx, http.MethodPut, path, string(status), &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}
