package api

import (
	"context"
	"fmt"
	"net/http"

	"bakeryctl/domain"
)

// ListBreads fetches the full catalog.
func (c *Client) ListBreads(ctx context.Context) ([]domain.Bread, error) {
	var breads []domain.Bread
	if err := c.doJSON(ctx, http.MethodGet, "/api/breads", nil, &breads); err != nil {
		return nil, err
	}
	return breads, nil
}

// GetBread fetches one catalog entry by id.
func (c *Client) GetBread(ctx context.Context, id int64) (domain.Bread, error) {
	var bread domain.Bread
	path := fmt.Sprintf("/api/breads/%d", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &bread); err != nil {
		return domain.Bread{}, err
	}
	return bread, nil
}
