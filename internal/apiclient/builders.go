package apiclient

import (
	"context"
	"net/http"

	"estateadmin/console/internal/models"
)

func (c *Client) ListBuilders(ctx context.Context) ([]models.Builder, error) {
	req, _ := jsonRequest("list_builders", http.MethodGet, "/api/admin/builders", nil)

	var builders []models.Builder
	if _, err := c.do(ctx, req, &builders); err != nil {
		return nil, err
	}
	return builders, nil
}

type CreateBuilderInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ContactEmail string `json:"contactEmail"`
	PhoneNumber  string `json:"phoneNumber"`
}

func (c *Client) CreateBuilder(ctx context.Context, input CreateBuilderInput) error {
	req, err := jsonRequest("create_builder", http.MethodPost, "/api/admin/createBuilder", input)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, req, nil)
	return err
}
