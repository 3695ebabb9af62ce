package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"estateadmin/console/internal/models"
)

func (c *Client) ListProperties(ctx context.Context) ([]models.Property, error) {
	req, _ := jsonRequest("list_properties", http.MethodGet, "/api/admin/allProperty", nil)

	var properties []models.Property
	if _, err := c.do(ctx, req, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// GetProperty returns ErrNotFound when the API answers 2xx without a record.
func (c *Client) GetProperty(ctx context.Context, id string) (models.Property, error) {
	req, _ := jsonRequest("get_property", http.MethodGet, propertyPath(id), nil)

	var property *models.Property
	if _, err := c.do(ctx, req, &property); err != nil {
		return models.Property{}, err
	}
	if property == nil || property.ID == "" {
		return models.Property{}, ErrNotFound
	}
	return *property, nil
}

func (c *Client) CreateProperty(ctx context.Context, input PropertyInput) error {
	req, err := multipartRequest("create_property", http.MethodPost, "/api/admin/property", input)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, req, nil)
	return err
}

// UpdateProperty sends the edited fields. Images in input are appended to the
// ones the record already has.
func (c *Client) UpdateProperty(ctx context.Context, id string, input PropertyInput) error {
	req, err := multipartRequest("update_property", http.MethodPut, propertyPath(id), input)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, req, nil)
	return err
}

func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	req, _ := jsonRequest("delete_property", http.MethodDelete, propertyPath(id), nil)
	_, err := c.do(ctx, req, nil)
	return err
}

func propertyPath(id string) string {
	return "/api/admin/property/" + url.PathEscape(id)
}
