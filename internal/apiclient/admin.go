package apiclient

import (
	"context"
	"net/http"

	"estateadmin/console/internal/models"
)

type dataEnvelope[T any] struct {
	Data *T `json:"data"`
}

type LoginResult struct {
	Admin       models.Admin
	Credentials Credentials
}

// Login authenticates against the remote API and returns the admin record
// together with the session cookies the API set.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	req, err := jsonRequest("login", http.MethodPost, "/api/admin/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return LoginResult{}, err
	}

	var out dataEnvelope[models.Admin]
	cookies, err := c.do(ctx, req, &out)
	if err != nil {
		return LoginResult{}, err
	}
	if out.Data == nil {
		return LoginResult{}, &Error{StatusCode: http.StatusUnauthorized, Message: "login returned no admin"}
	}

	return LoginResult{Admin: *out.Data, Credentials: Credentials(cookies)}, nil
}

// Me returns the admin bound to the credentials in ctx.
func (c *Client) Me(ctx context.Context) (models.Admin, error) {
	req, _ := jsonRequest("me", http.MethodGet, "/api/admin/me", nil)

	var out dataEnvelope[models.Admin]
	if _, err := c.do(ctx, req, &out); err != nil {
		return models.Admin{}, err
	}
	if out.Data == nil {
		return models.Admin{}, &Error{StatusCode: http.StatusUnauthorized, Message: "no active session"}
	}
	return *out.Data, nil
}
