package catalog

import (
	"context"
	"net/http"
)

// Me returns the account the current token belongs to.
func (c *Client) Me(ctx context.Context) (*Account, error) {
	var out Account
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAccount creates an operator account. An empty role means viewer.
func (c *Client) CreateAccount(ctx context.Context, username, password, role string) (*Account, error) {
	var out Account
	body := map[string]string{"username": username, "password": password}
	if role != "" {
		body["role"] = role
	}
	if err := c.doJSON(ctx, http.MethodPost, "/accounts", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
