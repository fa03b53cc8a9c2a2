package catalog

import (
	"context"
	"net/http"
	"net/url"
)

func categoryPath(code string) string {
	return "/categories/" + url.PathEscape(code)
}

// ListCategories returns every category.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory creates a category; the server assigns its code.
func (c *Client) CreateCategory(ctx context.Context, displayName string) (*Category, error) {
	var out Category
	body := map[string]string{"displayName": displayName}
	if err := c.doJSON(ctx, http.MethodPost, "/categories", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCategory renames a category. Codes never change.
func (c *Client) UpdateCategory(ctx context.Context, code, displayName string) (*Category, error) {
	var out Category
	body := map[string]string{"displayName": displayName}
	if err := c.doJSON(ctx, http.MethodPut, categoryPath(code), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory deletes a category no game refers to.
func (c *Client) DeleteCategory(ctx context.Context, code string) error {
	return c.doJSON(ctx, http.MethodDelete, categoryPath(code), nil, nil, nil)
}

// ListLanguages returns the languages game names can be written in.
func (c *Client) ListLanguages(ctx context.Context) ([]Language, error) {
	var out []Language
	if err := c.doJSON(ctx, http.MethodGet, "/languages", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
