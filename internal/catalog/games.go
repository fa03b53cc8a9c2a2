package catalog

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
)

func gamePath(id uint) string {
	return "/games/" + strconv.FormatUint(uint64(id), 10)
}

// ListGames returns one page of games matching the optional filters.
func (c *Client) ListGames(ctx context.Context, params ListGamesParams) (*GamePage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	if params.Size > 0 {
		query.Set("size", strconv.Itoa(params.Size))
	}
	if params.Keyword != "" {
		query.Set("keyword", params.Keyword)
	}
	if params.Category != "" {
		query.Set("category", params.Category)
	}

	var page GamePage
	if err := c.doJSON(ctx, http.MethodGet, "/games", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetGame returns a game with all of its names.
func (c *Client) GetGame(ctx context.Context, id uint) (*Game, error) {
	var game Game
	if err := c.doJSON(ctx, http.MethodGet, gamePath(id), nil, nil, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// CreateGame creates a game with its category, optional image and initial names in one call.
func (c *Client) CreateGame(ctx context.Context, in CreateGameInput) (*Game, error) {
	fields := [][2]string{{"category", in.Category}}
	for i, n := range in.Names {
		prefix := fmt.Sprintf("gameNames[%d]", i)
		fields = append(fields,
			[2]string{prefix + ".language", n.Language},
			[2]string{prefix + ".value", n.Value},
			[2]string{prefix + ".defaultName", strconv.FormatBool(n.DefaultName)},
		)
	}

	body, contentType, err := multipartBody(fields, in.Image)
	if err != nil {
		return nil, err
	}

	var game Game
	if err := c.do(ctx, http.MethodPost, "/games", nil, body, contentType, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// UpdateGame changes the category and, when image is non-nil, replaces the image.
func (c *Client) UpdateGame(ctx context.Context, id uint, category string, image *Image) (*Game, error) {
	body, contentType, err := multipartBody([][2]string{{"category", category}}, image)
	if err != nil {
		return nil, err
	}

	var game Game
	if err := c.do(ctx, http.MethodPut, gamePath(id), nil, body, contentType, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// DeleteGame deletes one game.
func (c *Client) DeleteGame(ctx context.Context, id uint) error {
	return c.doJSON(ctx, http.MethodDelete, gamePath(id), nil, nil, nil)
}

// DeleteGames deletes every listed game in one call.
func (c *Client) DeleteGames(ctx context.Context, ids []uint) error {
	return c.doJSON(ctx, http.MethodDelete, "/games", nil, ids, nil)
}

func multipartBody(fields [][2]string, image *Image) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", unexpected(err)
		}
	}
	if image != nil {
		part, err := w.CreateFormFile("image", image.Filename)
		if err != nil {
			return nil, "", unexpected(err)
		}
		if _, err := part.Write(image.Data); err != nil {
			return nil, "", unexpected(err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", unexpected(err)
	}
	return &buf, w.FormDataContentType(), nil
}
