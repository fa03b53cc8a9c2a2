package catalog

import (
	"context"
	"net/http"
	"strconv"
)

func namePath(gameID, nameID uint) string {
	return gamePath(gameID) + "/names/" + strconv.FormatUint(uint64(nameID), 10)
}

// AddName adds the name for one language to a game.
func (c *Client) AddName(ctx context.Context, gameID uint, name GameName) (*GameName, error) {
	name.ID = 0
	var out GameName
	if err := c.doJSON(ctx, http.MethodPost, gamePath(gameID)+"/names", nil, name, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateName rewrites the text and default flag of an existing name.
// Writing DefaultName=true makes the server clear the game's previous default
// in the same transaction.
func (c *Client) UpdateName(ctx context.Context, gameID, nameID uint, name GameName) (*GameName, error) {
	name.ID = 0
	var out GameName
	if err := c.doJSON(ctx, http.MethodPut, namePath(gameID, nameID), nil, name, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteName removes a name from a game.
func (c *Client) DeleteName(ctx context.Context, gameID, nameID uint) error {
	return c.doJSON(ctx, http.MethodDelete, namePath(gameID, nameID), nil, nil, nil)
}
