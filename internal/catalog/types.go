// Package catalog is the client of the game catalog REST API.
package catalog

// GameName is a game's display name in one language. ID is assigned by the
// server and is zero for names that have not been persisted yet.
type GameName struct {
	ID          uint   `json:"id,omitempty"`
	Language    string `json:"language"`
	Value       string `json:"value"`
	DefaultName bool   `json:"defaultName"`
}

// Game is a catalog record with all of its names.
type Game struct {
	ID       uint       `json:"gameId"`
	Category string     `json:"category"`
	Image    string     `json:"image,omitempty"`
	Names    []GameName `json:"gameNames"`
}

// DefaultName returns the name flagged as default, if any.
func (g Game) DefaultName() (GameName, bool) {
	for _, n := range g.Names {
		if n.DefaultName {
			return n, true
		}
	}
	return GameName{}, false
}

type Category struct {
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
}

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// GamePage is one zero-based page of a game listing.
type GamePage struct {
	Content       []Game `json:"content"`
	Page          int    `json:"page"`
	Size          int    `json:"size"`
	TotalElements int64  `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
}

// ListGamesParams filters and pages a game listing. Empty strings mean "no filter".
type ListGamesParams struct {
	Page     int
	Size     int
	Keyword  string
	Category string
}

// Image is an image payload to upload with a game.
type Image struct {
	Filename string
	Data     []byte
}

// CreateGameInput is everything a new game is created with in one call.
type CreateGameInput struct {
	Category string
	Image    *Image
	Names    []GameName
}

// Account is an operator account.
type Account struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
