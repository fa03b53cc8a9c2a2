package browser

import (
	"slices"

	"gamecatalog/admin/internal/catalog"
)

// State is one immutable snapshot of the game list view. Reduce never
// modifies the State it is given.
type State struct {
	Keyword  string
	Category string

	Page          int
	TotalPages    int
	TotalElements int64
	Games         []catalog.Game

	selected []uint
	Err      error
}

// Initial is the state before the first load.
func Initial() State {
	return State{TotalPages: 1}
}

// Selected returns the selected game ids in the order they were picked.
func (s State) Selected() []uint { return slices.Clone(s.selected) }

func (s State) IsSelected(id uint) bool { return slices.Contains(s.selected, id) }

func (s State) HasPrev() bool { return s.Page > 0 }

func (s State) HasNext() bool { return s.Page+1 < s.TotalPages }

// Action is a state transition.
type Action interface{ isAction() }

type (
	// KeywordChanged edits the search box. It takes effect on the next load.
	KeywordChanged struct{ Keyword string }
	// CategoryChanged edits the category filter; "" means all categories.
	CategoryChanged struct{ Category string }
	// SelectionToggled selects or deselects one game.
	SelectionToggled struct{ ID uint }
	// SelectionCleared empties the selection.
	SelectionCleared struct{}
	// PageLoaded replaces the visible page and clears the error.
	PageLoaded struct{ Page *catalog.GamePage }
	// LoadFailed records a failed call. The visible page is kept.
	LoadFailed struct{ Err error }
)

func (KeywordChanged) isAction()   {}
func (CategoryChanged) isAction()  {}
func (SelectionToggled) isAction() {}
func (SelectionCleared) isAction() {}
func (PageLoaded) isAction()       {}
func (LoadFailed) isAction()       {}

// Reduce returns the state after applying a.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case KeywordChanged:
		s.Keyword = a.Keyword
	case CategoryChanged:
		s.Category = a.Category
	case SelectionToggled:
		if i := slices.Index(s.selected, a.ID); i >= 0 {
			s.selected = slices.Delete(slices.Clone(s.selected), i, i+1)
		} else {
			s.selected = append(slices.Clone(s.selected), a.ID)
		}
	case SelectionCleared:
		s.selected = nil
	case PageLoaded:
		if a.Page == nil {
			return s
		}
		s.Games = slices.Clone(a.Page.Content)
		s.Page = a.Page.Page
		s.TotalPages = max(a.Page.TotalPages, 1)
		s.TotalElements = a.Page.TotalElements
		s.Err = nil
	case LoadFailed:
		s.Err = a.Err
	}
	return s
}
