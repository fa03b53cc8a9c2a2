// Package namesync reconciles a game's persisted names with an edited set using
// the fewest add, update and delete calls.
//
// The single-default rule is delegated to the server: writing a name with
// DefaultName=true clears the previous default of the same game atomically, so
// a name that merely loses its default flag produces no call of its own.
package namesync

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gamecatalog/admin/internal/catalog"
)

// Kind is the kind of remote write an Op performs.
type Kind int

const (
	Add Kind = iota + 1
	Update
	Delete
)

func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Update:
		return "update"
	case Delete:
		return "delete"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Op is one remote write. NameID is set for Update and Delete.
type Op struct {
	Kind        Kind
	Language    string
	NameID      uint
	Value       string
	DefaultName bool
}

func (o Op) String() string {
	switch o.Kind {
	case Add:
		return fmt.Sprintf("add(%s, %q, %t)", o.Language, o.Value, o.DefaultName)
	case Update:
		return fmt.Sprintf("update(%d, %q, %t)", o.NameID, o.Value, o.DefaultName)
	default:
		return fmt.Sprintf("%s(%d)", o.Kind, o.NameID)
	}
}

// Writer issues name writes for a game. *catalog.Client implements it.
type Writer interface {
	AddName(ctx context.Context, gameID uint, name catalog.GameName) (*catalog.GameName, error)
	UpdateName(ctx context.Context, gameID, nameID uint, name catalog.GameName) (*catalog.GameName, error)
	DeleteName(ctx context.Context, gameID, nameID uint) error
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Plan computes the writes that turn original into edited.
//
// Adds and updates come first, in the order of edited; deletes follow in the
// order of original. An edited entry with blank text counts as removed. When
// edited lists a language twice, the first entry wins.
func Plan(original, edited []catalog.GameName) []Op {
	origByLang := make(map[string]catalog.GameName, len(original))
	for _, o := range original {
		if _, dup := origByLang[o.Language]; !dup {
			origByLang[o.Language] = o
		}
	}

	editedByLang := make(map[string]catalog.GameName, len(edited))
	var ops []Op
	for _, e := range edited {
		if _, seen := editedByLang[e.Language]; seen {
			continue
		}
		editedByLang[e.Language] = e
		if blank(e.Value) {
			continue
		}

		o, exists := origByLang[e.Language]
		if !exists {
			ops = append(ops, Op{Kind: Add, Language: e.Language, Value: e.Value, DefaultName: e.DefaultName})
			continue
		}

		valueChanged := e.Value != o.Value
		becameDefault := !o.DefaultName && e.DefaultName
		if valueChanged || becameDefault {
			ops = append(ops, Op{Kind: Update, Language: e.Language, NameID: o.ID, Value: e.Value, DefaultName: e.DefaultName})
		}
	}

	for _, o := range original {
		if origByLang[o.Language].ID != o.ID {
			continue
		}
		e, present := editedByLang[o.Language]
		if !present || blank(e.Value) {
			ops = append(ops, Op{Kind: Delete, Language: o.Language, NameID: o.ID})
		}
	}
	return ops
}

// PartialError reports a sync that stopped at a failed write. Writes before it
// stay applied.
type PartialError struct {
	Op      Op
	Applied int
	Total   int
	Err     error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("name sync stopped at %s after %d of %d writes: %v", e.Op, e.Applied, e.Total, e.Err)
}

func (e *PartialError) Unwrap() error { return e.Err }

// Synchronizer applies plans through a Writer.
type Synchronizer struct {
	writer Writer
	log    *slog.Logger
}

// New creates a Synchronizer. A nil logger discards output.
func New(writer Writer, logger *slog.Logger) *Synchronizer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Synchronizer{writer: writer, log: logger}
}

// Sync issues the writes of Plan(original, edited) one after another, waiting
// for each before starting the next. It stops at the first failure and returns
// a *PartialError; there is no rollback and no retry.
func (s *Synchronizer) Sync(ctx context.Context, gameID uint, original, edited []catalog.GameName) error {
	ops := Plan(original, edited)
	for i, op := range ops {
		if err := s.apply(ctx, gameID, op); err != nil {
			s.log.Warn("name sync halted", "game", gameID, "op", op.String(), "applied", i, "error", err)
			return &PartialError{Op: op, Applied: i, Total: len(ops), Err: err}
		}
		s.log.Debug("name sync write", "game", gameID, "op", op.String())
	}
	return nil
}

func (s *Synchronizer) apply(ctx context.Context, gameID uint, op Op) error {
	name := catalog.GameName{Language: op.Language, Value: op.Value, DefaultName: op.DefaultName}
	switch op.Kind {
	case Add:
		_, err := s.writer.AddName(ctx, gameID, name)
		return err
	case Update:
		_, err := s.writer.UpdateName(ctx, gameID, op.NameID, name)
		return err
	case Delete:
		return s.writer.DeleteName(ctx, gameID, op.NameID)
	default:
		return fmt.Errorf("unknown op kind %v", op.Kind)
	}
}
