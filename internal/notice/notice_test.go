package notice

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gamecatalog/admin/internal/catalog"
	"gamecatalog/admin/internal/namesync"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestBoard_SuccessExpires(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	b := NewBoard(WithClock(clock.Now))

	b.Succeed("Category created successfully!")
	assert.Equal(t, "Category created successfully!", b.Success())

	clock.Advance(SuccessTTL - time.Millisecond)
	assert.Equal(t, "Category created successfully!", b.Success())

	clock.Advance(time.Millisecond)
	assert.Empty(t, b.Success())
}

func TestBoard_ErrorStaysUntilSuperseded(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	b := NewBoard(WithClock(clock.Now))

	first := errors.New("first")
	b.Fail(first)
	clock.Advance(time.Hour)
	assert.Equal(t, first, b.Err())

	second := errors.New("second")
	b.Fail(second)
	assert.Equal(t, second, b.Err())

	b.Fail(nil)
	assert.Equal(t, second, b.Err())

	b.Succeed("done")
	assert.NoError(t, b.Err())
	assert.Equal(t, "done", b.Success())

	b.Fail(first)
	assert.Empty(t, b.Success())

	b.Clear()
	assert.NoError(t, b.Err())
}

func TestMessage(t *testing.T) {
	remote := &catalog.Error{Code: 409, Message: "Category is in use"}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"remote", remote, "Category is in use"},
		{"wrapped remote", fmt.Errorf("delete: %w", remote), "Category is in use"},
		{"partial sync", &namesync.PartialError{Err: remote}, "Category is in use"},
		{"validation", &catalog.ValidationError{Field: "category", Message: "Please select a category!"}, "Please select a category!"},
		{"other", errors.New("boom"), FallbackMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}
