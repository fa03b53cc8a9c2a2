// Package categories manages the category reference list.
package categories

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"gamecatalog/admin/internal/catalog"
	"gamecatalog/admin/internal/notice"
)

const (
	MsgDisplayNameRequired = "Please enter display name"

	MsgCreated = "Category created successfully!"
	MsgUpdated = "Category updated successfully!"
	MsgDeleted = "Category deleted successfully!"
)

// Client is the part of *catalog.Client the manager needs.
type Client interface {
	ListCategories(ctx context.Context) ([]catalog.Category, error)
	CreateCategory(ctx context.Context, displayName string) (*catalog.Category, error)
	UpdateCategory(ctx context.Context, code, displayName string) (*catalog.Category, error)
	DeleteCategory(ctx context.Context, code string) error
}

// Manager keeps the last loaded category list. Every mutation is followed by
// a full reload; the list is never patched locally.
type Manager struct {
	client  Client
	notices *notice.Board
	log     *slog.Logger

	mu         sync.RWMutex
	categories []catalog.Category
}

// New creates a Manager. A nil board gets a fresh one.
func New(client Client, notices *notice.Board, logger *slog.Logger) *Manager {
	if notices == nil {
		notices = notice.NewBoard()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{client: client, notices: notices, log: logger}
}

// Notices is the board results are posted to.
func (m *Manager) Notices() *notice.Board { return m.notices }

// Categories returns the last loaded list.
func (m *Manager) Categories() []catalog.Category {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.categories)
}

// Find returns the loaded category with the given code.
func (m *Manager) Find(code string) (catalog.Category, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := slices.IndexFunc(m.categories, func(c catalog.Category) bool { return c.Code == code })
	if i < 0 {
		return catalog.Category{}, false
	}
	return m.categories[i], true
}

// Reload fetches the full list.
func (m *Manager) Reload(ctx context.Context) error {
	list, err := m.client.ListCategories(ctx)
	if err != nil {
		m.notices.Fail(err)
		return err
	}
	m.mu.Lock()
	m.categories = list
	m.mu.Unlock()
	return nil
}

func requireDisplayName(displayName string) (string, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return "", &catalog.ValidationError{Field: "displayName", Message: MsgDisplayNameRequired}
	}
	return displayName, nil
}

// Create adds a category; the server assigns its code.
func (m *Manager) Create(ctx context.Context, displayName string) (*catalog.Category, error) {
	displayName, err := requireDisplayName(displayName)
	if err != nil {
		m.notices.Fail(err)
		return nil, err
	}
	created, err := m.client.CreateCategory(ctx, displayName)
	if err != nil {
		m.notices.Fail(err)
		return nil, err
	}
	m.log.Info("category created", "code", created.Code)
	return created, m.done(ctx, MsgCreated)
}

// Rename changes a category's display name. Codes never change.
func (m *Manager) Rename(ctx context.Context, code, displayName string) (*catalog.Category, error) {
	displayName, err := requireDisplayName(displayName)
	if err != nil {
		m.notices.Fail(err)
		return nil, err
	}
	updated, err := m.client.UpdateCategory(ctx, code, displayName)
	if err != nil {
		m.notices.Fail(err)
		return nil, err
	}
	m.log.Info("category renamed", "code", code)
	return updated, m.done(ctx, MsgUpdated)
}

// Delete removes a category.
func (m *Manager) Delete(ctx context.Context, code string) error {
	if err := m.client.DeleteCategory(ctx, code); err != nil {
		m.notices.Fail(err)
		return err
	}
	m.log.Info("category deleted", "code", code)
	return m.done(ctx, MsgDeleted)
}

func (m *Manager) done(ctx context.Context, msg string) error {
	m.notices.Succeed(msg)
	return m.Reload(ctx)
}
