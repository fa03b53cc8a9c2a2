package handler

import (
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultPageSize = 16
	MaxPageSize     = 100

	// MaxPage keeps page*size inside a 32-bit offset.
	MaxPage = math.MaxInt32 / MaxPageSize
)

// PaginatedResponse defines the structure for a zero-based page of any type.
type PaginatedResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPaginatedResponse creates a new PaginatedResponse.
func NewPaginatedResponse[T any](data []T, totalItems int64, page, size int) PaginatedResponse[T] {
	if size <= 0 {
		size = 1
	}
	if data == nil {
		data = []T{}
	}
	return PaginatedResponse[T]{
		Content:       data,
		Page:          page,
		Size:          size,
		TotalElements: totalItems,
		TotalPages:    (int(totalItems) + size - 1) / size,
	}
}

// MapPage converts the page content while keeping its metadata.
func MapPage[T, U any](p *PaginatedResponse[T], fn func(T) U) PaginatedResponse[U] {
	out := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		out = append(out, fn(item))
	}
	return PaginatedResponse[U]{
		Content:       out,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}

// Paginate executes a paginated query and returns the results.
// The query is cloned for the count and the fetch so filters apply to both.
func Paginate[T any](query *gorm.DB, page, size int, preloads ...string) (*PaginatedResponse[T], error) {
	var totalItems int64
	if err := query.Session(&gorm.Session{}).Model(new(T)).Count(&totalItems).Error; err != nil {
		return nil, err
	}

	find := query.Session(&gorm.Session{})
	for _, p := range preloads {
		find = find.Preload(p)
	}

	var results []T
	if err := find.Offset(page * size).Limit(size).Find(&results).Error; err != nil {
		return nil, err
	}

	response := NewPaginatedResponse(results, totalItems, page, size)
	return &response, nil
}

// pageParams reads zero-based "page" and "size" query values with defaults and bounds.
func pageParams(pageStr, sizeStr string) (page, size int) {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 0 {
		page = 0
	}
	page = min(page, MaxPage)
	size, err = strconv.Atoi(sizeStr)
	if err != nil || size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize // Max limit
	}
	return page, size
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern builds a lower-cased LIKE pattern matching text literally
// anywhere in a value. It pairs with ESCAPE '\'.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"
}
