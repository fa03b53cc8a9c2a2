package handler

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageParams(t *testing.T) {
	tests := []struct {
		name       string
		page, size string
		wantPage   int
		wantSize   int
	}{
		{"defaults", "", "", 0, DefaultPageSize},
		{"negative page", "-3", "10", 0, 10},
		{"size capped", "2", "1000", 2, MaxPageSize},
		{"huge page clamped", "99999999999999", "100", MaxPage, MaxPageSize},
		{"max int page clamped", strconv.Itoa(int(^uint(0) >> 1)), "100", MaxPage, MaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := pageParams(tt.page, tt.size)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
			assert.GreaterOrEqual(t, page*size, 0)
		})
	}
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%hades%", containsPattern("HADES"))
	assert.Equal(t, `%100\% off%`, containsPattern("100% off"))
	assert.Equal(t, `%snake\_case%`, containsPattern("snake_case"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}
