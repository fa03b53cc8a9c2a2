package slug

import (
	"strings"
	"testing"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single word", input: "Action", expected: "ACTION"},
		{name: "spaces", input: "Action RPG", expected: "ACTION_RPG"},
		{name: "accents", input: "Café Résumé", expected: "CAFE_RESUME"},
		{name: "punctuation", input: "  Hack & Slash!  ", expected: "HACK_SLASH"},
		{name: "vietnamese", input: "Phiêu lưu", expected: "PHIEU_LUU"},
		{name: "vietnamese stroke d", input: "Hành động", expected: "HANH_DONG"},
		{name: "upper stroke d", input: "ĐUA XE", expected: "DUA_XE"},
		{name: "only symbols", input: "!!!", expected: Fallback},
		{name: "non latin", input: "パズル", expected: Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.input); got != tt.expected {
				t.Errorf("Code(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCode_Truncates(t *testing.T) {
	got := Code(strings.Repeat("ab ", 40))
	if len(got) > MaxLen {
		t.Fatalf("len(Code) = %d, want <= %d", len(got), MaxLen)
	}
	if strings.HasSuffix(got, "_") {
		t.Errorf("Code = %q ends with a separator", got)
	}
}
