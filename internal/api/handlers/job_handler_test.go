package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageParams(t *testing.T) {
	tests := []struct {
		name       string
		limit      string
		offset     string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", "", defaultPageLimit, 0},
		{"valid values", "50", "10", 50, 10},
		{"negative limit falls back", "-1", "0", defaultPageLimit, 0},
		{"zero limit falls back", "0", "0", defaultPageLimit, 0},
		{"limit capped", "5000", "0", maxPageLimit, 0},
		{"junk limit falls back", "abc", "0", defaultPageLimit, 0},
		{"negative offset clamped", "20", "-5", 20, 0},
		{"junk offset clamped", "20", "x", 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := pageParams(tt.limit, tt.offset)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
