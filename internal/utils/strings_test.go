package utils

import (
	"strings"
	"testing"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "shorter than limit",
			input:  "hello",
			maxLen: 10,
			want:   "hello",
		},
		{
			name:   "exactly at limit",
			input:  "hello",
			maxLen: 5,
			want:   "hello",
		},
		{
			name:   "longer than limit",
			input:  "hello world",
			maxLen: 5,
			want:   "hello... (truncated, total: 11 chars)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("TruncateString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncateString_DefaultLength(t *testing.T) {
	long := strings.Repeat("a", DefaultMaxStringLength+100)
	got := TruncateString(long, 0)
	if len(got) >= len(long) {
		t.Errorf("TruncateString() with zero maxLen should use the default limit")
	}
}
