package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "sentinel error",
			err:      ErrNoLocation,
			expected: "Error: no weather location configured",
		},
		{
			name:     "wrapped sentinel",
			err:      fmt.Errorf("%w: %q", ErrInvalidDate, "2024-13-01"),
			expected: `Error: invalid date format, use YYYY-MM-DD or 'today': "2024-13-01"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("today: %w", ErrInvalidDate)
	if !errors.Is(wrapped, ErrInvalidDate) {
		t.Error("errors.Is should match ErrInvalidDate through wrapping")
	}
	if errors.Is(wrapped, ErrNoLocation) {
		t.Error("errors.Is should not match an unrelated sentinel")
	}
}
