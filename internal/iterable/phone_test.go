package iterable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatE164(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(555) 123-4567", "+15551234567"},
		{"555-123-4567", "+15551234567"},
		{"15551234567", "+15551234567"},
		{"+15551234567", "+15551234567"},
		// Non-NANP numbers that already carry a "+" pass through untouched,
		// separators included.
		{"+447911123456", "+447911123456"},
		{"+61 400 000 000", "+61 400 000 000"},
		// Everything else is best-effort: prefix the stripped digits.
		{"447911123456", "+447911123456"},
		{"123", "+123"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatE164(tt.in), "input %q", tt.in)
	}
}
