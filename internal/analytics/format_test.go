package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNaira(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"0", "₦0"},
		{"980", "₦980"},
		{"1500", "₦1,500"},
		{"1500.5", "₦1,500.5"},
		{"1234567", "₦1,234,567"},
		{"-4000", "₦-4,000"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatNaira(dec(tc.in)), "input %s", tc.in)
	}
}

func TestFormatNairaCompact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"980", "₦980"},
		{"1500", "₦1.5k"},
		{"45300", "₦45.3k"},
		{"1200000", "₦1.2M"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatNairaCompact(dec(tc.in)), "input %s", tc.in)
	}
}
