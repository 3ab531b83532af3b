package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermAt(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2026-01-10", "2026/Spring"},
		{"2026-05-19", "2026/Spring"},
		{"2026-05-20", "2026/Summer"},
		{"2026-07-01", "2026/Summer"},
		{"2026-08-20", "2026/Summer"},
		{"2026-08-21", "2026/Fall"},
		{"2026-12-31", "2026/Fall"},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			day, err := time.Parse("2006-01-02", tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, TermAt(day).String())
		})
	}
}

func TestParseTerm(t *testing.T) {
	term, err := ParseTerm("2025/Fall")
	require.NoError(t, err)
	assert.Equal(t, Term{Year: 2025, Season: Fall}, term)

	for _, bad := range []string{"", "2025", "2025/Winter", "x/Fall", "2025/fall"} {
		_, err := ParseTerm(bad)
		assert.ErrorIs(t, err, ErrUnknownTerm, bad)
	}
}

func TestTermPrior(t *testing.T) {
	assert.Equal(t, Term{Year: 2025, Season: Fall}, Term{Year: 2026, Season: Spring}.Prior())
	assert.Equal(t, Term{Year: 2026, Season: Spring}, Term{Year: 2026, Season: Summer}.Prior())
	assert.Equal(t, Term{Year: 2026, Season: Spring}, Term{Year: 2026, Season: Fall}.Prior())
}
