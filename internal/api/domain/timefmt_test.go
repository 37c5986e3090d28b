package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "datetime-local with seconds", input: "2024-03-01T10:00:00", want: "2024-03-01 10:00:00"},
		{name: "datetime-local without seconds", input: "2024-03-01T10:00", want: "2024-03-01 10:00:00"},
		{name: "stored layout", input: "2024-03-01 10:00:00", want: "2024-03-01 10:00:00"},
		{name: "space-separated without seconds", input: "2024-03-01 10:00", want: "2024-03-01 10:00:00"},
		{name: "rfc3339", input: "2024-03-01T10:00:00Z", want: "2024-03-01 10:00:00"},
		{name: "surrounding whitespace", input: "  2024-03-01T10:00:00  ", want: "2024-03-01 10:00:00"},
		{name: "date only", input: "2024-03-01", wantErr: true},
		{name: "garbage", input: "soon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "impossible date", input: "2024-13-45T10:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTime(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate(" 2024-01-31 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-31", got)

	_, err = NormalizeDate("2024-01-31T10:00:00")
	require.ErrorIs(t, err, ErrInvalidTime)

	_, err = NormalizeDate("31/01/2024")
	require.ErrorIs(t, err, ErrInvalidTime)
}
