package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenresValue(t *testing.T) {
	v, err := Genres{"Rock", "Jazz"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Rock","Jazz"]`, v)

	v, err = Genres(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestGenresScan(t *testing.T) {
	cases := []struct {
		name string
		src  any
		want Genres
	}{
		{"string", `["Rock","Jazz"]`, Genres{"Rock", "Jazz"}},
		{"bytes", []byte(`["Folk"]`), Genres{"Folk"}},
		{"null", nil, Genres{}},
		{"empty text", "  ", Genres{}},
		{"json null", "null", Genres{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var g Genres
			require.NoError(t, g.Scan(tc.src))
			assert.Equal(t, tc.want, g)
		})
	}
}

func TestGenresScanRejectsMalformed(t *testing.T) {
	var g Genres
	assert.Error(t, g.Scan(`Rock, Jazz`))
	assert.Error(t, g.Scan(42))
}
