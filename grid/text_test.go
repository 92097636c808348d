package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerun/grid"
)

// TestParse_RoundTrip verifies that String is the inverse of Parse.
func TestParse_RoundTrip(t *testing.T) {
	src := "" +
		"#.###\n" +
		"#...#\n" +
		"###.#"
	g, err := grid.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, 5, g.Width)
	assert.Equal(t, src, g.String())
}

// TestParse_SpacesAndCRLF accepts blank-as-path and Windows line endings.
func TestParse_SpacesAndCRLF(t *testing.T) {
	g, err := grid.Parse("\n# #\r\n###\r\n")
	require.NoError(t, err)
	assert.Equal(t, "#.#\n###", g.String())
}

// TestParse_Errors covers each parse failure.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"Ragged", "###\n##", grid.ErrNonRectangular},
		{"Glyph", "#x#", grid.ErrBadGlyph},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.src)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestMustParse_Panics checks the fixture helper fails loudly.
func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { grid.MustParse("#?") })
}
