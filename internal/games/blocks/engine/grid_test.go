package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridClampsDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		wantRows   int
		wantCols   int
	}{
		{"regular", 3, 2, 3, 2},
		{"zero", 0, 0, 1, 1},
		{"negative", -4, -2, 4, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid[int](tc.rows, tc.cols)
			assert.Equal(t, tc.wantRows, g.Rows())
			assert.Equal(t, tc.wantCols, g.Cols())
		})
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid[int](3, 4)
	require.NoError(t, g.Set(2, 3, 7))

	v, err := g.Get(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	tests := []struct {
		name string
		r, c int
		want error
	}{
		{"negative row", -1, 0, ErrNegativeIndex},
		{"negative col", 0, -1, ErrNegativeIndex},
		{"row too large", 3, 0, ErrIndexTooLarge},
		{"col too large", 0, 4, ErrIndexTooLarge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.Get(tc.r, tc.c)
			assert.ErrorIs(t, err, tc.want)

			err = g.Set(tc.r, tc.c, 1)
			assert.ErrorIs(t, err, tc.want)

			var idxErr *IndexError
			require.True(t, errors.As(err, &idxErr))
			assert.Equal(t, tc.r, idxErr.Row)
			assert.Equal(t, tc.c, idxErr.Col)

			assert.Equal(t, 42, g.GetOr(tc.r, tc.c, 42))
		})
	}

	assert.Equal(t, 7, g.GetOr(2, 3, 42))
}

func TestGridRotateCW(t *testing.T) {
	// J template
	src := GridFromRows([][]int{
		{0, 1},
		{0, 1},
		{1, 1},
	})
	want := GridFromRows([][]int{
		{1, 0, 0},
		{1, 1, 1},
	})

	got := src.Rotate(CW)
	assert.Equal(t, 2, got.Rows())
	assert.Equal(t, 3, got.Cols())
	assert.True(t, want.Equal(got), "got\n%s", got)
}

func TestGridRotateCCW(t *testing.T) {
	src := GridFromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	want := GridFromRows([][]int{
		{3, 6},
		{2, 5},
		{1, 4},
	})

	got := src.Rotate(CCW)
	assert.True(t, want.Equal(got), "got\n%s", got)
}

func TestGridFourQuarterTurnsIsIdentity(t *testing.T) {
	src := GridFromRows([][]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})

	g := src
	for range 4 {
		g = g.Rotate(CW)
	}
	assert.True(t, src.Equal(g), "4x CW:\n%s", g)

	g = src
	for range 4 {
		g = g.Rotate(CCW)
	}
	assert.True(t, src.Equal(g), "4x CCW:\n%s", g)
}

func TestGridRotateInverse(t *testing.T) {
	src := GridFromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})

	assert.True(t, src.Equal(src.Rotate(CW).Rotate(CCW)))
	assert.True(t, src.Equal(src.Rotate(CCW).Rotate(CW)))
}

func TestGridRotateLeavesSourceUntouched(t *testing.T) {
	src := GridFromRows([][]int{{1, 2}, {3, 4}})
	before := src.Clone()
	_ = src.Rotate(CW)
	assert.True(t, before.Equal(src))
}
