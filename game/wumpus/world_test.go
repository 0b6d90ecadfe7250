package wumpus

import (
	"testing"

	"github.com/beka-birhanu/vinom-wumpus/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid dimensions", func(t *testing.T) {
		w, err := New(4, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, w.Width())
		assert.Equal(t, 3, w.Height())
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 2}, {21, 3}} {
			_, err := New(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
		}
	})
}

func TestWorldQueries(t *testing.T) {
	w, err := New(4, 4)
	require.NoError(t, err)

	t.Run("bounds", func(t *testing.T) {
		assert.True(t, w.InBounds(game.Coordinate{X: 1, Y: 1}))
		assert.True(t, w.InBounds(game.Coordinate{X: 4, Y: 4}))
		assert.False(t, w.InBounds(game.Coordinate{X: 0, Y: 1}))
		assert.False(t, w.InBounds(game.Coordinate{X: 5, Y: 1}))
		assert.False(t, w.InBounds(game.Coordinate{X: 2, Y: -3}))
	})

	t.Run("adjacent cells keep a fixed order", func(t *testing.T) {
		got := w.AdjacentCells(game.Coordinate{X: 2, Y: 2})
		want := []game.Coordinate{{X: 3, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 1}}
		assert.Equal(t, want, got)
	})

	t.Run("corner has two neighbours", func(t *testing.T) {
		got := w.AdjacentCells(game.Coordinate{X: 1, Y: 1})
		assert.Equal(t, []game.Coordinate{{X: 2, Y: 1}, {X: 1, Y: 2}}, got)
	})

	t.Run("out of bounds query is empty", func(t *testing.T) {
		assert.Empty(t, w.AdjacentCells(game.Coordinate{X: 9, Y: 9}))
		assert.False(t, w.HasPit(game.Coordinate{X: 9, Y: 9}))
		assert.False(t, w.HasWumpus(game.Coordinate{X: 9, Y: 9}))
	})
}

func TestWorldPlacement(t *testing.T) {
	w, err := New(3, 3)
	require.NoError(t, err)

	t.Run("rejects out of bounds", func(t *testing.T) {
		out := game.Coordinate{X: 4, Y: 1}
		assert.ErrorIs(t, w.AddPit(out), ErrOutOfBounds)
		assert.ErrorIs(t, w.SetWumpus(out), ErrOutOfBounds)
		assert.ErrorIs(t, w.AddGold(out), ErrOutOfBounds)
	})

	t.Run("gold collection is one-shot", func(t *testing.T) {
		pos := game.Coordinate{X: 2, Y: 2}
		require.NoError(t, w.AddGold(pos))
		assert.True(t, w.HasGold(pos))
		w.CollectGold(pos)
		assert.False(t, w.HasGold(pos))
		w.CollectGold(pos)
		assert.Empty(t, w.Gold())
	})

	t.Run("wumpus is optional", func(t *testing.T) {
		_, ok := w.Wumpus()
		assert.False(t, ok)
		require.NoError(t, w.SetWumpus(game.Coordinate{X: 3, Y: 3}))
		pos, ok := w.Wumpus()
		assert.True(t, ok)
		assert.Equal(t, game.Coordinate{X: 3, Y: 3}, pos)
	})
}

func TestWorldString(t *testing.T) {
	w, err := New(2, 2)
	require.NoError(t, err)
	require.NoError(t, w.AddPit(game.Coordinate{X: 2, Y: 1}))
	require.NoError(t, w.AddGold(game.Coordinate{X: 1, Y: 2}))

	want := "+---+---+\n" +
		"| G |   |\n" +
		"+---+---+\n" +
		"|   | P |\n" +
		"+---+---+\n"
	assert.Equal(t, want, w.String())
}
