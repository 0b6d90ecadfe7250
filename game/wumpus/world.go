/*
Package wumpus provides the rectangular hazard world explored by the agent.

A World holds pits, at most one wumpus and gold pieces on a 1-based grid. The package also
reads and writes the line-oriented world description, generates random worlds, and renders
a world as ASCII art.
*/
package wumpus

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/beka-birhanu/vinom-wumpus/game"
	"github.com/zyedidia/generic/mapset"
)

const (
	maxWorldDimension = 20
)

var (
	ErrInvalidDimensions = errors.New("invalid world dimensions")
	ErrOutOfBounds       = errors.New("coordinate out of bounds")
)

var _ game.World = &World{}

// World is a width x height grid with hazards and gold.
// Only gold collection mutates it once it is populated.
type World struct {
	width  int                         // Number of columns.
	height int                         // Number of rows.
	pits   mapset.Set[game.Coordinate] // Cells holding a pit.
	gold   mapset.Set[game.Coordinate] // Cells holding uncollected gold.
	wumpus *game.Coordinate            // Wumpus cell, nil when absent.
}

// New creates an empty world of the given dimensions.
func New(width, height int) (*World, error) {
	if min(width, height) <= 0 || max(width, height) > maxWorldDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	return &World{
		width:  width,
		height: height,
		pits:   mapset.New[game.Coordinate](),
		gold:   mapset.New[game.Coordinate](),
	}, nil
}

// Width returns the number of columns.
func (w *World) Width() int {
	return w.width
}

// Height returns the number of rows.
func (w *World) Height() int {
	return w.height
}

// InBounds reports whether pos lies inside the grid.
func (w *World) InBounds(pos game.Coordinate) bool {
	return pos.X >= 1 && pos.X <= w.width && pos.Y >= 1 && pos.Y <= w.height
}

// AdjacentCells returns the in-bounds orthogonal neighbours of pos in +x, -x, +y, -y order.
func (w *World) AdjacentCells(pos game.Coordinate) []game.Coordinate {
	var result []game.Coordinate
	for _, delta := range game.Directions {
		neighbor := pos.Add(delta)
		if w.InBounds(neighbor) {
			result = append(result, neighbor)
		}
	}
	return result
}

// HasPit reports whether a pit sits at pos.
func (w *World) HasPit(pos game.Coordinate) bool {
	return w.pits.Has(pos)
}

// HasWumpus reports whether the wumpus sits at pos.
func (w *World) HasWumpus(pos game.Coordinate) bool {
	return w.wumpus != nil && *w.wumpus == pos
}

// HasGold reports whether uncollected gold lies at pos.
func (w *World) HasGold(pos game.Coordinate) bool {
	return w.gold.Has(pos)
}

// CollectGold removes the gold at pos, if any.
func (w *World) CollectGold(pos game.Coordinate) {
	w.gold.Remove(pos)
}

// AddPit places a pit at pos.
func (w *World) AddPit(pos game.Coordinate) error {
	if !w.InBounds(pos) {
		return fmt.Errorf("pit at %s: %w", pos, ErrOutOfBounds)
	}
	w.pits.Put(pos)
	return nil
}

// SetWumpus places the wumpus at pos, replacing any earlier placement.
func (w *World) SetWumpus(pos game.Coordinate) error {
	if !w.InBounds(pos) {
		return fmt.Errorf("wumpus at %s: %w", pos, ErrOutOfBounds)
	}
	w.wumpus = &pos
	return nil
}

// AddGold places a gold piece at pos.
func (w *World) AddGold(pos game.Coordinate) error {
	if !w.InBounds(pos) {
		return fmt.Errorf("gold at %s: %w", pos, ErrOutOfBounds)
	}
	w.gold.Put(pos)
	return nil
}

// Pits returns the pit cells sorted row by row.
func (w *World) Pits() []game.Coordinate {
	return sorted(w.pits)
}

// Gold returns the cells with uncollected gold sorted row by row.
func (w *World) Gold() []game.Coordinate {
	return sorted(w.gold)
}

// Wumpus returns the wumpus cell and whether there is one.
func (w *World) Wumpus() (game.Coordinate, bool) {
	if w.wumpus == nil {
		return game.Coordinate{}, false
	}
	return *w.wumpus, true
}

// String provides a textual representation of the world, north row first.
func (w *World) String() string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", w.width) + "\n"

	for y := w.height; y >= 1; y-- {
		cellRow := "|"
		for x := 1; x <= w.width; x++ {
			cellRow += " " + w.symbol(game.Coordinate{X: x, Y: y}) + " |"
		}
		output += cellRow + "\n"
		output += "+" + strings.Repeat("---+", w.width) + "\n"
	}

	return output
}

// symbol picks the glyph drawn for a cell; hazards win over gold.
func (w *World) symbol(pos game.Coordinate) string {
	switch {
	case w.HasPit(pos):
		return "P"
	case w.HasWumpus(pos):
		return "W"
	case w.HasGold(pos):
		return "G"
	default:
		return " "
	}
}

func sorted(set mapset.Set[game.Coordinate]) []game.Coordinate {
	cells := make([]game.Coordinate, 0, set.Size())
	set.Each(func(c game.Coordinate) {
		cells = append(cells, c)
	})
	slices.SortFunc(cells, func(a, b game.Coordinate) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return cells
}
