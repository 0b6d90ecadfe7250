package wumpus

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/beka-birhanu/vinom-wumpus/game"
)

var ErrInvalidHazardModel = errors.New("invalid hazard model")

// HazardModel defines how a random world is populated.
// PitProb is the base chance of a pit on a cell; cells close to the start are
// spared proportionally to their distance so the agent gets a fair opening.
type HazardModel struct {
	PitProb float32 // Base probability of a pit per cell (0.0 to 1.0).
	Gold    int     // Number of gold pieces to hide.
	Wumpus  bool    // Whether to place the wumpus.
}

// Generate builds a random scenario of the given size.
// The start cell never holds a pit or the wumpus, and gold is only placed on hazard-free cells.
func Generate(width, height int, start game.Coordinate, m HazardModel, rng *rand.Rand) (*Scenario, error) {
	if m.PitProb > 1 || m.PitProb < 0 || m.Gold < 0 {
		return nil, ErrInvalidHazardModel
	}

	world, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if !world.InBounds(start) {
		return nil, fmt.Errorf("start %s: %w", start, ErrOutOfBounds)
	}

	visited := map[game.Coordinate]struct{}{start: {}}
	stack := []game.Coordinate{start}
	var free []game.Coordinate

	for len(stack) > 0 {
		cell := pop(&stack)
		if cell != start && rng.Float32() < calcProb(m.PitProb, cell, start, width, height) {
			_ = world.AddPit(cell)
		} else if cell != start {
			free = append(free, cell)
		}

		for _, nbr := range world.AdjacentCells(cell) {
			if _, seen := visited[nbr]; !seen {
				visited[nbr] = struct{}{}
				stack = append(stack, nbr)
			}
		}
	}

	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	if m.Wumpus && len(free) > 0 {
		_ = world.SetWumpus(free[0])
		free = free[1:]
	}

	// The start cell is hazard-free, so it can hold gold too.
	free = append(free, start)
	if m.Gold > len(free) {
		return nil, fmt.Errorf("%w: %d gold pieces do not fit on %d free cells", ErrInvalidHazardModel, m.Gold, len(free))
	}
	for _, cell := range free[:m.Gold] {
		_ = world.AddGold(cell)
	}

	return &Scenario{World: world, Start: start}, nil
}

// pop removes and returns the last element of a stack of coordinates.
func pop(s *[]game.Coordinate) game.Coordinate {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}

// calcProb scales the base pit probability by the cell's Manhattan distance from the start,
// so the start's surroundings are less likely to be trapped.
func calcProb(baseProb float32, cell, start game.Coordinate, width, height int) float32 {
	dist := math.Abs(float64(cell.X-start.X)) + math.Abs(float64(cell.Y-start.Y))
	maxDist := float64(max(start.X-1, width-start.X) + max(start.Y-1, height-start.Y))
	if maxDist == 0 {
		return 0
	}

	return baseProb * float32(dist/maxDist)
}
