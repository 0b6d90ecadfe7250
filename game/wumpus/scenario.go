package wumpus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-wumpus/game"
)

const maxEncodableDimension = 9

var ErrNotEncodable = errors.New("world cannot be encoded with single digit coordinates")

// Scenario is a populated world together with the agent's starting cell.
type Scenario struct {
	World *World
	Start game.Coordinate
}

// Explorer returns a fresh explorer for the scenario.
// The scenario's world is mutated by the explorer as gold is collected.
func (s *Scenario) Explorer(opts ...game.ExplorerOption) *game.Explorer {
	return game.NewExplorer(s.World, s.Start, opts...)
}

// Encode writes the scenario in the line-oriented world format.
func (s *Scenario) Encode() (string, error) {
	w := s.World
	if max(w.width, w.height) > maxEncodableDimension {
		return "", fmt.Errorf("%w: %dx%d", ErrNotEncodable, w.width, w.height)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%c%d%d\n", tagDimensions, w.width, w.height)
	writeRecord(&b, tagAgent, s.Start)
	for _, p := range w.Pits() {
		writeRecord(&b, tagPit, p)
	}
	if pos, ok := w.Wumpus(); ok {
		writeRecord(&b, tagWumpus, pos)
	}
	for _, g := range w.Gold() {
		writeRecord(&b, tagGold, g)
	}
	return b.String(), nil
}

func writeRecord(b *strings.Builder, tag byte, pos game.Coordinate) {
	fmt.Fprintf(b, "%c%d%d\n", tag, pos.X, pos.Y)
}
