package game

// Percepts are the signals the agent senses on a cell.
type Percepts struct {
	Breeze  bool // A pit is adjacent.
	Stench  bool // The wumpus is adjacent.
	Glitter bool // Gold lies on the cell itself.
}

// Quiet reports whether neither danger signal is present.
func (p Percepts) Quiet() bool {
	return !p.Breeze && !p.Stench
}

// Sense derives the percepts at pos from the world.
// It never caches: glitter changes once gold is collected.
func Sense(w World, pos Coordinate) Percepts {
	var p Percepts
	for _, adj := range w.AdjacentCells(pos) {
		if w.HasPit(adj) {
			p.Breeze = true
		}
		if w.HasWumpus(adj) {
			p.Stench = true
		}
	}
	p.Glitter = w.HasGold(pos)
	return p
}
