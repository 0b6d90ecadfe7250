package game

// Infer applies the one-hop safety rule at pos.
//
// A cell with neither breeze nor stench proves all its neighbours free of pits and of the
// wumpus, so every unvisited neighbour becomes safe and joins the frontier. A breeze or a
// stench proves nothing about any single neighbour: they stay undetermined, never unsafe.
// Infer mutates only the safe set and the frontier of state.
func Infer(w World, pos Coordinate, state *AgentState) Percepts {
	p := Sense(w, pos)
	if !p.Quiet() {
		// Danger nearby: no neighbour can be proven safe from this cell alone.
		return p
	}

	for _, cell := range w.AdjacentCells(pos) {
		if state.IsVisited(cell) {
			continue
		}
		state.MarkSafe(cell)
	}
	return p
}
