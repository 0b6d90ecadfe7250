package game

// World is the static grid an agent explores.
// Every query is total: out of bounds coordinates report false or no neighbours.
type World interface {
	// Width returns the number of columns.
	Width() int

	// Height returns the number of rows.
	Height() int

	// InBounds reports whether pos lies inside the grid.
	InBounds(pos Coordinate) bool

	// AdjacentCells returns the in-bounds orthogonal neighbours of pos in +x, -x, +y, -y order.
	AdjacentCells(pos Coordinate) []Coordinate

	// HasPit reports whether a pit sits at pos.
	HasPit(pos Coordinate) bool

	// HasWumpus reports whether the wumpus sits at pos.
	HasWumpus(pos Coordinate) bool

	// HasGold reports whether uncollected gold lies at pos.
	HasGold(pos Coordinate) bool

	// CollectGold removes the gold at pos. It is a no-op when there is none.
	CollectGold(pos Coordinate)
}
