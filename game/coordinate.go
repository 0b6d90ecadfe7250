package game

import "fmt"

// Coordinate is a 1-based cell position in a world grid.
// It is a value type; two coordinates are equal when X and Y match.
type Coordinate struct {
	X int `json:"x" bson:"x"` // Column, 1 is the west edge.
	Y int `json:"y" bson:"y"` // Row, 1 is the south edge.
}

// Directions lists the orthogonal unit steps in the order neighbours are reported.
var Directions = []Coordinate{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// Add returns the coordinate shifted by delta.
func (c Coordinate) Add(delta Coordinate) Coordinate {
	return Coordinate{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// String renders the coordinate as "(x, y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
