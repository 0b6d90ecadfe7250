package game

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// AgentState is everything the agent knows about the world it explores.
// Visited and safe only grow. The frontier holds safe cells not yet visited
// and remembers the order in which they were proven safe.
type AgentState struct {
	Position Coordinate // Current cell of the agent.

	visited  mapset.Set[Coordinate]
	safe     mapset.Set[Coordinate]
	frontier mapset.Set[Coordinate]
	order    []Coordinate // frontier members, oldest first
}

// NewAgentState places the agent on start, which is safe by definition.
func NewAgentState(start Coordinate) *AgentState {
	s := &AgentState{
		Position: start,
		visited:  mapset.New[Coordinate](),
		safe:     mapset.New[Coordinate](),
		frontier: mapset.New[Coordinate](),
	}
	s.safe.Put(start)
	return s
}

// Visit records pos as visited and drops it from the frontier.
func (s *AgentState) Visit(pos Coordinate) {
	s.visited.Put(pos)
	if s.frontier.Has(pos) {
		s.frontier.Remove(pos)
		s.order = slices.DeleteFunc(s.order, func(c Coordinate) bool { return c == pos })
	}
}

// MarkSafe records pos as safe. Unvisited cells also join the frontier.
// Marking a cell twice changes nothing.
func (s *AgentState) MarkSafe(pos Coordinate) {
	s.safe.Put(pos)
	if s.visited.Has(pos) || s.frontier.Has(pos) {
		return
	}
	s.frontier.Put(pos)
	s.order = append(s.order, pos)
}

// PopFrontier removes and returns the oldest frontier member.
// Any member would be a sound choice; the oldest keeps runs reproducible.
func (s *AgentState) PopFrontier() (Coordinate, bool) {
	if len(s.order) == 0 {
		return Coordinate{}, false
	}
	next := s.order[0]
	s.order = s.order[1:]
	s.frontier.Remove(next)
	return next, true
}

// IsVisited reports whether the agent has stood on pos.
func (s *AgentState) IsVisited(pos Coordinate) bool {
	return s.visited.Has(pos)
}

// IsSafe reports whether pos is proven safe.
func (s *AgentState) IsSafe(pos Coordinate) bool {
	return s.safe.Has(pos)
}

// InFrontier reports whether pos is safe and still unvisited.
func (s *AgentState) InFrontier(pos Coordinate) bool {
	return s.frontier.Has(pos)
}

// FrontierLen returns the number of candidate moves.
func (s *AgentState) FrontierLen() int {
	return len(s.order)
}

// Visited returns the visited cells sorted row by row.
func (s *AgentState) Visited() []Coordinate {
	return sortedMembers(s.visited)
}

// Safe returns the safe cells sorted row by row.
func (s *AgentState) Safe() []Coordinate {
	return sortedMembers(s.safe)
}

// Frontier returns the frontier in selection order.
func (s *AgentState) Frontier() []Coordinate {
	return slices.Clone(s.order)
}

func sortedMembers(set mapset.Set[Coordinate]) []Coordinate {
	members := make([]Coordinate, 0, set.Size())
	set.Each(func(c Coordinate) {
		members = append(members, c)
	})
	slices.SortFunc(members, compareCoordinates)
	return members
}

func compareCoordinates(a, b Coordinate) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
