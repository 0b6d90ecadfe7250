package game

// Status is the lifecycle state of an explorer.
type Status int

// Explorer statuses.
const (
	StatusRunning Status = iota // Steps still possible.
	StatusHalted                // Frontier exhausted; terminal.
)

// ExplorerOption configures an Explorer.
type ExplorerOption func(*Explorer)

// WithObserver registers fn to receive every event as soon as it is emitted.
// fn runs on the stepping goroutine between state mutations and must not block.
func WithObserver(fn func(StepResult)) ExplorerOption {
	return func(e *Explorer) {
		e.observers = append(e.observers, fn)
	}
}

// Explorer drives an agent across a world, one cell per step, until no proven-safe
// cell is left to visit. It is not safe for concurrent use.
type Explorer struct {
	world     World
	state     *AgentState
	status    Status
	steps     int
	gold      int
	observers []func(StepResult)
}

// Snapshot is a copy of the explorer state taken between steps.
type Snapshot struct {
	Position      Coordinate   `json:"position"`
	Visited       []Coordinate `json:"visited"`
	Safe          []Coordinate `json:"safe"`
	Frontier      []Coordinate `json:"frontier"`
	Steps         int          `json:"steps"`
	GoldCollected int          `json:"gold_collected"`
	Halted        bool         `json:"halted"`
}

// NewExplorer places a new agent on start.
// start must lie inside w; validating it is the caller's job.
func NewExplorer(w World, start Coordinate, opts ...ExplorerOption) *Explorer {
	e := &Explorer{
		world:  w,
		state:  NewAgentState(start),
		status: StatusRunning,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Step performs one transition: visit the current cell, infer, collect gold, then
// move to a frontier cell or halt. It returns the events of the step in order.
// A halted explorer emits nothing.
func (e *Explorer) Step() []StepResult {
	if e.status == StatusHalted {
		return nil
	}

	var results []StepResult
	pos := e.state.Position
	e.steps++
	e.state.Visit(pos)
	Infer(e.world, pos, e.state)

	if e.world.HasGold(pos) {
		e.world.CollectGold(pos)
		e.gold++
		results = append(results, e.emit(Collected(pos)))
	}

	next, ok := e.state.PopFrontier()
	if !ok {
		e.status = StatusHalted
		return append(results, e.emit(HaltedAt(pos)))
	}

	e.state.Position = next
	return append(results, e.emit(Moved(pos, next)))
}

// Run steps until the explorer halts and returns every event emitted.
// It finishes within Width*Height steps because each step visits a new cell.
func (e *Explorer) Run() []StepResult {
	var results []StepResult
	for !e.Halted() {
		results = append(results, e.Step()...)
	}
	return results
}

// Halted reports whether the explorer reached its terminal state.
func (e *Explorer) Halted() bool {
	return e.status == StatusHalted
}

// Status returns the current lifecycle state.
func (e *Explorer) Status() Status {
	return e.status
}

// Steps returns the number of transitions performed so far.
func (e *Explorer) Steps() int {
	return e.steps
}

// GoldCollected returns the number of gold pieces picked up.
func (e *Explorer) GoldCollected() int {
	return e.gold
}

// Position returns the current cell of the agent.
func (e *Explorer) Position() Coordinate {
	return e.state.Position
}

// Snapshot copies the agent state for observers.
func (e *Explorer) Snapshot() Snapshot {
	return Snapshot{
		Position:      e.state.Position,
		Visited:       e.state.Visited(),
		Safe:          e.state.Safe(),
		Frontier:      e.state.Frontier(),
		Steps:         e.steps,
		GoldCollected: e.gold,
		Halted:        e.Halted(),
	}
}

func (e *Explorer) emit(r StepResult) StepResult {
	for _, fn := range e.observers {
		fn(r)
	}
	return r
}
