package game

import "fmt"

// EventKind tells what happened during an exploration step.
type EventKind string

// Event kinds emitted by the explorer.
const (
	EventCollected EventKind = "collected" // Gold picked up at At.
	EventMoved     EventKind = "moved"     // Agent moved From -> To.
	EventHalted    EventKind = "halted"    // No safe move remains.
)

// StepResult is one event of the exploration stream.
type StepResult struct {
	Kind EventKind  `json:"kind"`
	At   Coordinate `json:"at"`
	From Coordinate `json:"from"`
	To   Coordinate `json:"to"`
}

// Collected builds a gold collection event.
func Collected(at Coordinate) StepResult {
	return StepResult{Kind: EventCollected, At: at}
}

// Moved builds a move event.
func Moved(from, to Coordinate) StepResult {
	return StepResult{Kind: EventMoved, At: to, From: from, To: to}
}

// HaltedAt builds the terminal event.
func HaltedAt(at Coordinate) StepResult {
	return StepResult{Kind: EventHalted, At: at}
}

// String renders the event as a progress line.
func (r StepResult) String() string {
	switch r.Kind {
	case EventCollected:
		return fmt.Sprintf("Gold collected at %s!", r.At)
	case EventMoved:
		return fmt.Sprintf("Moving from %s to %s", r.From, r.To)
	case EventHalted:
		return "No more safe moves. Agent will stop."
	default:
		return fmt.Sprintf("unknown event %q", string(r.Kind))
	}
}
