package game

// Encoder serializes exploration output for transport.
type Encoder interface {
	MarshalEvents(events []StepResult) ([]byte, error)
	UnmarshalEvents(b []byte) ([]StepResult, error)
	MarshalSnapshot(s Snapshot) ([]byte, error)
	UnmarshalSnapshot(b []byte) (Snapshot, error)
}
