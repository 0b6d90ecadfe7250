// Package pb encodes exploration events and snapshots as protobuf well-known types.
package pb

import (
	"github.com/beka-birhanu/vinom-wumpus/game"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ game.Encoder = &Protobuf{}

// ContentType is the media type of payloads produced by Protobuf.
const ContentType = "application/x-protobuf"

type Protobuf struct{}

// MarshalEvents implements game.Encoder.
func (p *Protobuf) MarshalEvents(events []game.StepResult) ([]byte, error) {
	list, err := eventsToList(events)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(list)
}

// UnmarshalEvents implements game.Encoder.
func (p *Protobuf) UnmarshalEvents(b []byte) ([]game.StepResult, error) {
	list := &structpb.ListValue{}
	if err := proto.Unmarshal(b, list); err != nil {
		return nil, err
	}
	return eventsFromList(list)
}

// MarshalSnapshot implements game.Encoder.
func (p *Protobuf) MarshalSnapshot(s game.Snapshot) ([]byte, error) {
	st, err := snapshotToStruct(s)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(st)
}

// UnmarshalSnapshot implements game.Encoder.
func (p *Protobuf) UnmarshalSnapshot(b []byte) (game.Snapshot, error) {
	st := &structpb.Struct{}
	if err := proto.Unmarshal(b, st); err != nil {
		return game.Snapshot{}, err
	}
	return snapshotFromStruct(st)
}
