package pb

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-wumpus/game"
	"google.golang.org/protobuf/types/known/structpb"
)

var ErrMalformedPayload = errors.New("malformed payload")

// Field names shared by events and snapshots.
const (
	fieldKind     = "kind"
	fieldAt       = "at"
	fieldFrom     = "from"
	fieldTo       = "to"
	fieldX        = "x"
	fieldY        = "y"
	fieldPosition = "position"
	fieldVisited  = "visited"
	fieldSafe     = "safe"
	fieldFrontier = "frontier"
	fieldSteps    = "steps"
	fieldGold     = "gold_collected"
	fieldHalted   = "halted"
)

func coordinateToMap(c game.Coordinate) map[string]interface{} {
	return map[string]interface{}{fieldX: c.X, fieldY: c.Y}
}

func coordinatesToSlice(cs []game.Coordinate) []interface{} {
	out := make([]interface{}, 0, len(cs))
	for _, c := range cs {
		out = append(out, coordinateToMap(c))
	}
	return out
}

func eventToMap(e game.StepResult) map[string]interface{} {
	return map[string]interface{}{
		fieldKind: string(e.Kind),
		fieldAt:   coordinateToMap(e.At),
		fieldFrom: coordinateToMap(e.From),
		fieldTo:   coordinateToMap(e.To),
	}
}

func eventsToList(events []game.StepResult) (*structpb.ListValue, error) {
	raw := make([]interface{}, 0, len(events))
	for _, e := range events {
		raw = append(raw, eventToMap(e))
	}
	return structpb.NewList(raw)
}

func eventsFromList(list *structpb.ListValue) ([]game.StepResult, error) {
	events := make([]game.StepResult, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		st := v.GetStructValue()
		if st == nil {
			return nil, fmt.Errorf("%w: event %d is not an object", ErrMalformedPayload, i)
		}
		events = append(events, eventFromStruct(st))
	}
	return events, nil
}

func eventFromStruct(st *structpb.Struct) game.StepResult {
	f := st.GetFields()
	return game.StepResult{
		Kind: game.EventKind(f[fieldKind].GetStringValue()),
		At:   coordinateFromValue(f[fieldAt]),
		From: coordinateFromValue(f[fieldFrom]),
		To:   coordinateFromValue(f[fieldTo]),
	}
}

func coordinateFromValue(v *structpb.Value) game.Coordinate {
	f := v.GetStructValue().GetFields()
	return game.Coordinate{
		X: int(f[fieldX].GetNumberValue()),
		Y: int(f[fieldY].GetNumberValue()),
	}
}

func coordinatesFromValue(v *structpb.Value) []game.Coordinate {
	values := v.GetListValue().GetValues()
	out := make([]game.Coordinate, 0, len(values))
	for _, c := range values {
		out = append(out, coordinateFromValue(c))
	}
	return out
}

func snapshotToStruct(s game.Snapshot) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		fieldPosition: coordinateToMap(s.Position),
		fieldVisited:  coordinatesToSlice(s.Visited),
		fieldSafe:     coordinatesToSlice(s.Safe),
		fieldFrontier: coordinatesToSlice(s.Frontier),
		fieldSteps:    s.Steps,
		fieldGold:     s.GoldCollected,
		fieldHalted:   s.Halted,
	})
}

func snapshotFromStruct(st *structpb.Struct) (game.Snapshot, error) {
	f := st.GetFields()
	if _, ok := f[fieldPosition]; !ok {
		return game.Snapshot{}, fmt.Errorf("%w: snapshot has no position", ErrMalformedPayload)
	}
	return game.Snapshot{
		Position:      coordinateFromValue(f[fieldPosition]),
		Visited:       coordinatesFromValue(f[fieldVisited]),
		Safe:          coordinatesFromValue(f[fieldSafe]),
		Frontier:      coordinatesFromValue(f[fieldFrontier]),
		Steps:         int(f[fieldSteps].GetNumberValue()),
		GoldCollected: int(f[fieldGold].GetNumberValue()),
		Halted:        f[fieldHalted].GetBoolValue(),
	}, nil
}
