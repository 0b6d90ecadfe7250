// Package explorationapi provides the request and response bodies of the exploration API.
package explorationapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-wumpus/domain"
	"github.com/beka-birhanu/vinom-wumpus/game"
	"github.com/google/uuid"
)

// RunRequest carries a world in the line-record text format.
type RunRequest struct {
	World string `json:"world" binding:"required"`
}

// WorldRequest asks for a randomly generated world.
type WorldRequest struct {
	Width   int     `json:"width" binding:"required,min=1,max=9"`
	Height  int     `json:"height" binding:"required,min=1,max=9"`
	PitProb float32 `json:"pit_prob" binding:"min=0,max=1"`
	Gold    int     `json:"gold" binding:"min=0"`
	Wumpus  bool    `json:"wumpus"`
	Seed    int64   `json:"seed"`
}

// WorldResponse holds a generated world.
type WorldResponse struct {
	World string `json:"world"`
}

// EventResponse is one exploration event with its progress line.
type EventResponse struct {
	Kind    game.EventKind   `json:"kind"`
	At      game.Coordinate  `json:"at"`
	From    *game.Coordinate `json:"from,omitempty"`
	To      *game.Coordinate `json:"to,omitempty"`
	Message string           `json:"message"`
}

// RunResponse summarizes a run.
type RunResponse struct {
	ID            uuid.UUID        `json:"id"`
	Status        dmn.RunStatus    `json:"status"`
	Steps         int              `json:"steps"`
	Visited       int              `json:"visited"`
	Safe          int              `json:"safe"`
	GoldCollected int              `json:"gold_collected"`
	Halted        bool             `json:"halted"`
	Position      *game.Coordinate `json:"position,omitempty"`
	Error         string           `json:"error,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// RunDetailResponse is a run with its world and event stream.
type RunDetailResponse struct {
	RunResponse
	World  string          `json:"world"`
	Events []EventResponse `json:"events"`
}

func toRunResponse(r *dmn.Run) RunResponse {
	res := RunResponse{
		ID:            r.ID,
		Status:        r.Status,
		GoldCollected: r.GoldCollected,
		Error:         r.Error,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.Final != nil {
		pos := r.Final.Position
		res.Steps = r.Final.Steps
		res.Visited = len(r.Final.Visited)
		res.Safe = len(r.Final.Safe)
		res.Halted = r.Final.Halted
		res.Position = &pos
	}
	return res
}

func toRunDetailResponse(r *dmn.Run) RunDetailResponse {
	return RunDetailResponse{
		RunResponse: toRunResponse(r),
		World:       r.World,
		Events:      toEventResponses(r.Events),
	}
}

func toEventResponses(events []game.StepResult) []EventResponse {
	res := make([]EventResponse, 0, len(events))
	for _, e := range events {
		ev := EventResponse{Kind: e.Kind, At: e.At, Message: e.String()}
		if e.Kind == game.EventMoved {
			from, to := e.From, e.To
			ev.From, ev.To = &from, &to
		}
		res = append(res, ev)
	}
	return res
}
