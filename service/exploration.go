package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/vinom-wumpus/domain"
	"github.com/beka-birhanu/vinom-wumpus/game"
	"github.com/beka-birhanu/vinom-wumpus/game/wumpus"
	"github.com/beka-birhanu/vinom-wumpus/service/i"
	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxWorldSize     = 9
)

var (
	ErrInvalidWorld   = errors.New("invalid world")
	ErrInvalidRequest = errors.New("invalid world request")
	ErrMissingPort    = errors.New("exploration service dependency is missing")
)

var _ i.Explorer = &ExplorationService{}

// ExplorationConfig holds the dependencies of an ExplorationService.
type ExplorationConfig struct {
	Runs       i.RunRepo
	Dispatcher i.Dispatcher
	Logger     i.Logger
	ListLimit  int // Runs returned by Runs; defaults to 50.
}

// ExplorationService explores submitted worlds and records each run.
// Every exploration owns its world and explorer; nothing is shared between runs.
type ExplorationService struct {
	runs       i.RunRepo
	dispatcher i.Dispatcher
	logger     i.Logger
	listLimit  int
}

// NewExplorationService wires the service and registers it as the dispatcher's handler.
func NewExplorationService(c *ExplorationConfig) (*ExplorationService, error) {
	if c == nil || c.Runs == nil || c.Dispatcher == nil || c.Logger == nil {
		return nil, ErrMissingPort
	}

	s := &ExplorationService{
		runs:       c.Runs,
		dispatcher: c.Dispatcher,
		logger:     c.Logger,
		listLimit:  c.ListLimit,
	}
	if s.listLimit <= 0 {
		s.listLimit = defaultListLimit
	}

	c.Dispatcher.SetDispatchHandler(s.Process)
	return s, nil
}

// Explore parses world, explores it and stores the finished run.
func (s *ExplorationService) Explore(ctx context.Context, owner, world string) (*dmn.Run, error) {
	scenario, err := parseWorld(world)
	if err != nil {
		return nil, err
	}

	run := dmn.NewRun(owner, world)
	s.execute(run, scenario)
	if err := s.runs.Save(ctx, run); err != nil {
		s.logger.Error(fmt.Sprintf("Saving run %s: %s", run.ID, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Explored run %s for %s: %d events", run.ID, owner, len(run.Events)))
	return run, nil
}

// Submit validates world, stores it as a pending run and queues it for Process.
func (s *ExplorationService) Submit(ctx context.Context, owner, world string) (*dmn.Run, error) {
	if _, err := parseWorld(world); err != nil {
		return nil, err
	}

	run := dmn.NewRun(owner, world)
	if err := s.runs.Save(ctx, run); err != nil {
		s.logger.Error(fmt.Sprintf("Saving pending run %s: %s", run.ID, err))
		return nil, err
	}

	if err := s.dispatcher.PushToQueue(ctx, run.ID); err != nil {
		run.Fail(fmt.Errorf("queueing run: %w", err))
		_ = s.runs.Save(ctx, run)
		return nil, err
	}

	return run, nil
}

// Process explores queued runs. Runs that are already finished are skipped.
func (s *ExplorationService) Process(ctx context.Context, ids []uuid.UUID) {
	for _, id := range ids {
		run, err := s.runs.ByID(ctx, id)
		if err != nil {
			s.logger.Error(fmt.Sprintf("Loading queued run %s: %s", id, err))
			continue
		}
		if run.Done() {
			s.logger.Warning(fmt.Sprintf("Run %s already finished, skipping", id))
			continue
		}

		scenario, err := parseWorld(run.World)
		if err != nil {
			run.Fail(err)
		} else {
			s.execute(run, scenario)
		}

		if err := s.runs.Save(ctx, run); err != nil {
			s.logger.Error(fmt.Sprintf("Saving run %s: %s", id, err))
			continue
		}
		s.logger.Info(fmt.Sprintf("Processed queued run %s: %s", id, run.Status))
	}
}

// Run returns the run with the given ID.
func (s *ExplorationService) Run(ctx context.Context, id uuid.UUID) (*dmn.Run, error) {
	return s.runs.ByID(ctx, id)
}

// Runs lists the newest runs of owner.
func (s *ExplorationService) Runs(ctx context.Context, owner string) ([]*dmn.Run, error) {
	return s.runs.ByOwner(ctx, owner, s.listLimit)
}

// RandomWorld generates a world description that the loader accepts.
// A zero seed draws one from the clock.
func (s *ExplorationService) RandomWorld(req i.WorldRequest) (string, error) {
	if req.Width < 1 || req.Height < 1 || max(req.Width, req.Height) > maxWorldSize {
		return "", fmt.Errorf("%w: dimensions must be between 1 and %d", ErrInvalidRequest, maxWorldSize)
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	model := wumpus.HazardModel{PitProb: req.PitProb, Gold: req.Gold, Wumpus: req.Wumpus}
	scenario, err := wumpus.Generate(req.Width, req.Height, game.Coordinate{X: 1, Y: 1}, model, rng)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return scenario.Encode()
}

// execute explores scenario to completion and records the outcome on run.
func (s *ExplorationService) execute(run *dmn.Run, scenario *wumpus.Scenario) {
	run.Start()
	explorer := scenario.Explorer()
	events := explorer.Run()
	run.Complete(events, explorer.Snapshot())
}

func parseWorld(world string) (*wumpus.Scenario, error) {
	scenario, err := wumpus.ParseString(world)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorld, err)
	}
	return scenario, nil
}
