package explorationapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-wumpus/api"
	apii "github.com/beka-birhanu/vinom-wumpus/api/i"
	"github.com/beka-birhanu/vinom-wumpus/api/identity"
	dmn "github.com/beka-birhanu/vinom-wumpus/domain"
	"github.com/beka-birhanu/vinom-wumpus/game"
	pb "github.com/beka-birhanu/vinom-wumpus/game/pb_encoder"
	logger "github.com/beka-birhanu/vinom-wumpus/infrastruture/log"
	"github.com/beka-birhanu/vinom-wumpus/infrastruture/repo"
	"github.com/beka-birhanu/vinom-wumpus/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-wumpus/infrastruture/token"
	"github.com/beka-birhanu/vinom-wumpus/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWorld = "M44\nA11\nP33\nG22\n"

type testServer struct {
	engine    *gin.Engine
	tokenizer *token.JwtService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log, err := logger.New("TEST", "", io.Discard)
	require.NoError(t, err)

	dispatcher := service.NewDispatcher(sortedstorage.NewMemorySortedQueue(), log, nil)
	explorer, err := service.NewExplorationService(&service.ExplorationConfig{
		Runs:       repo.NewMemoryRunRepo(),
		Dispatcher: dispatcher,
		Logger:     log,
	})
	require.NoError(t, err)

	controller, err := NewController(explorer, &pb.Protobuf{})
	require.NoError(t, err)

	tokenizer := token.NewJwtService("secret", "test")
	router := api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Mode:                    gin.TestMode,
		Controllers:             []apii.Controller{controller},
		AuthorizationMiddleware: identity.Authoriz(tokenizer),
	})
	return &testServer{engine: router.Engine(), tokenizer: tokenizer}
}

func (s *testServer) do(t *testing.T, method, path, owner string, body interface{}, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if owner != "" {
		tok, err := s.tokenizer.Generate(map[string]interface{}{"sub": owner}, time.Minute)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestNewController(t *testing.T) {
	_, err := NewController(nil, &pb.Protobuf{})
	assert.ErrorIs(t, err, service.ErrMissingPort)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/api/v1/health", "", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExploreRoute(t *testing.T) {
	s := newTestServer(t)

	t.Run("requires a token", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/runs", "", RunRequest{World: testWorld}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("explores the world", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/runs", "alice", RunRequest{World: testWorld}, nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		res := decode[RunDetailResponse](t, rec)
		assert.Equal(t, dmn.RunStatusCompleted, res.Status)
		assert.Equal(t, 14, res.Visited)
		assert.Equal(t, 1, res.GoldCollected)
		assert.True(t, res.Halted)
		require.NotEmpty(t, res.Events)
		assert.Equal(t, "Moving from (1, 1) to (2, 1)", res.Events[0].Message)
		assert.Equal(t, "No more safe moves. Agent will stop.", res.Events[len(res.Events)-1].Message)
	})

	t.Run("rejects a malformed world", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/runs", "alice", RunRequest{World: "M44\nQ11"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a missing world", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/runs", "alice", map[string]string{}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubmitRoute(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/runs/queue", "bob", RunRequest{World: testWorld}, nil)
	require.Equal(t, http.StatusAccepted, rec.Code)

	res := decode[RunResponse](t, rec)
	assert.Equal(t, "/api/v1/runs/"+res.ID.String(), rec.Header().Get("Location"))

	require.Eventually(t, func() bool {
		rec := s.do(t, http.MethodGet, "/api/v1/runs/"+res.ID.String(), "bob", nil, nil)
		if rec.Code != http.StatusOK {
			return false
		}
		return decode[RunResponse](t, rec).Status == dmn.RunStatusCompleted
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRunRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/runs", "alice", RunRequest{World: testWorld}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[RunDetailResponse](t, rec)
	runPath := "/api/v1/runs/" + created.ID.String()

	t.Run("fetches an owned run", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, runPath, "alice", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		res := decode[RunDetailResponse](t, rec)
		assert.Equal(t, created.ID, res.ID)
		assert.Equal(t, testWorld, res.World)
	})

	t.Run("hides runs of other callers", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, runPath, "mallory", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown run", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/runs/"+uuid.NewString(), "alice", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/runs/not-a-uuid", "alice", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("lists the caller's runs", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/runs", "alice", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]RunResponse](t, rec), 1)

		rec = s.do(t, http.MethodGet, "/api/v1/runs", "mallory", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decode[[]RunResponse](t, rec))
	})

	t.Run("events as json", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, runPath+"/events", "alice", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created.Events, decode[[]EventResponse](t, rec))
	})

	t.Run("events as protobuf", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, runPath+"/events", "alice", nil, map[string]string{"Accept": pb.ContentType})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, pb.ContentType, rec.Header().Get("Content-Type"))

		events, err := (&pb.Protobuf{}).UnmarshalEvents(rec.Body.Bytes())
		require.NoError(t, err)
		require.Len(t, events, len(created.Events))
		assert.Equal(t, game.EventHalted, events[len(events)-1].Kind)
	})
}

func TestRandomWorldRoute(t *testing.T) {
	s := newTestServer(t)

	t.Run("generates a loadable world", func(t *testing.T) {
		req := WorldRequest{Width: 5, Height: 4, PitProb: 0.2, Gold: 1, Wumpus: true, Seed: 3}
		rec := s.do(t, http.MethodPost, "/api/v1/worlds/random", "", req, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		world := decode[WorldResponse](t, rec).World
		assert.Contains(t, world, "M54")

		rec = s.do(t, http.MethodPost, "/api/v1/runs", "alice", RunRequest{World: world}, nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rejects oversized worlds", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/worlds/random", "", WorldRequest{Width: 12, Height: 4}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
