package explorationapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-wumpus/api/identity"
	dmn "github.com/beka-birhanu/vinom-wumpus/domain"
	"github.com/beka-birhanu/vinom-wumpus/game"
	pb "github.com/beka-birhanu/vinom-wumpus/game/pb_encoder"
	"github.com/beka-birhanu/vinom-wumpus/service"
	"github.com/beka-birhanu/vinom-wumpus/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Controller exposes exploration runs over HTTP.
type Controller struct {
	explorer i.Explorer
	encoder  game.Encoder
}

// NewController creates a Controller. Event streams requested as protobuf are written with encoder.
func NewController(explorer i.Explorer, encoder game.Encoder) (*Controller, error) {
	if explorer == nil || encoder == nil {
		return nil, service.ErrMissingPort
	}
	return &Controller{explorer: explorer, encoder: encoder}, nil
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/health", c.health)
	route.POST("/worlds/random", c.randomWorld)
}

// RegisterProtected registers protected routes.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {
	runs := route.Group("/runs")
	{
		runs.POST("", c.explore)
		runs.POST("/queue", c.submit)
		runs.GET("", c.list)
		runs.GET("/:ID", c.run)
		runs.GET("/:ID/events", c.events)
	}
}

func (c *Controller) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// explore runs a world synchronously.
func (c *Controller) explore(ctx *gin.Context) {
	owner, request, ok := c.bindRun(ctx)
	if !ok {
		return
	}

	run, err := c.explorer.Explore(ctx.Request.Context(), owner, request.World)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toRunDetailResponse(run))
}

// submit queues a world for background exploration.
func (c *Controller) submit(ctx *gin.Context) {
	owner, request, ok := c.bindRun(ctx)
	if !ok {
		return
	}

	run, err := c.explorer.Submit(ctx.Request.Context(), owner, request.World)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Header("Location", strings.TrimSuffix(ctx.FullPath(), "/queue")+"/"+run.ID.String())
	ctx.JSON(http.StatusAccepted, toRunResponse(run))
}

func (c *Controller) list(ctx *gin.Context) {
	owner, ok := identity.Subject(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	runs, err := c.explorer.Runs(ctx.Request.Context(), owner)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]RunResponse, 0, len(runs))
	for _, r := range runs {
		response = append(response, toRunResponse(r))
	}
	ctx.JSON(http.StatusOK, response)
}

func (c *Controller) run(ctx *gin.Context) {
	run, ok := c.ownedRun(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, toRunDetailResponse(run))
}

// events writes the event stream of a run, as protobuf when the client accepts it.
func (c *Controller) events(ctx *gin.Context) {
	run, ok := c.ownedRun(ctx)
	if !ok {
		return
	}

	if strings.Contains(ctx.GetHeader("Accept"), pb.ContentType) {
		payload, err := c.encoder.MarshalEvents(run.Events)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.Data(http.StatusOK, pb.ContentType, payload)
		return
	}

	ctx.JSON(http.StatusOK, toEventResponses(run.Events))
}

func (c *Controller) randomWorld(ctx *gin.Context) {
	var request WorldRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	world, err := c.explorer.RandomWorld(i.WorldRequest{
		Width:   request.Width,
		Height:  request.Height,
		PitProb: request.PitProb,
		Gold:    request.Gold,
		Wumpus:  request.Wumpus,
		Seed:    request.Seed,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, WorldResponse{World: world})
}

func (c *Controller) bindRun(ctx *gin.Context) (string, RunRequest, bool) {
	var request RunRequest
	owner, ok := identity.Subject(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return "", request, false
	}

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", request, false
	}
	return owner, request, true
}

// ownedRun loads the run named in the path. Runs of other callers are reported as missing.
func (c *Controller) ownedRun(ctx *gin.Context) (*dmn.Run, bool) {
	owner, ok := identity.Subject(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return nil, false
	}

	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return nil, false
	}

	run, err := c.explorer.Run(ctx.Request.Context(), ID)
	if err == nil && run.Owner != owner {
		err = dmn.ErrRunNotFound
	}
	if err != nil {
		writeError(ctx, err)
		return nil, false
	}
	return run, true
}

func writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidWorld), errors.Is(err, service.ErrInvalidRequest):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, dmn.ErrRunNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
