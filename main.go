package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-wumpus/api"
	explorationapi "github.com/beka-birhanu/vinom-wumpus/api/exploration"
	api_i "github.com/beka-birhanu/vinom-wumpus/api/i"
	"github.com/beka-birhanu/vinom-wumpus/api/identity"
	"github.com/beka-birhanu/vinom-wumpus/config"
	pb "github.com/beka-birhanu/vinom-wumpus/game/pb_encoder"
	logger "github.com/beka-birhanu/vinom-wumpus/infrastruture/log"
	"github.com/beka-birhanu/vinom-wumpus/infrastruture/repo"
	"github.com/beka-birhanu/vinom-wumpus/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-wumpus/infrastruture/token"
	"github.com/beka-birhanu/vinom-wumpus/service"
	"github.com/beka-birhanu/vinom-wumpus/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient           *mongo.Client
	redisClient           *redis.Client
	runRepo               i.RunRepo
	runQueue              i.SortedQueue
	dispatcher            i.Dispatcher
	explorationService    i.Explorer
	explorationController api_i.Controller
	jwtTokenizer          i.Tokenizer
	router                *api.Router
	appLogger             *logger.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRunRepo() {
	var err error
	runRepo, err = repo.NewStore(config.Envs.Store, mongoClient, config.Envs.DBName)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating run repository: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Run repository initialized (%s)", config.Envs.Store))
}

func initRunQueue() {
	if redisClient == nil {
		runQueue = sortedstorage.NewMemorySortedQueue()
		appLogger.Info("In-memory run queue initialized")
		return
	}
	runQueue = sortedstorage.NewRedisSortedQueue(redisClient, config.Envs.QueueTTL)
	appLogger.Info("Redis run queue initialized")
}

func initDispatcher() {
	dispatchLogger, err := logger.New("DISPATCHER", config.ColorPurple, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating dispatcher logger: %v", err))
		os.Exit(1)
	}

	dispatcher = service.NewDispatcher(runQueue, dispatchLogger, &service.DispatcherOptions{
		Batch: int64(config.Envs.QueueBatch),
	})
	appLogger.Info("Dispatcher initialized")
}

func initExplorationService() {
	explorationLogger, err := logger.New("EXPLORER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating exploration logger: %v", err))
		os.Exit(1)
	}

	explorationService, err = service.NewExplorationService(&service.ExplorationConfig{
		Runs:       runRepo,
		Dispatcher: dispatcher,
		Logger:     explorationLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating exploration service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Exploration service initialized")
}

func initExplorationController() {
	var err error
	explorationController, err = explorationapi.NewController(explorationService, &pb.Protobuf{})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating exploration controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Exploration controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{explorationController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)
	config.Load()

	if config.Envs.Store == config.StoreMongo {
		initMongo(ctx)
		defer func() {
			_ = mongoClient.Disconnect(context.Background())
		}()

		initRedis(ctx)
		defer redisClient.Close()
	}

	initRunRepo()
	initRunQueue()
	initDispatcher()
	initExplorationService()
	initExplorationController()
	initJWTTokenizer()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
