package api

import (
	"context"
	"fmt"
	"os"

	"github.com/Aalzard/DRUNKPENGUINS/api/controllers"
	"github.com/Aalzard/DRUNKPENGUINS/api/transport"
	"github.com/Aalzard/DRUNKPENGUINS/catalog"
	"github.com/Aalzard/DRUNKPENGUINS/logging"
	"github.com/Aalzard/DRUNKPENGUINS/rating"
	"github.com/Aalzard/DRUNKPENGUINS/storage"
	"github.com/Aalzard/DRUNKPENGUINS/verdict"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)
	ctx := context.Background()

	// Fixed squad configuration
	directory := rating.DefaultDirectory()
	scale := rating.DefaultScale()

	// Create storage
	catalogStorage := s.buildStorage(ctx)

	// The shared catalog: loaded once, written back after every mutation
	store := catalog.NewStore(catalogStorage, directory)
	store.Load(ctx)

	verdictClient := verdict.NewClient(ctx, s.config.GeminiAPIKey, directory, scale)

	//Register controllers
	gameController := controllers.NewGameController(store, directory)
	gameController.RegisterRoutes(r)
	ratingController := controllers.NewRatingController(store, directory, scale)
	ratingController.RegisterRoutes(r)
	metaController := controllers.NewMetaController(directory, scale)
	metaController.RegisterRoutes(r)
	verdictController := controllers.NewVerdictController(store, verdictClient)
	verdictController.RegisterRoutes(r)
	adminController := controllers.NewAdminController(store)
	adminController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

func (s *Server) buildStorage(ctx context.Context) storage.CatalogStorage {
	if s.config.Driver == "memory" || s.config.TableNameCatalog == "" {
		logging.Log.Warn("Using in-memory catalog storage, state will not survive a restart")
		return &storage.MemoryCatalogStorage{}
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}

	return &storage.DynamoCatalogStorage{
		Client:    dynamodb.NewFromConfig(cfg),
		TableName: s.config.TableNameCatalog,
	}
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
