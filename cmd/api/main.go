// @title           Document Intelligence API
// @version         1.0
// @description     Case document analysis: extraction, classification, summaries, AI augmentation and claim backfill
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bart800/Denham-cms-sub000/internal/analysis"
	"github.com/bart800/Denham-cms-sub000/internal/analysis/ai"
	"github.com/bart800/Denham-cms-sub000/internal/analysis/ai/gemini"
	"github.com/bart800/Denham-cms-sub000/internal/analysis/ai/openaiprov"
	"github.com/bart800/Denham-cms-sub000/internal/analysis/aicache"
	"github.com/bart800/Denham-cms-sub000/internal/analysis/embedding"
	"github.com/bart800/Denham-cms-sub000/internal/analysis/embedding/googleEmbedding"
	"github.com/bart800/Denham-cms-sub000/internal/config"
	"github.com/bart800/Denham-cms-sub000/internal/data/store"
	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
	jobmodel "github.com/bart800/Denham-cms-sub000/internal/domain/jobModel"
	"github.com/bart800/Denham-cms-sub000/internal/handlers"
	"github.com/bart800/Denham-cms-sub000/internal/job"
	"github.com/bart800/Denham-cms-sub000/internal/server"
	"github.com/bart800/Denham-cms-sub000/internal/storage"
	"github.com/bart800/Denham-cms-sub000/internal/worker"
	"github.com/bart800/Denham-cms-sub000/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//stores, with in-memory fallback when redis is offline
	var documentStore docmodel.DocumentStore
	var claimStore docmodel.ClaimStore
	redisDocs := store.GetRedisDocumentStore(serviceContext)
	redisClaims := store.GetRedisClaimStore(serviceContext)
	if redisDocs == nil || redisClaims == nil {
		logger.Error("Redis stores are offline")
		if !config.FALLBACK_REDIS_TO_INTERNALSTORE {
			return
		}
		documentStore = store.NewInMemoryDocumentStore()
		claimStore = store.NewInMemoryClaimStore()
	} else {
		documentStore = redisDocs
		claimStore = redisClaims
	}

	//optional AI stack; a nil provider runs the pipeline pattern-only
	var provider ai.Provider
	var embedder embedding.Embedder
	var resultCache ai.ResultCache

	switch config.AIProvider {
	case "openai":
		provider = openaiprov.GetOpenAIClient(config.OpenAIModelName, config.OpenAIAPIKey)
	case "none":
		logger.Info("AI augmentation disabled")
	default:
		provider = gemini.GetGeminiClient(serviceContext, config.GeminiModelName, config.GoogleAPIKey)
	}

	if provider != nil {
		embedder = googleEmbedding.GetGoogleEmbeddingClient(serviceContext, config.GoogleEmbeddingModel, config.GoogleAPIKey)
		if cache := aicache.GetQdrantCache(serviceContext); cache != nil {
			resultCache = cache
		}
		if embedder == nil || resultCache == nil {
			logger.Warn("AI result cache unavailable, every document hits the provider",
				"EmbeddingService", embedder != nil, "Cache", resultCache != nil)
		}
	}

	analysisService := analysis.NewService(
		documentStore,
		claimStore,
		storage.NewLocalStore(config.StorageRoot),
		provider,
		embedder,
		resultCache,
	)

	//init job service for batch analysis
	jobService := job.InitJobService(job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
	})
	logger.Info("Starting job service")

	handlers.InitHandlers(jobService, analysisService, documentStore)

	//init worker pool
	worker.InitServices(jobService, analysisService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
