package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	IS_PROD                         = false
	LOG_LEVEL_PROD                  = slog.LevelInfo
	FALLBACK_REDIS_TO_INTERNALSTORE = true //if redis init fails, it falls back to in-memory stores
	TRACE_ID_KEY                    = "traceId"
	RATE_LIMIT_PER_SECOND           = 2
	BURST_RATE_LIMIT_PER_SECOND     = 5

	//analysis pipeline
	ExtractedTextCap    = 50000 //max chars of extracted text persisted on a document
	AITextWindow        = 12000 //chars of extracted text sent to the AI provider
	MinAnalyzableLength = 10    //below this the run fails with "no extractable text content"
	PDFFallbackMinChars = 50    //fallback text shorter than this is treated as a scanned image
	SummaryMaxLength    = 500

	//semantic cache for AI augmentor results
	CacheSimilarityCutoff               = 0.97
	EmbeddingOutputDimensionality int32 = 1536
	AICacheCollection                   = "ai-insights-cache"

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 30 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//batch job buffer limit
	BufferLimit = 100

	//vectorDB
	QdrantHost             = ""
	QdrantGrpcPort         = 6334
	QdrantUseTLS           = false
	QdrantPoolSize         = 1
	QdrantKeepAliveTimeout = 30 * time.Second

	//ai providers
	GeminiModelName      = "gemini-2.5-flash-lite-preview-09-2025"
	OpenAIModelName      = "gpt-4o-mini"
	GoogleEmbeddingModel = "gemini-embedding-001"
	AICallTimeout        = 45 * time.Second
	StorageCallTimeout   = 30 * time.Second

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	//redis has 16 DB we can use
	RedisDocumentStore = 0
	RedisClaimStore    = 1

	//case data never expires on its own
	RedisDocumentStoreTTL = time.Duration(0)
	RedisClaimStoreTTL    = time.Duration(0)
)

var (
	RedisPassword = os.Getenv("REDIS_PASSWORD")
	AuthToken     = os.Getenv("API_AUTH_TOKEN")
	NoAuthBypass  = os.Getenv("API_AUTH_TOKEN") == "" //no token configured means local dev

	GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	AIProvider   = getEnvDefault("AI_PROVIDER", "gemini") //"gemini" | "openai" | "none"

	//AI category only overrides the keyword classifier above this confidence
	AICategoryConfidenceGate = getEnvFloat("AI_CONFIDENCE_GATE", 0.7)

	//root directory the storage port resolves paths against
	StorageRoot = getEnvDefault("STORAGE_ROOT", "case_files")
)

func getEnvDefault(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
