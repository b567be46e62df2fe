package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"excel-mock-interviewer/internal/cache"
	"excel-mock-interviewer/internal/config"
	"excel-mock-interviewer/internal/question"
	"excel-mock-interviewer/internal/repository"
	"excel-mock-interviewer/internal/service"
	"excel-mock-interviewer/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}

	cfg := config.Load()
	aiCfg := config.DefaultOpenAIConfig()

	log.Printf("OpenAI config:")
	log.Printf("  Chat model:       %s", aiCfg.ChatModel)
	log.Printf("  Transcribe model: %s", aiCfg.TranscribeModel)
	log.Printf("  Speech model:     %s", aiCfg.SpeechModel)
	if aiCfg.IsEnabled() {
		log.Println("  API key:          configured")
	} else {
		log.Println("  API key:          NOT SET (using stub evaluator, text-only)")
	}

	// Question bank
	bank := question.Default()
	if cfg.BankPath != "" {
		var err error
		bank, err = question.LoadFile(cfg.BankPath)
		if err != nil {
			log.Fatal("Failed to load question bank: ", err)
		}
		log.Printf("Loaded %d questions from %s", bank.Len(), cfg.BankPath)
	} else {
		log.Printf("Using built-in question bank (%d questions)", bank.Len())
	}

	// Durable session store. A selected-but-unreachable backend is fatal:
	// starting without it would silently drop the durability guarantee.
	var store repository.SessionStore
	switch cfg.StoreBackend {
	case config.StoreMongo:
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatal("Failed to connect to MongoDB: ", err)
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			log.Fatal("Failed to ping MongoDB: ", err)
		}
		log.Println("Connected to MongoDB")
		store = repository.NewMongoSessionStore(mongoClient.Database(cfg.MongoDatabase))
	case config.StoreFile:
		fileStore, err := repository.NewFileSessionStore(cfg.DataDir)
		if err != nil {
			log.Fatal("Failed to open session dir: ", err)
		}
		log.Printf("Storing sessions under %s", cfg.DataDir)
		store = fileStore
	case config.StoreMemory:
		log.Println("Warning: memory store selected, sessions will not survive a restart")
		store = repository.NewMemorySessionStore()
	default:
		log.Fatalf("Unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	// Optional Redis read cache in front of the store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatal("Failed to ping Redis: ", err)
		}
		log.Println("Connected to Redis")
		store = cache.NewCachedSessionStore(store, cache.NewSessionCache(rdb, cfg.SessionTTL))
	}

	// Evaluation and speech clients
	var evaluator service.EvaluationClient
	var speech service.SpeechClient
	if aiCfg.IsEnabled() {
		evaluator = service.NewEvaluatorService(aiCfg)
		speech = service.NewSpeechService(aiCfg)
	} else {
		evaluator = service.NewStubEvaluator()
	}

	interviewSvc := service.NewInterviewService(store, bank, evaluator, speech)

	router := rest.NewRouter(&rest.Container{
		InterviewService: interviewSvc,
		Bank:             bank,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/interviews")
		log.Println("  GET  /v1/interviews/{id}/question")
		log.Println("  GET  /v1/interviews/{id}/question/audio")
		log.Println("  POST /v1/interviews/{id}/answers")
		log.Println("  POST /v1/interviews/{id}/evaluation")
		log.Println("  GET  /v1/interviews/{id}/status")
		log.Println("  GET  /v1/interviews/{id}/transcript")
		log.Println("  GET  /v1/questions")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe: ", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exited")
}
