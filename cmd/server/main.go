package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"triage-chatbot/internal/bank"
	"triage-chatbot/internal/cache"
	"triage-chatbot/internal/config"
	"triage-chatbot/internal/embedding"
	"triage-chatbot/internal/repository"
	"triage-chatbot/internal/service"
	"triage-chatbot/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()
	cfg := config.Load()

	// Catalog load degrades to an empty bank instead of failing: the
	// service stays responsive and answers "no match" until reseeded.
	bnk := loadBank(ctx, cfg)
	log.Printf("question bank: %d items, %d diff clusters", bnk.Len(), len(bnk.DiffClusters()))

	// Redis holds the per-conversation state; without it no conversation
	// can span two turns, so this one is fatal.
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	if cfg.OpenAIKey != "" {
		log.Println("OpenAI API key: configured ✓")
	} else {
		log.Println("OpenAI API key: NOT SET (embedding turns will fail)")
	}
	encoder := embedding.NewOpenAIEncoder(cfg.OpenAIKey, cfg.EmbeddingModel)
	ranker := embedding.NewRanker(encoder, bnk)

	stateCache := cache.NewStateCache(rdb, cfg.ChatStateTTL)
	tokenSvc := service.NewTokenService(cfg.JWTSecret, cfg.ChatStateTTL)

	heurSvc := service.NewHeuristicService()
	batchSvc := service.NewBatchService(bnk, ranker)
	filterSvc := service.NewContextFilterService()
	diffSvc := service.NewDiffService(bnk)
	scoringSvc := service.NewScoringService(bnk)
	chatSvc := service.NewChatService(
		bnk, ranker, heurSvc, batchSvc, filterSvc, diffSvc, scoringSvc,
		cfg.RankTopK, cfg.RankMinSim, cfg.BatchPerFamily, cfg.BatchMaxGroups,
	)

	router := rest.NewRouter(&rest.Container{
		ChatService:  chatSvc,
		TokenService: tokenSvc,
		StateCache:   stateCache,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/chat")
		log.Println("  WS   /v1/ws/chat")
		log.Println("  GET  /health")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// loadBank connects to MongoDB and loads the triage catalogs. Every
// failure path logs a warning and degrades to less data rather than
// aborting startup.
func loadBank(ctx context.Context, cfg *config.Config) *bank.Bank {
	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Printf("Warning: MongoDB connect failed, starting with empty catalog: %v", err)
		return bank.Empty()
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		log.Printf("Warning: MongoDB ping failed, starting with empty catalog: %v", err)
		client.Disconnect(ctx)
		return bank.Empty()
	}
	defer client.Disconnect(ctx)

	repo := repository.NewCatalogRepo(client.Database(cfg.MongoDB))

	items, err := repo.LoadQuestionBank(ctx)
	if err != nil {
		log.Printf("Warning: question bank load failed: %v", err)
		items = nil
	}
	clusters, err := repo.LoadDiffBank(ctx)
	if err != nil {
		log.Printf("Warning: diff bank load failed: %v", err)
		clusters = nil
	}
	overrides, err := repo.LoadLabelOverrides(ctx)
	if err != nil {
		log.Printf("Warning: label overrides load failed, keeping defaults: %v", err)
		overrides = nil
	}

	return bank.New(items, clusters, overrides)
}
