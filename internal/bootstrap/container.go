package bootstrap

import (
	"context"
	"log"

	"teaching-assistant-be/internal/config"
	"teaching-assistant-be/internal/controller"
	"teaching-assistant-be/internal/pkg/logger"
	"teaching-assistant-be/internal/repository/cache"
	"teaching-assistant-be/internal/repository/unitofwork"
	"teaching-assistant-be/internal/service"
	"teaching-assistant-be/pkg/agent"
	"teaching-assistant-be/pkg/embedding"
	"teaching-assistant-be/pkg/ingest"
	"teaching-assistant-be/pkg/llm/factory"
	pktNats "teaching-assistant-be/pkg/nats"
	"teaching-assistant-be/pkg/rag/relevance"
	"teaching-assistant-be/pkg/vectorstore"
	"teaching-assistant-be/pkg/websearch"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	HealthController   controller.IHealthController
	ChatController     controller.IChatController
	SessionController  controller.ISessionController
	DocumentController controller.IDocumentController

	// Background services (run from main.go)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	ragLogger := logger.NewIsolatedLogger(cfg.App.RagLogFilePath)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// 3. Redis session cache
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	sessionCache := cache.NewRedisSessionCache(rdb)

	// 4. AI providers
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	rewriter := agent.NewLLMRewriter(llmProvider)
	responder := agent.NewLLMResponder(llmProvider)
	titler := agent.NewLLMTitler(llmProvider)

	// 5. Retrieval stack
	chunkRepo := uowFactory.NewUnitOfWork(context.Background()).ChunkEmbeddingRepository()
	vectorCache := vectorstore.NewCache(embeddingProvider, chunkRepo, sysLogger)
	gate := relevance.NewGate(cfg.Rag.SimilarityThreshold, cfg.Rag.TopK, ragLogger)

	// 6. Ingestion and web search
	ingestor := ingest.NewRouter(
		ingest.NewWebExtractor(),
		ingest.NewPDFExtractor(),
		ingest.NewImageDescriber(cfg.Keys.GoogleGemini, cfg.Ai.LLMModel),
		cfg.Rag.ChunkSize,
		cfg.Rag.ChunkOverlap,
		sysLogger,
	)
	searchClient := websearch.NewGoogleClient(cfg.Keys.GoogleSearch, cfg.Keys.SearchEngineId)

	// 7. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.EventTopic, natsPub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EventTopic, uowFactory, sysLogger)

	chatService := service.NewChatService(
		uowFactory, sessionCache, vectorCache,
		rewriter, responder, titler,
		gate, searchClient, ingestor,
		publisherService, sysLogger, ragLogger,
	)
	sessionService := service.NewSessionService(uowFactory, sessionCache, vectorCache, publisherService, sysLogger)
	documentService := service.NewDocumentService(uowFactory, sessionCache, vectorCache, ingestor, publisherService, sysLogger)

	return &Container{
		HealthController:   controller.NewHealthController(cfg, vectorCache),
		ChatController:     controller.NewChatController(chatService),
		SessionController:  controller.NewSessionController(sessionService),
		DocumentController: controller.NewDocumentController(documentService),
		ConsumerService:    consumerService,
		Logger:             sysLogger,
	}
}
