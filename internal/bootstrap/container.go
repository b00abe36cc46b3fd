package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-shopassist-be/internal/config"
	"ai-shopassist-be/internal/controller"
	"ai-shopassist-be/internal/pkg/logger"
	"ai-shopassist-be/internal/repository/contract"
	"ai-shopassist-be/internal/repository/implementation"
	"ai-shopassist-be/internal/repository/memory"
	"ai-shopassist-be/internal/service"
	"ai-shopassist-be/pkg/assistant/bundle"
	"ai-shopassist-be/pkg/assistant/filtering"
	"ai-shopassist-be/pkg/assistant/intent"
	"ai-shopassist-be/pkg/assistant/reference"
	"ai-shopassist-be/pkg/assistant/taxonomy"
	"ai-shopassist-be/pkg/assistant/vague"
	"ai-shopassist-be/pkg/catalog"
	"ai-shopassist-be/pkg/llm/factory"
	"ai-shopassist-be/pkg/retrieval"

	pktNats "ai-shopassist-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	HealthController    controller.IHealthController
	AssistantController controller.IAssistantController
	CatalogController   controller.ICatalogController

	// Background Services (Exposed for main.go to run)
	ConsumerService   service.IConsumerService
	SyncWorkerService service.ISyncWorkerService
	CatalogService    service.ICatalogService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS (optional; a dev box without a broker still boots)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL, sysLogger)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		natsSub = nil
	}

	// Redis (optional; sessions survive restarts only when present)
	var snapshotRepo contract.SessionSnapshotRepository
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	sessionTTL := time.Duration(cfg.Assistant.SessionTTLMinutes) * time.Minute
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Session snapshots disabled", err)
	} else {
		snapshotRepo = implementation.NewSessionSnapshotRepository(rdb, sessionTTL)
	}

	// 3. LLM Provider (optional reply phrasing)
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Repositories
	productRepo := implementation.NewProductRepository(db)
	syncRunRepo := implementation.NewSyncRunRepository(db)
	sessionRepo := memory.NewSessionRepository(sessionTTL)

	// 5. Retrieval Core
	index := catalog.NewIndex()
	searcher := retrieval.NewSearcher(index)
	matcher := taxonomy.NewMatcher()

	// 6. Services
	publisherService := service.NewPublisherService(pubSub, natsPub, sysLogger)

	catalogService := service.NewCatalogService(
		productRepo,
		syncRunRepo,
		index,
		publisherService,
		sysLogger,
	)

	assistantService := service.NewAssistantService(
		sessionRepo,
		snapshotRepo,
		searcher,
		intent.NewDetector(),
		vague.NewInterpreter(matcher, cfg.Assistant.VagueConfidenceThreshold),
		filtering.NewValidator(cfg.Assistant.MinFilterWeight),
		reference.NewResolver(),
		bundle.NewPlanner(searcher),
		matcher,
		llmProvider,
		publisherService,
		sysLogger,
		service.AssistantOptions{
			MaxShownProducts: cfg.Assistant.MaxShownProducts,
			SearchLimit:      cfg.Assistant.DefaultSearchLimit,
		},
	)

	consumerService := service.NewConsumerService(
		pubSub,
		catalogService,
		sysLogger,
	)

	syncWorkerService := service.NewSyncWorkerService(
		publisherService,
		natsSub,
		time.Duration(cfg.Catalog.SyncIntervalMinutes)*time.Minute,
		logger.NewIsolatedLogger("catalog_sync.log"),
	)

	// 7. Controllers
	return &Container{
		HealthController:    controller.NewHealthController(index),
		AssistantController: controller.NewAssistantController(assistantService),
		CatalogController:   controller.NewCatalogController(catalogService),

		ConsumerService:   consumerService,
		SyncWorkerService: syncWorkerService,
		CatalogService:    catalogService,

		Logger: sysLogger,
	}
}
