package bootstrap

import (
	"context"
	"log"
	"time"

	"adaptive-coach-be/internal/config"
	"adaptive-coach-be/internal/controller"
	"adaptive-coach-be/internal/pkg/logger"
	"adaptive-coach-be/internal/pkg/metrics"
	repoMemory "adaptive-coach-be/internal/repository/memory"
	"adaptive-coach-be/internal/repository/unitofwork"
	"adaptive-coach-be/internal/service"
	"adaptive-coach-be/pkg/embedding"
	"adaptive-coach-be/pkg/embedding/jina"
	"adaptive-coach-be/pkg/llm/factory"
	pkgMemory "adaptive-coach-be/pkg/memory"
	pktNats "adaptive-coach-be/pkg/nats"
	"adaptive-coach-be/pkg/retrieval"
	"adaptive-coach-be/pkg/store"
	"adaptive-coach-be/pkg/textinput"
	"adaptive-coach-be/pkg/workflow"
	"adaptive-coach-be/pkg/workflow/agents"
	"adaptive-coach-be/pkg/workflow/gate"
	"adaptive-coach-be/pkg/workflow/modelrouter"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	ProfileController    controller.IProfileController
	ActivityController   controller.IActivityController
	ChatController       controller.IChatController
	CalculatorController controller.ICalculatorController
	KnowledgeController  controller.IKnowledgeController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	recorder := metrics.NewPrometheusRecorder()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbeddingModel)
	} else if cfg.Ai.EmbeddingProvider == "jina" {
		embeddingProvider = jina.NewJinaProvider(cfg.Ai.JinaAPIKey)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.ModelStandard,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.HuggingFaceAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s", cfg.Ai.LLMProvider)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v (working memory falls back to in-process cache)", err)
	}

	sessionTTL := time.Duration(cfg.Memory.SessionTTLSeconds) * time.Second
	workingRepo := repoMemory.NewWorkingRepository(rdb, sessionTTL, cfg.Memory.MaxTurns)

	// 5. Workflow Pipeline
	queryGate := gate.New(recorder)
	selector := modelrouter.NewSelector(
		llmProvider,
		cfg.Ai.ClassifierModel,
		map[store.ModelTier]string{
			store.TierSimple:   cfg.Ai.ModelSimple,
			store.TierStandard: cfg.Ai.ModelStandard,
			store.TierComplex:  cfg.Ai.ModelComplex,
		},
		sysLogger,
		recorder,
	)
	responders := []agents.Responder{
		agents.NewTrainer(llmProvider, sysLogger, recorder),
		agents.NewNutritionist(llmProvider, sysLogger, recorder),
		agents.NewRecovery(llmProvider, sysLogger, recorder),
	}
	engine := workflow.NewEngine(queryGate, selector, responders, sysLogger, recorder)

	// Non-transactional repositories for read-side collaborators.
	baseUow := uowFactory.NewUnitOfWork(context.Background())
	retriever := pkgMemory.NewRetriever(
		baseUow.ProfileRepository(),
		baseUow.DailyLogRepository(),
		workingRepo,
		pkgMemory.Budgets{
			LongTerm:  cfg.Memory.LongTermBudget,
			ShortTerm: cfg.Memory.ShortTermBudget,
			Working:   cfg.Memory.WorkingBudget,
		},
		cfg.Memory.RetentionDays,
		sysLogger,
		recorder,
	)
	searcher := retrieval.NewSearcher(
		embeddingProvider,
		baseUow.KnowledgeRepository(),
		cfg.Retrieval.TopK,
		cfg.Retrieval.SimilarityThreshold,
	)
	processor := textinput.NewProcessor(textinput.DefaultMaxLength)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Retrieval.IngestTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Retrieval.IngestTopic,
		uowFactory,
		embeddingProvider,
		cfg.Retrieval.ChunkMinSize,
		cfg.Retrieval.ChunkMaxSize,
		cfg.Retrieval.ChunkOverlap,
	)

	authService := service.NewAuthService(uowFactory, cfg.Auth, natsPub)
	profileService := service.NewProfileService(uowFactory, natsPub)
	activityService := service.NewActivityService(uowFactory, cfg.Memory.RetentionDays, natsPub)
	knowledgeService := service.NewKnowledgeService(uowFactory, publisherService)
	chatService := service.NewChatService(
		uowFactory,
		workingRepo,
		retriever,
		searcher,
		engine,
		processor,
		natsPub,
		sysLogger,
	)

	// 7. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		ProfileController:    controller.NewProfileController(profileService),
		ActivityController:   controller.NewActivityController(activityService),
		ChatController:       controller.NewChatController(chatService),
		CalculatorController: controller.NewCalculatorController(),
		KnowledgeController:  controller.NewKnowledgeController(knowledgeService),

		ConsumerService: consumerService,
	}
}
