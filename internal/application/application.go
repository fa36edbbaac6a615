package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"realty_analyzer/internal/config"
	"realty_analyzer/internal/domain/service/auth"
	"realty_analyzer/internal/domain/service/deal"
	"realty_analyzer/internal/domain/service/insight"
	"realty_analyzer/internal/infrastructure/cache"
	"realty_analyzer/internal/infrastructure/llm"
	"realty_analyzer/internal/infrastructure/news"
	"realty_analyzer/internal/infrastructure/notifier"
	"realty_analyzer/internal/infrastructure/persistence"
	"realty_analyzer/internal/server"
	"realty_analyzer/internal/transport/bot"
	"realty_analyzer/internal/transport/bot/handler"
	"realty_analyzer/internal/worker"
	"realty_analyzer/pkg/application/connectors"
	"realty_analyzer/pkg/application/modules"
	"realty_analyzer/pkg/contextx"
	"realty_analyzer/pkg/logx"
	"realty_analyzer/pkg/probe"
)

func Run(ctx context.Context) error { //nolint:funlen
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log := logx.NewLogger(os.Stdout, cfg.Log.Level, cfg.Log.Format).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	// 2. Database
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if cfg.Postgres.Migrate {
		if err = persistence.Migrate(ctx, db); err != nil {
			return fmt.Errorf("persistence.Migrate: %w", err)
		}
	}

	checks := []probe.ReadinessCheck{{Name: "postgres", Check: pg.Ping}}

	// 3. Redis (опционально): общий кэш и очередь задач
	var (
		redisConn   *connectors.Redis
		redisClient redis.Cmdable
	)

	if cfg.Redis.Enabled() {
		redisConn = &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		defer redisConn.Close(ctx)

		redisClient = redisConn.Client(ctx)
		checks = append(checks, probe.ReadinessCheck{Name: "redis", Check: redisConn.Ping})
	}

	// 4. AI
	advisor, err := newAdvisor(ctx, cfg)
	if err != nil {
		return fmt.Errorf("newAdvisor: %w", err)
	}

	insightService := insight.NewService(advisor, cache.NewSentiment(cfg.LLM.SentimentTTL, redisClient), cfg.LLM.Timeout)

	// 5. Services
	authService := auth.NewService(persistence.NewUserRepository(db), auth.Options{
		Secret: cfg.Auth.JWTSecret,
		TTL:    cfg.Auth.JWTTTL,
		Issuer: cfg.App.Name,
	})

	dealService := deal.NewService(persistence.NewDealRepository(db))

	if cfg.Bot.Enabled() {
		alertBot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
		if err != nil {
			return fmt.Errorf("notifier.NewTelegramBot: %w", err)
		}

		dealService.WithNotifier(alertBot)
	}

	runWorker := false

	if redisConn != nil && insightService.Enabled() {
		asynqClient := asynq.NewClient(redisConn.AsynqOpt())
		defer asynqClient.Close()

		dealService.WithEnqueuer(worker.NewEnqueuer(asynqClient))
		runWorker = cfg.Redis.RunWorker
	}

	// 6. Transport
	var commandBot *bot.Bot

	if cfg.Bot.CommandsEnabled() {
		commandBot, err = bot.New(cfg.Bot.Token, cfg.Bot.AdminID, handler.New(insightService))
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}
	}

	srv := server.NewServer(
		server.NewAuthServer(authService),
		server.NewAnalyzeServer(insightService),
		server.NewDealServer(dealService),
		server.NewMarketServer(insightService),
	)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:     cfg.HTTP.ListenAddress,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, server.NewRouter(srv, server.RouterOptions{
		SensitiveDataMasker: logx.NewSensitiveDataMasker(),
		LogBodyMaxLen:       cfg.HTTP.LogBodyMaxLen,
	}))

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Checks:        checks,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress:   cfg.HTTP.MetricsAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g)

	if runWorker {
		modules.AsynqServer{
			Redis:       redisConn.AsynqOpt(),
			Concurrency: cfg.Redis.Concurrency,
		}.Run(ctx, g, modules.AsynqQueues{worker.QueueDefault: 1}, modules.AsynqHandler{
			Pattern: worker.TypeDealInsight,
			Handle:  worker.NewDealInsight(dealService, insightService).Handle,
		})
	}

	if commandBot != nil {
		g.Go(func() error {
			return commandBot.Run(ctx)
		})
	}

	log.Info(
		"application started",
		slog.String("llm-provider", cfg.LLM.Provider),
		slog.Bool("redis", redisConn != nil),
		slog.Bool("worker", runWorker),
		slog.Bool("bot", cfg.Bot.Enabled()),
		slog.Bool("bot-commands", cfg.Bot.CommandsEnabled()),
	)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// newAdvisor returns nil when AI is disabled.
func newAdvisor(ctx context.Context, cfg config.Config) (insight.Advisor, error) {
	var completer llm.Completer

	switch cfg.LLM.Provider {
	case config.LLMProviderOpenAI:
		completer = llm.NewOpenAIClient(llm.OpenAIOptions{
			APIKey:        cfg.LLM.OpenAIAPIKey,
			BaseURL:       cfg.LLM.OpenAIBaseURL,
			Model:         cfg.LLM.OpenAIModel,
			Temperature:   cfg.LLM.Temperature,
			LogBodyMaxLen: cfg.HTTP.LogBodyMaxLen,
		}, nil)
	case config.LLMProviderGemini:
		client, err := llm.NewGeminiClient(ctx, llm.GeminiOptions{
			APIKey:      cfg.LLM.GeminiAPIKey,
			Model:       cfg.LLM.GeminiModel,
			Temperature: cfg.LLM.Temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("llm.NewGeminiClient: %w", err)
		}

		completer = client
	default:
		return nil, nil //nolint:nilnil
	}

	prompts, err := llm.LoadPrompts()
	if err != nil {
		return nil, fmt.Errorf("llm.LoadPrompts: %w", err)
	}

	var newsSource llm.NewsSource

	if cfg.News.FeedURL != "" {
		newsSource = news.NewFeed(cfg.News.FeedURL, cfg.News.Limit, cfg.News.Timeout)
	}

	return llm.NewAdvisor(completer, prompts, newsSource), nil
}
