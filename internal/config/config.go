package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Postgres Postgres
	Auth     Auth
	LLM      LLM
	Redis    Redis
	Bot      Bot
	News     News
	Log      Log
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"realty-analyzer"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type HTTP struct {
	ListenAddress      string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ProbeListenAddress string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsAddress     string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	ReadHeaderTimeout  time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout    time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// Максимальная длина тела запроса/ответа в логах, 0 - без ограничения.
	LogBodyMaxLen int `env:"HTTP_LOG_BODY_MAX_LEN" envDefault:"2048"`
}

type Auth struct {
	JWTSecret string        `env:"JWT_SECRET,notEmpty" json:"-"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

// Bot is optional. Alerts are disabled without a token.
type Bot struct {
	Token  string `env:"BOT_TOKEN" json:"-"`
	ChatID int64  `env:"BOT_CHAT_ID"`
	// Команды бота принимаются только от этого пользователя.
	AdminID int64 `env:"BOT_ADMIN_ID"`
}

func (b Bot) Enabled() bool {
	return b.Token != "" && b.ChatID != 0
}

func (b Bot) CommandsEnabled() bool {
	return b.Token != "" && b.AdminID != 0
}

type News struct {
	// Шаблон URL RSS-ленты, %s заменяется на локацию.
	FeedURL string        `env:"NEWS_FEED_URL"`
	Limit   int           `env:"NEWS_LIMIT" envDefault:"5"`
	Timeout time.Duration `env:"NEWS_TIMEOUT" envDefault:"5s"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.LLM.validate(); err != nil {
		return Config{}, fmt.Errorf("config.LLM.validate: %w", err)
	}

	return config, nil
}
