package config

import (
	"fmt"
	"time"
)

const (
	LLMProviderNone   = "none"
	LLMProviderOpenAI = "openai"
	LLMProviderGemini = "gemini"
)

type LLM struct {
	Provider     string        `env:"LLM_PROVIDER" envDefault:"none"`
	Timeout      time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
	SentimentTTL time.Duration `env:"LLM_SENTIMENT_TTL" envDefault:"1h"`
	Temperature  float32       `env:"LLM_TEMPERATURE" envDefault:"0.3"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY" json:"-"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	GeminiAPIKey string `env:"GEMINI_API_KEY" json:"-"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
}

func (l LLM) validate() error {
	switch l.Provider {
	case LLMProviderNone:
		return nil
	case LLMProviderOpenAI:
		if l.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for provider %q", l.Provider)
		}
	case LLMProviderGemini:
		if l.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for provider %q", l.Provider)
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", l.Provider)
	}

	return nil
}
