package config

import "time"

type LLM struct {
	Provider LLMProvider `envPrefix:"PROVIDER_"`
}

type LLMProvider struct {
	Name                string `env:"NAME,expand" envDefault:"openai"`
	BaseURL             string `env:"BASE_URL,expand" envDefault:"https://api.mistral.ai/v1/"`
	Key                 string `env:"KEY,expand"`
	ChatCompletionModel string `env:"CHAT_COMPLETION_MODEL,expand" envDefault:"mistral-small-latest"`

	RateLimitMinInterval          time.Duration `env:"RATE_LIMIT_MIN_INTERVAL" envDefault:"1s"`
	RateLimitMaxBurst             int           `env:"RATE_LIMIT_MAX_BURST,expand" envDefault:"2"`
	RateLimitLowPriorityThreshold float64       `env:"RATE_LIMIT_LOW_PRIORITY_THRESHOLD,expand" envDefault:"0.25"`
	MaxRetries                    int           `env:"MAX_RETRIES,expand" envDefault:"3"`
	BaseBackoff                   time.Duration `env:"BASE_BACKOFF" envDefault:"1s"`
}
