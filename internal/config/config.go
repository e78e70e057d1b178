package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Logger Logger `envPrefix:"LOGGER_"`
	LLM    LLM    `envPrefix:"LLM_"`
	Agent  Agent  `envPrefix:"AGENT_"`
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "ASPECT_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
