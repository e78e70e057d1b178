package config

type Agent struct {
	MaxValidationRetries int `env:"MAX_VALIDATION_RETRIES,expand" envDefault:"3"`
}
