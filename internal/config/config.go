package config

import (
	"net/url"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port       int  `env:"PORT" envDefault:"9090"`
	IsTestMode bool `env:"TEST_MODE"`
	IsDebug    bool `env:"DEBUG"`

	Secret        string `env:"SECRET,required"`
	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`

	BcryptHasherCost         int  `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	MaxPasswordResetAttempts uint `env:"MAX_PASSWORD_RESET_ATTEMPTS" envDefault:"3"`

	AwsRegion                     string `env:"AWS_REGION" envDefault:"eu-west-1"`
	AwsAccessKey                  string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey                  string `env:"AWS_SECRET_KEY"`
	AwsEmailSender                string `env:"AWS_EMAIL_SENDER"`
	AwsEmailPasswordResetTemplate string `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE" envDefault:"password-reset-code"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	SentryDsn *url.URL `env:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
