package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	RedisHost       string        `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort       string        `envconfig:"REDIS_PORT" default:"6379"`
	StorePath       string        `envconfig:"STORE_PATH" default:"tradehub.db"`
	OtpDelay        time.Duration `envconfig:"OTP_DELAY" default:"1500ms"`
	VerifyDelay     time.Duration `envconfig:"VERIFY_DELAY" default:"1s"`
	OrderDelay      time.Duration `envconfig:"ORDER_DELAY" default:"2s"`
	LocationDelay   time.Duration `envconfig:"LOCATION_DELAY" default:"800ms"`
	LocationOutcome string        `envconfig:"LOCATION_OUTCOME" default:"success"`
	OtpStrict       bool          `envconfig:"OTP_STRICT" default:"false"`
	ChatWidgetUrl   string        `envconfig:"CHAT_WIDGET_URL" default:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
