package inits

import (
	"fmt"

	"atelier-site-core/app/server/config"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func Config() (*config.Config, error) {
	// .env 只在存在时加载，线上环境直接用环境变量
	_ = godotenv.Load()

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment config: %w", err)
	}

	return cfg, nil
}
