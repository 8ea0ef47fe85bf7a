package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type App struct {
	Port            string `env:"API_PORT,required"`
	DBConnectionURL string `env:"DB_CONNECTION_URL,required"`
	LogLevel        string `env:"LOG_LEVEL,default=info"`
	CacheDir        string `env:"CACHE_DIR,default=cache"`
	PageSize        int    `env:"PAGE_SIZE,default=20"`
	Explorer        Explorer
}

// Explorer holds the upstream block explorer settings. An empty APIKey is
// accepted here and reported by the client on first use.
type Explorer struct {
	BaseURL     string        `env:"ETHERSCAN_BASE_URL,default=https://api.etherscan.io/v2/api"`
	APIKey      string        `env:"ETHERSCAN_API_KEY"`
	ChainID     uint64        `env:"CHAIN_ID,default=1"`
	HeadTimeout time.Duration `env:"HEAD_TIMEOUT,default=10s"`
	// FetchTimeout bounds the txlist call, which can return thousands of records.
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT,default=30s"`
	// RecentBlockThreshold is the newest block known not to need a live head
	// check. Requests ending at or below it skip head resolution.
	RecentBlockThreshold uint64 `env:"RECENT_BLOCK_THRESHOLD,default=23632440"`
}

func NewApp(ctx context.Context) (App, error) {
	return newApp(ctx, envconfig.OsLookuper())
}

func newApp(ctx context.Context, lookuper envconfig.Lookuper) (App, error) {
	var app App
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &app,
		Lookuper: lookuper,
	})
	if err != nil {
		return App{}, fmt.Errorf("process environment: %w", err)
	}

	if app.PageSize <= 0 {
		return App{}, fmt.Errorf("page size must be positive, got %d", app.PageSize)
	}

	return app, nil
}
