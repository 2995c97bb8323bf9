// Package server parses loot service flags and launches the service.
package server

import (
	"context"
	"flag"

	app "github.com/louisbranch/spoils/internal/loot/app"
	entrypoint "github.com/louisbranch/spoils/internal/platform/cmd"
)

// Config holds loot command configuration.
type Config struct {
	Port int `env:"SPOILS_SERVER_PORT" envDefault:"8095"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The loot gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the loot gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceLoot, func(context.Context) error {
		return app.Run(ctx, cfg.Port)
	})
}
