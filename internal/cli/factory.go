package cli

import (
	"log/slog"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/strobe/internal/config"
	"github.com/aretw0/strobe/pkg/adapters/file"
	"github.com/aretw0/strobe/pkg/adapters/memory"
	redisstore "github.com/aretw0/strobe/pkg/adapters/redis"
	"github.com/aretw0/strobe/pkg/perf"
	"github.com/aretw0/strobe/pkg/playback"
	"github.com/aretw0/strobe/pkg/ports"
	"github.com/aretw0/strobe/pkg/session"
)

// NewHistory selects the history store: Redis when configured, then a
// history file, in-memory otherwise.
func NewHistory(cfg *config.Config) ports.HistoryStore {
	if cfg.Redis.Addr != "" {
		opts := []redisstore.Option{}
		if cfg.Redis.Key != "" {
			opts = append(opts, redisstore.WithKey(cfg.Redis.Key))
		}
		client := backend.NewClient(&backend.Options{Addr: cfg.Redis.Addr})
		return redisstore.NewFromClient(client, opts...)
	}
	if cfg.HistoryFile != "" {
		return file.NewHistory(cfg.HistoryFile)
	}
	return memory.NewHistory()
}

// createController builds the controller for one run with the standard
// CLI wiring: history-backed recorder plus debug hooks.
func createController(spec session.RunSpec, history ports.HistoryStore, logger *slog.Logger, debug bool) (*playback.Controller, error) {
	opts := []playback.Option{
		playback.WithRecorder(perf.NewRecorder(perf.WithStore(history), perf.WithLogger(logger))),
		playback.WithLogger(logger),
	}
	if debug {
		opts = append(opts, playback.WithHooks(createDebugHooks(logger)))
	}
	return session.NewController(spec, opts...)
}
