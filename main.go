package main

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wordplaylabs/wordplay/internal/clock"
	"github.com/wordplaylabs/wordplay/internal/config"
	"github.com/wordplaylabs/wordplay/internal/game"
	"github.com/wordplaylabs/wordplay/internal/hints"
	"github.com/wordplaylabs/wordplay/internal/httpserver"
	"github.com/wordplaylabs/wordplay/internal/stats"
	"github.com/wordplaylabs/wordplay/internal/store"
	"github.com/wordplaylabs/wordplay/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	sessions := game.SessionStore(store.NewMemory())
	if cfg.SessionBackend == "redis" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		sessions, err = store.NewRedis(&store.RedisConfig{Client: client})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to connect session store")
		}
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis session store")
	}

	clk := clock.Default{}
	recorder := stats.NewRecorder(stats.NewStore(db), clk)
	engine, err := game.NewEngine(words.New(words.Config{}), hints.New(hints.Config{}), recorder, sessions, clk)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build engine")
	}

	srv := httpserver.New(cfg, engine, recorder, db)
	log.Info().Str("port", cfg.Port).Msg("starting wordplay server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
