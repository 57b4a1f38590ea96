package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/push"
	"github.com/helioscast/helios/internal/redis"
	"github.com/helioscast/helios/internal/webhook"
)

func main() {
	// .env is optional; real deployments inject env vars directly
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("APP_ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	env := LoadEnvironment()

	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrations failed")
	}

	redis.Init(env.RedisAddress, env.RedisUsername, env.RedisPassword)

	var notifier *push.Notifier
	if env.MQTTBrokerURL != "" {
		n, err := push.NewNotifier(env.MQTTBrokerURL)
		if err != nil {
			log.Warn().Err(err).Msg("MQTT unavailable, device push disabled")
		} else {
			notifier = n
			defer notifier.Close()
		}
	}

	store := db.NewStore()
	hooks := webhook.NewDispatcher(store)
	storageSystem := InitStorage(env)

	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	RegisterRoutes(r, env, store, storageSystem, hooks, notifier)

	log.Info().Str("address", env.ServerAddress).Msg("server listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
