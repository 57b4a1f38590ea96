package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

type Environment struct {
	Environment     string
	ServerAddress   string
	DatabaseURL     string
	MigrationsPath  string
	UserJWTSecret   string
	DeviceJWTSecret string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	MQTTBrokerURL string

	UseSpaces       bool
	SpacesEndpoint  string
	SpacesRegion    string
	SpacesBucket    string
	SpacesCDNURL    string
	SpacesAccessKey string
	SpacesSecretKey string

	PublicBaseURL string
}

// LoadEnvironment reads and validates env vars
func LoadEnvironment() Environment {
	env := Environment{
		Environment:     os.Getenv("APP_ENV"),
		ServerAddress:   os.Getenv("SERVER_ADDRESS"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		MigrationsPath:  os.Getenv("MIGRATIONS_PATH"),
		UserJWTSecret:   os.Getenv("USER_JWT_SECRET"),
		DeviceJWTSecret: os.Getenv("DEVICE_JWT_SECRET"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),

		UseSpaces:       os.Getenv("USE_SPACES") == "true",
		SpacesEndpoint:  os.Getenv("SPACES_ENDPOINT"),
		SpacesRegion:    os.Getenv("SPACES_REGION"),
		SpacesBucket:    os.Getenv("SPACES_BUCKET"),
		SpacesCDNURL:    os.Getenv("SPACES_CDN_URL"),
		SpacesAccessKey: os.Getenv("SPACES_ACCESS_KEY"),
		SpacesSecretKey: os.Getenv("SPACES_SECRET_KEY"),

		PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),
	}

	if env.ServerAddress == "" {
		env.ServerAddress = ":8080"
	}
	if env.MigrationsPath == "" {
		env.MigrationsPath = "./migrations"
	}
	if env.PublicBaseURL == "" {
		env.PublicBaseURL = "http://localhost:8080"
	}

	if env.DatabaseURL == "" || env.UserJWTSecret == "" || env.DeviceJWTSecret == "" {
		log.Fatal().Msg("missing required environment variables (DATABASE_URL, USER_JWT_SECRET, DEVICE_JWT_SECRET)")
	}

	return env
}
