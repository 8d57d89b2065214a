package config

import (
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	JWT    JWTConfig
	CORS   CORSConfig
}

var (
	ConfigInstance *Config
	once           sync.Once
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	URL string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type JWTConfig struct {
	Secret         string
	ExpirationTime time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	// Viper setup
	once.Do(func() {
		viper.SetDefault("SOCIAL_PORT", "3000")
		viper.SetDefault("SOCIAL_READ_TIMEOUT", 30*time.Second)
		viper.SetDefault("SOCIAL_WRITE_TIMEOUT", 30*time.Second)
		viper.SetDefault("SOCIAL_IDLE_TIMEOUT", 60*time.Second)
		viper.SetDefault("SOCIAL_JWT_SECRET", "secret")
		viper.SetDefault("SOCIAL_JWT_EXPIRE", "88h")
		viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
		viper.SetDefault("MONGO_DB", "social")
		viper.SetDefault("REDIS_URL", "redis://127.0.0.1:6379/0")
		viper.SetDefault("KAFKA_BROKERS", "")
		viper.SetDefault("KAFKA_TOPIC", "social-activity")
		viper.SetDefault("ALLOWED_ORIGINS", "")
		viper.AutomaticEnv()

		ConfigInstance = &Config{
			Server: ServerConfig{
				Host:         viper.GetString("SOCIAL_HOST"),
				Port:         viper.GetString("SOCIAL_PORT"),
				ReadTimeout:  viper.GetDuration("SOCIAL_READ_TIMEOUT"),
				WriteTimeout: viper.GetDuration("SOCIAL_WRITE_TIMEOUT"),
				IdleTimeout:  viper.GetDuration("SOCIAL_IDLE_TIMEOUT"),
			},
			Mongo: MongoConfig{
				URI:      viper.GetString("MONGO_URI"),
				Database: viper.GetString("MONGO_DB"),
			},
			Redis: RedisConfig{
				URL: viper.GetString("REDIS_URL"),
			},
			Kafka: KafkaConfig{
				Brokers: splitList(viper.GetString("KAFKA_BROKERS")),
				Topic:   viper.GetString("KAFKA_TOPIC"),
			},
			JWT: JWTConfig{
				Secret:         viper.GetString("SOCIAL_JWT_SECRET"),
				ExpirationTime: viper.GetDuration("SOCIAL_JWT_EXPIRE"),
			},
			CORS: CORSConfig{
				AllowedOrigins: splitList(viper.GetString("ALLOWED_ORIGINS")),
			},
		}
	})

	return ConfigInstance, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
