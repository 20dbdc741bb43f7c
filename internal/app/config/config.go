package config

import (
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", ""),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "saude.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "saude_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:     utils.GetEnvString("MINIO_HOST", ""),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                  utils.GetEnvString("APP_ENV", constvars.EnvDevelopment),
			Version:              utils.GetEnvString("APP_VERSION", "v1.0"),
			BaseUrl:              utils.GetEnvString("APP_API_BASE_URL", "http://localhost:5000"),
			MaxRequestsPerSecond: utils.GetEnvInt("APP_MAX_REQUESTS_PER_SECOND", 0),
			SessionStore:         utils.GetEnvString("APP_SESSION_STORE", constvars.SessionStoreFile),
			SessionFilePath:      utils.GetEnvString("APP_SESSION_FILE_PATH", ".saude-session.json"),
			SessionKeyPrefix:     utils.GetEnvString("APP_SESSION_KEY_PREFIX", "saude:session:"),
			DiplomaBucketName:    utils.GetEnvString("APP_DIPLOMA_BUCKET_NAME", "diplomas"),
			EventsQueue:          utils.GetEnvString("APP_EVENTS_QUEUE", "saude.client.events"),
		},
	}
}
