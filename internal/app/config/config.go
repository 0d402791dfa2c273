package config

import (
	"dentalink-client/internal/pkg/constvars"
	"dentalink-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env: utils.GetEnvString("APP_ENV", "development"),
		},
		Dentalink: Dentalink{
			BaseUrl: utils.GetEnvString("DENTALINK_BASE_URL", constvars.DefaultBaseURL),
			Token:   utils.GetEnvString("DENTALINK_TOKEN", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}
