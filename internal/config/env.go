package config

import (
	"camonk/pkg/log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// NewLogger loads envFiles (".env" when none are given) before building the logger, so
// LOG_LEVEL, APP_ENV and LOG_DIR from the file apply to it. A missing file is only a warning.
func NewLogger(envFiles ...string) *logrus.Logger {
	envErr := godotenv.Load(envFiles...)

	logger := log.NewLogger()
	if envErr != nil {
		logger.Warnf("No .env file loaded: %v", envErr)
	}
	return logger
}
