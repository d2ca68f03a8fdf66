package logger

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process logger. Development mode is the default;
// set APP_ENV=production for JSON output.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
