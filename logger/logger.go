package logger

import (
	"log"

	"go.uber.org/zap"
)

// New builds the service-wide zap logger.
func New() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	return l
}
