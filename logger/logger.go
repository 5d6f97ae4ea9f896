package logger

import (
	"log"

	"go.uber.org/zap"
)

// Log is the process-wide logger. It defaults to a no-op logger so
// packages can log safely before Init runs (and during tests).
var Log = zap.NewNop()

// Init replaces the no-op logger with the production logger
func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Log = l
}
