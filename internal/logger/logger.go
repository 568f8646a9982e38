package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init replaces the global zap logger. Development gets a human readable console
// logger; every other environment logs JSON.
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	switch environment {
	case "development", "test":
		l, err = zap.NewDevelopment()
	default:
		l, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}
