package inits

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger builds the process logger: human readable in development, JSON in production.
func Logger(isProd bool) (l *zap.Logger, err error) {
	if isProd {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l.Named("orpheo"), nil
}
