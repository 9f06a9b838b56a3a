package inits

import (
	"fmt"
	"orpheo-api/app/server/config"
	"orpheo-api/app/server/constants"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

func Config() (*config.Config, error) {
	var cfg config.Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	cfg.System.IsProd = strings.HasPrefix(strings.ToLower(cfg.System.Mode), "p")

	if strings.TrimSpace(cfg.Security.JWTSecret) == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be blank")
	}

	switch cfg.Storage.Backend {
	case constants.StorageBackendDisk:
		if cfg.Storage.UploadDir == "" {
			return nil, fmt.Errorf("UPLOAD_DIR must be set for the disk storage backend")
		}
	case constants.StorageBackendS3:
		if cfg.Storage.S3Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET must be set for the s3 storage backend")
		}
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}

	if cfg.Storage.UploadMaxBytes <= 0 {
		return nil, fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}

	return &cfg, nil
}
