package inits

import (
	"context"
	"fmt"
	"orpheo-api/app/server/config"
	"orpheo-api/app/server/constants"
	"orpheo-api/app/server/storage"
)

func Storage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Backend {
	case constants.StorageBackendDisk:
		return storage.NewDisk(cfg.Storage.UploadDir)
	case constants.StorageBackendS3:
		return storage.NewS3(ctx, storage.S3Options{
			Bucket:    cfg.Storage.S3Bucket,
			Region:    cfg.Storage.S3Region,
			Endpoint:  cfg.Storage.S3Endpoint,
			AccessKey: cfg.Storage.S3AccessKey,
			SecretKey: cfg.Storage.S3SecretKey,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
