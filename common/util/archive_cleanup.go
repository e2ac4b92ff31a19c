package util

import (
	"context"
	"log/slog"
	"time"

	"github.com/certward/certward-api/common"
	"github.com/minio/minio-go/v7"
	"github.com/robfig/cron/v3"
)

// StartArchiveCleanupJob schedules a daily sweep that deletes bulk ZIP
// archives older than the configured retention. Individual certificate PDFs
// are kept; only the batch archives expire, since they can be regenerated.
func StartArchiveCleanupJob() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@daily", func() {
		CleanupExpiredArchives()
	})
	if err != nil {
		slog.Error("Failed to schedule archive cleanup job", "error", err)
		return c
	}

	c.Start()
	slog.Info("Archive cleanup job scheduled", "spec", "@daily")

	// Initial sweep so restarts don't accumulate stale archives
	go CleanupExpiredArchives()

	return c
}

// CleanupExpiredArchives removes archive objects past the retention window.
func CleanupExpiredArchives() {
	maxAgeDays := 30
	if common.Config.ArchiveMaxAgeDays != nil && *common.Config.ArchiveMaxAgeDays > 0 {
		maxAgeDays = *common.Config.ArchiveMaxAgeDays
	}
	maxAge := time.Duration(maxAgeDays) * 24 * time.Hour

	if common.MinIOClient == nil {
		slog.Warn("CleanupExpiredArchives: MinIO client not initialized")
		return
	}

	startTime := time.Now()
	bucketName := *common.Config.BucketCertificate

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	objectCh := common.MinIOClient.ListObjects(ctx, bucketName, minio.ListObjectsOptions{
		Prefix:    "archives/",
		Recursive: true,
	})

	deletedCount := 0
	failedCount := 0

	for object := range objectCh {
		if object.Err != nil {
			slog.Warn("CleanupExpiredArchives: list error", "error", object.Err)
			continue
		}

		if time.Since(object.LastModified) < maxAge {
			continue
		}

		err := common.MinIOClient.RemoveObject(ctx, bucketName, object.Key, minio.RemoveObjectOptions{})
		if err != nil {
			slog.Warn("CleanupExpiredArchives: failed to delete archive", "error", err, "object", object.Key)
			failedCount++
		} else {
			deletedCount++
		}
	}

	slog.Info("CleanupExpiredArchives completed",
		"max_age", maxAge.String(),
		"deleted", deletedCount,
		"failed", failedCount,
		"duration", time.Since(startTime))
}
