package cron

import (
	"context"
	"log"
	"time"
)

// AuditCleaner deletes audit entries older than the given number of days.
type AuditCleaner interface {
	CleanupOldLogs(days int) (int64, error)
}

// StartCleanupTask prunes the audit log once at startup and then every
// interval until ctx is done.
func StartCleanupTask(ctx context.Context, cleaner AuditCleaner, retentionDays int, interval time.Duration) {
	if retentionDays <= 0 {
		log.Println("[cron] audit retention disabled")
		return
	}
	go func() {
		log.Printf("[cron] starting audit cleanup (retention: %d days)", retentionDays)
		runCleanup(cleaner, retentionDays)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("[cron] audit cleanup stopped")
				return
			case <-ticker.C:
				runCleanup(cleaner, retentionDays)
			}
		}
	}()
}

func runCleanup(cleaner AuditCleaner, retentionDays int) {
	n, err := cleaner.CleanupOldLogs(retentionDays)
	if err != nil {
		log.Printf("[cron] failed to cleanup old audit logs: %v", err)
		return
	}
	log.Printf("[cron] removed %d audit entries older than %d days", n, retentionDays)
}
