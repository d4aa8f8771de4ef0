// Purges daily activity logs older than the short-term retention window.
// Intended to run on a schedule (cron) or by hand.
package main

import (
	"context"
	"log"

	"adaptive-coach-be/internal/config"
	"adaptive-coach-be/internal/repository/specification"
	"adaptive-coach-be/internal/repository/unitofwork"
	"adaptive-coach-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	retentionDays := cfg.Memory.RetentionDays
	cutoff := specification.RetentionCutoff(retentionDays)

	color.Cyan("🧹 Cleaning up daily logs older than %d days (cutoff %s)", retentionDays, cutoff.Format("2006-01-02"))

	uowFactory := unitofwork.NewRepositoryFactory(db)
	uow := uowFactory.NewUnitOfWork(context.Background())

	purged, err := uow.DailyLogRepository().DeleteExpired(context.Background(), cutoff)
	if err != nil {
		color.Red("Cleanup failed: %v", err)
		log.Fatal(err)
	}

	color.Green("Purged %d expired daily logs.", purged)
}
