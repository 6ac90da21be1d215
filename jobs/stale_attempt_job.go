package jobs

import (
	"log"
	"time"

	"github.com/plandanogtav2-cell/eduquest-hub/database"
	"github.com/plandanogtav2-cell/eduquest-hub/models"
)

const staleAttemptAge = 7 * 24 * time.Hour

// SweepStaleAttempts deletes attempts that were started but never
// completed within a week. An abandoned attempt has no responses, so
// only the attempt row itself goes.
func SweepStaleAttempts() {
	log.Println("Running job: SweepStaleAttempts...")

	cutoff := time.Now().Add(-staleAttemptAge)

	result := database.DB.
		Where("completed_at IS NULL AND started_at < ?", cutoff).
		Delete(&models.QuizAttempt{})

	if result.Error != nil {
		log.Printf("Error sweeping stale attempts: %v", result.Error)
		return
	}

	if result.RowsAffected == 0 {
		log.Println("No stale attempts found.")
		return
	}

	log.Printf("Deleted %d stale attempt(s).", result.RowsAffected)
}
