package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"

	authService "ojtsystem_backend/internals/features/accounts/auth/service"
)

// StartGateCleanupScheduler purges expired one-time-code gate entries
// (cooldowns, verified-reset windows) every few minutes.
func StartGateCleanupScheduler() *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@every 5m", func() {
		if n := authService.PurgeExpiredGateEntries(); n > 0 {
			log.Printf("[INFO] purged %d expired code gate entries", n)
		}
	})
	if err != nil {
		log.Printf("[ERROR] gate cleanup scheduler: %v", err)
		return c
	}
	c.Start()
	return c
}
