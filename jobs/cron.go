package jobs

import (
	"fmt"
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// PendingExpirer releases rooms held by bookings whose payment window
// lapsed.
type PendingExpirer interface {
	ExpireStalePending() (int, error)
}

var pendingExpirer PendingExpirer

// SetPendingExpirer wires the booking service into the job package.
func SetPendingExpirer(expirer PendingExpirer) {
	pendingExpirer = expirer
}

// InitCronJobs registers the recurring jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Every 5 minutes: drop unpaid bookings past the payment window.
	_, err := c.AddFunc("*/5 * * * *", func() {
		if pendingExpirer == nil {
			log.Println("pending expirer is not configured")
			return
		}
		expired, err := pendingExpirer.ExpireStalePending()
		if err != nil {
			log.Printf("failed to expire pending bookings: %v", err)
			return
		}
		if expired > 0 && m != nil {
			_ = m.Broadcast([]byte(fmt.Sprintf("released %d expired holds", expired)))
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
