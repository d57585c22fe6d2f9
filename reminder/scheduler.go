package reminder

import (
	"context"
	"time"

	"stretchreminder/logger"
	"stretchreminder/models"
	"stretchreminder/notify"
)

// Scheduler repeatedly waits for the reminder interval and then notifies.
//
// Message, timeout and sound are copied when the scheduler is created, so a
// running loop never sees later settings changes.
type Scheduler struct {
	interval time.Duration
	note     notify.Notification
	notifier notify.Notifier
	clock    Clock
	runID    string
}

// NewScheduler creates a scheduler for the given settings snapshot.
// The interval is taken as-is; callers reject non-positive values.
func NewScheduler(settings *models.Settings, notifier notify.Notifier, clock Clock, runID string) *Scheduler {
	if clock == nil {
		clock = RealClock{}
	}
	return &Scheduler{
		interval: settings.Interval(),
		note: notify.Notification{
			Title:   notify.Title,
			Message: settings.CustomMessage,
			Timeout: settings.Timeout(),
			Sound:   settings.PlaySound,
		},
		notifier: notifier,
		clock:    clock,
		runID:    runID,
	}
}

// Interval returns the wait between notifications
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Run blocks, notifying once per interval, until ctx is cancelled.
// It always returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context) error {
	log := logger.ForRun(s.runID)
	log.Info("Reminders started", "interval", s.interval)

	ticks := 0
	for {
		select {
		case <-ctx.Done():
			log.Info("Reminders stopped", "ticks", ticks)
			return ctx.Err()
		case <-s.clock.After(s.interval):
		}

		// A cancel that raced with the timer wins.
		if ctx.Err() != nil {
			log.Info("Reminders stopped", "ticks", ticks)
			return ctx.Err()
		}

		ticks++
		log.Debug("Sending reminder", "tick", ticks, "message", s.note.Message)
		if err := s.notifier.Notify(s.note); err != nil {
			log.Error("Reminder notification failed", "tick", ticks, "error", err)
		}
	}
}
