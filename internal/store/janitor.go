package store

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Janitor periodically removes reports that have passed their validity
// window from the store.
type Janitor struct {
	store    *ReportStore
	logger   *zap.Logger
	cron     *cron.Cron
	schedule string
}

// NewJanitor creates a janitor that sweeps the store on the given cron
// schedule.
func NewJanitor(store *ReportStore, schedule string, logger *zap.Logger) *Janitor {
	return &Janitor{
		store:    store,
		logger:   logger,
		cron:     cron.New(cron.WithLocation(time.UTC)),
		schedule: schedule,
	}
}

// Start schedules the sweep and starts the cron runner.
func (j *Janitor) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.sweep); err != nil {
		return fmt.Errorf("failed to schedule report sweep: %w", err)
	}

	j.cron.Start()
	j.logger.Info("Report janitor started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the cron runner and waits for a running sweep to finish.
func (j *Janitor) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.logger.Info("Report janitor stopped")
}

// Sweep removes expired reports immediately, outside the schedule.
func (j *Janitor) Sweep() int {
	return j.store.PurgeExpired(time.Now().UTC())
}

func (j *Janitor) sweep() {
	j.Sweep()
}
