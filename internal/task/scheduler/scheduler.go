package scheduler

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"taskflow-backend/internal/task/usecase"

	"github.com/robfig/cron/v3"
)

// Archiver moves long-completed tasks to the archived status on a daily cron
// schedule. It is the only producer of the "archived" activity action.
type Archiver struct {
	taskUsecase usecase.TaskUsecase
	retention   time.Duration
	cron        *cron.Cron
}

// NewArchiver creates an archiver with the given retention window. A zero or
// negative retention disables it.
func NewArchiver(taskUsecase usecase.TaskUsecase, retention time.Duration) *Archiver {
	return &Archiver{
		taskUsecase: taskUsecase,
		retention:   retention,
		cron:        cron.New(cron.WithLocation(time.Local)),
	}
}

// Start registers the daily job at the given local HH:MM time and starts the
// cron loop.
func (a *Archiver) Start(at string) error {
	if a.retention <= 0 {
		log.Println("[Archiver] Retention not configured, auto-archiving disabled")
		return nil
	}

	spec, err := buildDailySpec(at)
	if err != nil {
		return err
	}
	if _, err := a.cron.AddFunc(spec, a.run); err != nil {
		return fmt.Errorf("schedule archive job: %w", err)
	}

	log.Printf("[Archiver] Archiving tasks completed more than %s ago, daily at %s", a.retention, at)
	a.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (a *Archiver) Stop() {
	ctx := a.cron.Stop()
	<-ctx.Done()
}

func (a *Archiver) run() {
	cutoff := time.Now().Add(-a.retention)
	archived, err := a.taskUsecase.ArchiveCompletedBefore(cutoff)
	if err != nil {
		log.Printf("[Archiver] Archive pass failed: %v", err)
		return
	}
	if archived > 0 {
		log.Printf("[Archiver] Archived %d completed tasks", archived)
	}
}

func buildDailySpec(timeStr string) (string, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", timeStr)
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}
