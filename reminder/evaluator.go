// Package reminder periodically scans pending tasks for due reminders.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/mytodo/mytodo/todo"
)

const (
	// DefaultInterval is how often the evaluator scans.
	DefaultInterval = time.Minute

	// DefaultInitialDelay is how long after startup the first scan runs.
	DefaultInitialDelay = 3 * time.Second
)

// Notifier delivers a notification to the host facility. Delivery is
// fire-and-forget; there is no confirmation and no retry.
type Notifier interface {
	Notify(title, body string)
}

// Claimer marks due reminders as sent and returns the claimed tasks.
// *todo.Store implements it.
type Claimer interface {
	ClaimDueReminders(now time.Time) []todo.Task
}

// Options configures an Evaluator.
type Options struct {
	// Interval between scans. Defaults to DefaultInterval.
	Interval time.Duration

	// InitialDelay before the first scan. Defaults to DefaultInitialDelay.
	InitialDelay time.Duration
}

// Evaluator runs the periodic reminder scan.
//
// Idempotence comes from the claimer: tasks are marked sent before any
// notification goes out, so a repeated scan with unchanged state fires
// nothing and each task notifies at most once.
type Evaluator struct {
	claimer      Claimer
	notifier     Notifier
	interval     time.Duration
	initialDelay time.Duration
}

// New returns an evaluator over the claimer and notifier.
func New(claimer Claimer, notifier Notifier, opts Options) *Evaluator {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	initialDelay := opts.InitialDelay
	if initialDelay <= 0 {
		initialDelay = DefaultInitialDelay
	}
	return &Evaluator{
		claimer:      claimer,
		notifier:     notifier,
		interval:     interval,
		initialDelay: initialDelay,
	}
}

// Run scans once after the initial delay and then at every interval tick
// until ctx is cancelled.
func (e *Evaluator) Run(ctx context.Context) {
	select {
	case <-time.After(e.initialDelay):
	case <-ctx.Done():
		return
	}
	e.Scan(time.Now())

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			e.Scan(time.Now())
		case <-ctx.Done():
			return
		}
	}
}

// Scan claims every due reminder and notifies each claimed task once.
// It returns the number of notifications sent.
func (e *Evaluator) Scan(now time.Time) int {
	claimed := e.claimer.ClaimDueReminders(now)
	for _, task := range claimed {
		e.notifier.Notify(task.Title, notificationBody(task))
	}
	return len(claimed)
}

func notificationBody(task todo.Task) string {
	if task.Deadline == "" {
		return "Task is due"
	}
	return fmt.Sprintf("Due %s", task.Deadline)
}
