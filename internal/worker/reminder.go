// Package worker implements the deadline reminder worker. It runs as a
// separate binary so the dashboard process stays free of background tasks.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/Chemi-prog/family-budget-app-v2/internal/amqp"
	"github.com/Chemi-prog/family-budget-app-v2/internal/core"

	"github.com/jinzhu/now"
	"golang.org/x/sync/errgroup"
)

// RecordSource provides the current record set. Satisfied by *store.Store.
type RecordSource interface {
	Load(ctx context.Context) ([]core.Record, int, error)
}

// EventSource delivers record-added events. Satisfied by *amqp.Client.
type EventSource interface {
	ConsumeRecordAdded(ctx context.Context, handler func(*amqp.RecordAddedMessage) error) error
}

// ReminderWorker logs reminders for records whose payment deadline falls
// within the configured window. It reacts immediately to record-added events
// and additionally re-scans the full record set on a fixed interval.
type ReminderWorker struct {
	source   RecordSource
	events   EventSource
	window   time.Duration
	interval time.Duration
	now      func() time.Time
}

func NewReminderWorker(source RecordSource, events EventSource, window, interval time.Duration) *ReminderWorker {
	return &ReminderWorker{
		source:   source,
		events:   events,
		window:   window,
		interval: interval,
		now:      time.Now,
	}
}

// Run blocks until ctx is done. The event consumer and the periodic scan run
// concurrently; either failing stops the worker.
func (w *ReminderWorker) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if w.events != nil {
		g.Go(func() error {
			return w.events.ConsumeRecordAdded(ctx, func(msg *amqp.RecordAddedMessage) error {
				return w.handleEvent(ctx, msg)
			})
		})
	}

	g.Go(func() error {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				w.scan(ctx)
			}
		}
	})

	return g.Wait()
}

func (w *ReminderWorker) handleEvent(ctx context.Context, msg *amqp.RecordAddedMessage) error {
	rec := msg.Record()
	if rec.Deadline.IsEmpty() {
		return nil
	}
	if due := DueWithin([]core.Record{rec}, w.now(), w.window); len(due) > 0 {
		w.logReminder(ctx, rec)
	}
	return nil
}

// scan loads all records and logs one reminder per upcoming deadline.
// Load failures are logged and retried on the next tick.
func (w *ReminderWorker) scan(ctx context.Context) {
	records, _, err := w.source.Load(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Reminder scan load failed", "error", err)
		return
	}
	due := DueWithin(records, w.now(), w.window)
	for _, rec := range due {
		w.logReminder(ctx, rec)
	}
	slog.InfoContext(ctx, "Reminder scan completed",
		"records", len(records),
		"due", len(due))
}

func (w *ReminderWorker) logReminder(ctx context.Context, rec core.Record) {
	slog.WarnContext(ctx, "Payment deadline approaching",
		"member", rec.Member,
		"category", rec.Category,
		"amount_cents", rec.Amount.Cents,
		"deadline", rec.Deadline.String())
}

// DueWithin returns the records whose deadline falls between the start of
// today and the end of the day `window` from t, preserving input order.
// Days are compared as calendar-date keys: deadlines are UTC-anchored while
// t carries the caller's zone, so comparing instants directly would skip a
// same-day deadline in any zone west of UTC.
func DueWithin(records []core.Record, t time.Time, window time.Duration) []core.Record {
	from := now.With(t).BeginningOfDay().Format(core.DateLayout)
	until := now.With(t.Add(window)).EndOfDay().Format(core.DateLayout)

	var out []core.Record
	for _, rec := range records {
		if rec.Deadline.IsEmpty() {
			continue
		}
		key := rec.Deadline.String()
		if key >= from && key <= until {
			out = append(out, rec)
		}
	}
	return out
}
