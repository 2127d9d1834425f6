// Package services orchestrates record operations across the store and the
// optional event publisher.
package services

import (
	"context"
	"log/slog"

	"github.com/Chemi-prog/family-budget-app-v2/internal/amqp"
	"github.com/Chemi-prog/family-budget-app-v2/internal/core"
	"github.com/Chemi-prog/family-budget-app-v2/internal/store"
)

// EventPublisher publishes record events. Satisfied by *amqp.Client.
type EventPublisher interface {
	PublishRecordAdded(ctx context.Context, msg *amqp.RecordAddedMessage) error
}

// RecordService couples the record store with best-effort event publishing.
type RecordService struct {
	store  *store.Store
	events EventPublisher
}

func NewRecordService(st *store.Store, events EventPublisher) *RecordService {
	return &RecordService{
		store:  st,
		events: events,
	}
}

// Load returns the current record set and the dropped-row count.
func (s *RecordService) Load(ctx context.Context) ([]core.Record, int, error) {
	return s.store.Load(ctx)
}

// CreateRecord appends and flushes the record, then publishes a record-added
// event. Publish failures are logged and never fail the request; the flush
// already succeeded.
func (s *RecordService) CreateRecord(ctx context.Context, rec core.Record) (core.Record, error) {
	stored, err := s.store.Append(ctx, rec)
	if err != nil {
		return core.Record{}, err
	}

	if s.events != nil {
		msg := amqp.NewRecordAddedMessage(stored)
		if err := s.events.PublishRecordAdded(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "Failed to publish record added event",
				"error", err,
				"member", stored.Member,
				"category", stored.Category)
		}
	}
	return stored, nil
}
