package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Chemi-prog/family-budget-app-v2/internal/amqp"
	"github.com/Chemi-prog/family-budget-app-v2/internal/core"
	"github.com/Chemi-prog/family-budget-app-v2/internal/sheets/memory"
	"github.com/Chemi-prog/family-budget-app-v2/internal/store"
)

type fakePublisher struct {
	published []*amqp.RecordAddedMessage
	err       error
}

func (f *fakePublisher) PublishRecordAdded(_ context.Context, msg *amqp.RecordAddedMessage) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

func testRecord() core.Record {
	return core.Record{
		Member:      "Husnain",
		Amount:      core.Money{Cents: 1250},
		Category:    "grocery",
		PaymentMode: core.Cash,
		Date:        core.NewDate(2024, 1, 15),
	}
}

func newTestService(pub EventPublisher) *RecordService {
	return NewRecordService(store.New(memory.New(), time.Minute), pub)
}

func TestCreateRecordPublishesEvent(t *testing.T) {
	pub := &fakePublisher{}
	svc := newTestService(pub)

	stored, err := svc.CreateRecord(context.Background(), testRecord())
	if err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	if stored.Category != "Grocery" {
		t.Fatalf("stored category = %q, want normalized Grocery", stored.Category)
	}
	if len(pub.published) != 1 {
		t.Fatalf("published %d events, want 1", len(pub.published))
	}
	// The event carries the stored record, normalization included.
	if pub.published[0].Category != "Grocery" || pub.published[0].AmountCents != 1250 {
		t.Fatalf("event payload mismatch: %+v", pub.published[0])
	}
}

func TestCreateRecordPublishFailureDoesNotFail(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := newTestService(pub)

	if _, err := svc.CreateRecord(context.Background(), testRecord()); err != nil {
		t.Fatalf("publish failure must not fail the create: %v", err)
	}

	records, _, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("record not persisted: %d records", len(records))
	}
}

func TestCreateRecordWithoutPublisher(t *testing.T) {
	svc := newTestService(nil)
	if _, err := svc.CreateRecord(context.Background(), testRecord()); err != nil {
		t.Fatalf("CreateRecord without publisher: %v", err)
	}
}

func TestCreateRecordValidationFailureSkipsPublish(t *testing.T) {
	pub := &fakePublisher{}
	svc := newTestService(pub)

	rec := testRecord()
	rec.Amount = core.Money{}
	if _, err := svc.CreateRecord(context.Background(), rec); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if len(pub.published) != 0 {
		t.Fatal("rejected record must not publish an event")
	}
}
