package worker

import (
	"testing"
	"time"

	"github.com/Chemi-prog/family-budget-app-v2/internal/core"
)

func recordDue(deadline core.Date) core.Record {
	return core.Record{
		Member:      "Husnain",
		Amount:      core.Money{Cents: 1000},
		Category:    "Bills",
		PaymentMode: core.Online,
		Date:        core.NewDate(2024, 1, 1),
		Deadline:    deadline,
	}
}

func TestDueWithin(t *testing.T) {
	// Reference instant: mid-day on 2024-01-10, one week window.
	at := time.Date(2024, 1, 10, 13, 30, 0, 0, time.UTC)
	window := 7 * 24 * time.Hour

	records := []core.Record{
		recordDue(core.NewDate(2024, 1, 9)),  // already past
		recordDue(core.NewDate(2024, 1, 10)), // today counts
		recordDue(core.NewDate(2024, 1, 14)),
		recordDue(core.NewDate(2024, 1, 17)), // last day of the window
		recordDue(core.NewDate(2024, 1, 18)), // one day beyond
		recordDue(core.Date{}),               // no deadline
	}

	due := DueWithin(records, at, window)
	if len(due) != 3 {
		t.Fatalf("due = %d records, want 3", len(due))
	}
	want := []string{"2024-01-10", "2024-01-14", "2024-01-17"}
	for i, w := range want {
		if due[i].Deadline.String() != w {
			t.Fatalf("due[%d] = %q, want %q", i, due[i].Deadline.String(), w)
		}
	}
}

func TestDueWithinWestOfUTCZone(t *testing.T) {
	// Deadlines are UTC-anchored calendar dates; a caller west of UTC must
	// still see a deadline falling on its own current day.
	zone := time.FixedZone("UTC-5", -5*60*60)
	at := time.Date(2024, 1, 10, 13, 0, 0, 0, zone)

	records := []core.Record{
		recordDue(core.NewDate(2024, 1, 10)), // today in the caller's zone
		recordDue(core.NewDate(2024, 1, 17)), // last day of the window
		recordDue(core.NewDate(2024, 1, 18)), // one day beyond
	}
	due := DueWithin(records, at, 7*24*time.Hour)
	if len(due) != 2 {
		t.Fatalf("due = %d records, want 2", len(due))
	}
	if due[0].Deadline.String() != "2024-01-10" {
		t.Fatalf("same-day deadline missed in non-UTC zone: %v", due)
	}
}

func TestDueWithinEmpty(t *testing.T) {
	if due := DueWithin(nil, time.Now(), time.Hour); len(due) != 0 {
		t.Fatalf("expected no due records, got %d", len(due))
	}
}

func TestDueWithinShortWindow(t *testing.T) {
	// A sub-day window still covers the whole of the final day.
	at := time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC)
	records := []core.Record{
		recordDue(core.NewDate(2024, 1, 10)),
		recordDue(core.NewDate(2024, 1, 11)),
	}
	due := DueWithin(records, at, 2*time.Hour)
	if len(due) != 2 {
		t.Fatalf("due = %d records, want 2", len(due))
	}
}
