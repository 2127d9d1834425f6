package core

import (
	"reflect"
	"testing"
)

func sampleRecords() []Record {
	return []Record{
		{Member: "Husnain", Amount: Money{Cents: 10000}, Category: "Grocery", PaymentMode: Cash, Date: NewDate(2024, 1, 5)},
		{Member: "Father", Amount: Money{Cents: 25000}, Category: "Fuel", PaymentMode: CreditCard, Date: NewDate(2024, 1, 12)},
		{Member: "Husnain", Amount: Money{Cents: 5000}, Category: "Grocery", PaymentMode: Online, Date: NewDate(2024, 2, 3)},
		{Member: "Mother", Amount: Money{Cents: 7500}, Category: "Medicine", PaymentMode: Cash, Date: NewDate(2024, 2, 20)},
		{Member: "Brother", Amount: Money{Cents: 1500}, Category: "Snacks", PaymentMode: Cash, Date: NewDate(2023, 12, 30)},
	}
}

func TestMonths(t *testing.T) {
	got := Months(sampleRecords())
	want := []string{"2024-02", "2024-01", "2023-12"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Months = %v, want %v", got, want)
	}
}

func TestMonthsEmpty(t *testing.T) {
	if got := Months(nil); len(got) != 0 {
		t.Fatalf("Months(nil) = %v, want empty", got)
	}
}

func TestFilterMonth(t *testing.T) {
	got := FilterMonth(sampleRecords(), "2024-01")
	if len(got) != 2 {
		t.Fatalf("expected 2 records for 2024-01, got %d", len(got))
	}
	if got[0].Category != "Grocery" || got[1].Category != "Fuel" {
		t.Fatalf("input order not preserved: %v", got)
	}
	if got := FilterMonth(sampleRecords(), "2025-07"); len(got) != 0 {
		t.Fatalf("expected no records for absent month, got %d", len(got))
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords(), "2024-01")

	if s.Month != "2024-01" {
		t.Fatalf("Month = %q", s.Month)
	}
	if s.Count != 2 {
		t.Fatalf("Count = %d, want 2", s.Count)
	}
	if s.Total.Cents != 35000 {
		t.Fatalf("Total = %d, want 35000", s.Total.Cents)
	}
	if s.Mean.Cents != 17500 {
		t.Fatalf("Mean = %d, want 17500", s.Mean.Cents)
	}

	wantCat := []GroupAmount{
		{Name: "Fuel", Amount: Money{Cents: 25000}},
		{Name: "Grocery", Amount: Money{Cents: 10000}},
	}
	if !reflect.DeepEqual(s.ByCategory, wantCat) {
		t.Fatalf("ByCategory = %v, want %v", s.ByCategory, wantCat)
	}

	wantMem := []GroupAmount{
		{Name: "Father", Amount: Money{Cents: 25000}},
		{Name: "Husnain", Amount: Money{Cents: 10000}},
	}
	if !reflect.DeepEqual(s.ByMember, wantMem) {
		t.Fatalf("ByMember = %v, want %v", s.ByMember, wantMem)
	}

	// Group sums must account for the whole total.
	var catSum, memSum int64
	for _, g := range s.ByCategory {
		catSum += g.Amount.Cents
	}
	for _, g := range s.ByMember {
		memSum += g.Amount.Cents
	}
	if catSum != s.Total.Cents || memSum != s.Total.Cents {
		t.Fatalf("group sums %d/%d do not match total %d", catSum, memSum, s.Total.Cents)
	}
}

func TestSummarizeEmptyMonth(t *testing.T) {
	s := Summarize(sampleRecords(), "2025-07")
	if s.Count != 0 {
		t.Fatalf("Count = %d, want 0", s.Count)
	}
	if s.Total.Cents != 0 || s.Mean.Cents != 0 {
		t.Fatalf("expected zero total and mean, got %d/%d", s.Total.Cents, s.Mean.Cents)
	}
	if len(s.ByCategory) != 0 || len(s.ByMember) != 0 {
		t.Fatalf("expected empty groupings")
	}
}

func TestSummarizeMeanRounding(t *testing.T) {
	records := []Record{
		{Member: "Husnain", Amount: Money{Cents: 1}, Category: "A", PaymentMode: Cash, Date: NewDate(2024, 3, 1)},
		{Member: "Husnain", Amount: Money{Cents: 1}, Category: "A", PaymentMode: Cash, Date: NewDate(2024, 3, 2)},
		{Member: "Husnain", Amount: Money{Cents: 1}, Category: "A", PaymentMode: Cash, Date: NewDate(2024, 3, 3)},
	}
	s := Summarize(records, "2024-03")
	// 3/3 cents rounds to 1, not 0.
	if s.Mean.Cents != 1 {
		t.Fatalf("Mean = %d, want 1", s.Mean.Cents)
	}
}

func TestSortedGroupsTieBreak(t *testing.T) {
	records := []Record{
		{Member: "Father", Amount: Money{Cents: 500}, Category: "Fuel", PaymentMode: Cash, Date: NewDate(2024, 4, 1)},
		{Member: "Mother", Amount: Money{Cents: 500}, Category: "Bills", PaymentMode: Cash, Date: NewDate(2024, 4, 2)},
	}
	s := Summarize(records, "2024-04")
	if s.ByCategory[0].Name != "Bills" || s.ByCategory[1].Name != "Fuel" {
		t.Fatalf("equal amounts not ordered by name: %v", s.ByCategory)
	}
}
