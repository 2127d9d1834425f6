package core

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string // serialized form, "" means empty date
	}{
		{"2024-01-15", "2024-01-15"},
		{" 2024-01-15 ", "2024-01-15"},
		{"15-01-2024", "2024-01-15"},
		{"15/01/2024", "2024-01-15"},
		{"1/15/2024", "2024-01-15"},
		{"Jan 15, 2024", "2024-01-15"},
		{"15 Jan 2024", "2024-01-15"},
		{"2024-01-15T13:45:00", "2024-01-15"},
		{"", ""},
		{"not a date", ""},
		{"2024-13-45", ""},
	}
	for _, tc := range cases {
		got := ParseDate(tc.in)
		if got.String() != tc.want {
			t.Fatalf("ParseDate(%q) = %q, want %q", tc.in, got.String(), tc.want)
		}
	}
}

func TestDateSerializeRoundTrip(t *testing.T) {
	d := NewDate(2024, 2, 29)
	back := ParseDate(d.String())
	if back.String() != d.String() {
		t.Fatalf("round trip changed date: %q -> %q", d.String(), back.String())
	}
}

func TestDateMonthKey(t *testing.T) {
	if key := NewDate(2024, 1, 31).MonthKey(); key != "2024-01" {
		t.Fatalf("MonthKey = %q, want 2024-01", key)
	}
	if key := (Date{}).MonthKey(); key != "" {
		t.Fatalf("empty date MonthKey = %q, want empty", key)
	}
}

func TestNormalizeCategory(t *testing.T) {
	cases := []struct{ in, want string }{
		{" grocery ", "Grocery"},
		{"GROCERY", "Grocery"},
		{"grocery", "Grocery"},
		{"home repair", "Home Repair"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := NormalizeCategory(tc.in); got != tc.want {
			t.Fatalf("NormalizeCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsMember(t *testing.T) {
	for _, m := range Members {
		if !IsMember(m) {
			t.Fatalf("IsMember(%q) = false", m)
		}
	}
	if IsMember("Stranger") {
		t.Fatal("IsMember accepted an unknown name")
	}
	if IsMember("") {
		t.Fatal("IsMember accepted an empty name")
	}
}

func validRecord() Record {
	return Record{
		Member:      "Husnain",
		Amount:      Money{Cents: 1250},
		Category:    "Grocery",
		PaymentMode: Cash,
		Date:        NewDate(2024, 1, 15),
	}
}

func TestRecordValidate(t *testing.T) {
	if err := validRecord().Validate(); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Record)
		want   error
	}{
		{"empty member", func(r *Record) { r.Member = "" }, ErrEmptyMember},
		{"blank member", func(r *Record) { r.Member = "  " }, ErrEmptyMember},
		{"unknown member", func(r *Record) { r.Member = "Stranger" }, ErrUnknownMember},
		{"empty category", func(r *Record) { r.Category = " " }, ErrEmptyCategory},
		{"bad payment mode", func(r *Record) { r.PaymentMode = "Cheque" }, ErrInvalidPaymentMode},
		{"zero amount", func(r *Record) { r.Amount = Money{} }, ErrInvalidAmount},
		{"negative amount", func(r *Record) { r.Amount = Money{Cents: -5} }, ErrInvalidAmount},
		{"missing date", func(r *Record) { r.Date = Date{} }, ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := validRecord()
			tc.mutate(&rec)
			if err := rec.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRecordValidateOptionalDeadline(t *testing.T) {
	rec := validRecord()
	if err := rec.Validate(); err != nil {
		t.Fatalf("record without deadline rejected: %v", err)
	}
	rec.Deadline = NewDate(2024, 2, 1)
	if err := rec.Validate(); err != nil {
		t.Fatalf("record with deadline rejected: %v", err)
	}
}
