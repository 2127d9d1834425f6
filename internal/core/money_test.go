package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"12.5", 1250, true},
		{"12.50", 1250, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyDecimalString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{1250, "12.50"},
		{100, "1.00"},
		{1, "0.01"},
		{10, "0.10"},
		{123456, "1234.56"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).DecimalString(); got != tc.want {
			t.Fatalf("cents=%d expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}

func TestMoneyDecimalStringRoundTrip(t *testing.T) {
	for _, cents := range []int64{1, 99, 100, 1250, 999999} {
		s := Money{Cents: cents}.DecimalString()
		back, err := ParseDecimalToCents(s)
		if err != nil {
			t.Fatalf("reparse %q: %v", s, err)
		}
		if back != cents {
			t.Fatalf("round trip %d -> %q -> %d", cents, s, back)
		}
	}
}
