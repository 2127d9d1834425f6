package core

import "sort"

// GroupAmount is an amount aggregated under a group name (category or member).
type GroupAmount struct {
	Name   string
	Amount Money
}

// MonthSummary holds the dashboard figures for a single month.
//
// Mean is defined only when Count > 0; callers must check Count before
// rendering it.
type MonthSummary struct {
	Month      string // "2024-01"
	Count      int
	Total      Money
	Mean       Money
	ByCategory []GroupAmount
	ByMember   []GroupAmount
}

// Months returns the distinct month keys present in the records,
// most recent first.
func Months(records []Record) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range records {
		key := r.Date.MonthKey()
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

// FilterMonth returns the records whose date falls in the given month,
// preserving input order.
func FilterMonth(records []Record, month string) []Record {
	var out []Record
	for _, r := range records {
		if r.Date.MonthKey() == month {
			out = append(out, r)
		}
	}
	return out
}

// Summarize filters the records to the selected month and computes the
// total, the mean and the per-category and per-member sums, each sorted by
// amount descending.
func Summarize(records []Record, month string) MonthSummary {
	filtered := FilterMonth(records, month)

	s := MonthSummary{Month: month, Count: len(filtered)}
	byCategory := map[string]int64{}
	byMember := map[string]int64{}
	for _, r := range filtered {
		s.Total.Cents += r.Amount.Cents
		byCategory[r.Category] += r.Amount.Cents
		byMember[r.Member] += r.Amount.Cents
	}
	if s.Count > 0 {
		// Half-up rounding to the nearest cent.
		s.Mean = Money{Cents: (s.Total.Cents + int64(s.Count)/2) / int64(s.Count)}
	}
	s.ByCategory = sortedGroups(byCategory)
	s.ByMember = sortedGroups(byMember)
	return s
}

func sortedGroups(sums map[string]int64) []GroupAmount {
	out := make([]GroupAmount, 0, len(sums))
	for name, cents := range sums {
		out = append(out, GroupAmount{Name: name, Amount: Money{Cents: cents}})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount.Cents != out[j].Amount.Cents {
			return out[i].Amount.Cents > out[j].Amount.Cents
		}
		return out[i].Name < out[j].Name
	})
	return out
}
