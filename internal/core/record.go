package core

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	Cash       PaymentMode = "Cash"
	CreditCard PaymentMode = "Credit Card"
	Online     PaymentMode = "Online"
)

type (
	PaymentMode string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Record is a single household expense entry.
	Record struct {
		Member      string
		Amount      Money
		Category    string
		PaymentMode PaymentMode
		Date        Date
		Deadline    Date // optional; zero means absent
	}
)

// Members is the fixed set of household members allowed on a record.
var Members = []string{"Husnain", "Brother", "Father", "Mother"}

var (
	ErrEmptyMember        = errors.New("empty member")
	ErrUnknownMember      = errors.New("unknown member")
	ErrEmptyCategory      = errors.New("empty category")
	ErrInvalidPaymentMode = errors.New("invalid payment mode")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDate        = errors.New("invalid date")
)

// DateLayout is the fixed serialization format for dates in the remote sheet.
const DateLayout = "2006-01-02"

// dateLayouts are the formats ParseDate accepts, tried in order.
var dateLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05",
	"02-01-2006",
	"02/01/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a calendar date leniently. An unparseable or empty value
// yields a zero Date rather than an error; callers decide whether a missing
// date is acceptable.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t.Truncate(24 * time.Hour)}
		}
	}
	return Date{}
}

// IsEmpty reports whether the date is absent.
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

// String renders the date in the fixed sheet format, or "" when absent.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MonthKey returns the date truncated to its calendar year-month ("2024-01").
func (d Date) MonthKey() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01")
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (pm PaymentMode) Validate() error {
	switch pm {
	case Cash, CreditCard, Online:
		return nil
	default:
		return ErrInvalidPaymentMode
	}
}

var titleCaser = cases.Title(language.English)

// NormalizeCategory trims the category and converts it to title case,
// so " grocery " and "GROCERY" both become "Grocery".
func NormalizeCategory(s string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(s)))
}

// IsMember reports whether name belongs to the household member set.
func IsMember(name string) bool {
	for _, m := range Members {
		if m == name {
			return true
		}
	}
	return false
}

func (r Record) Validate() error {
	if strings.TrimSpace(r.Member) == "" {
		return ErrEmptyMember
	}
	if !IsMember(r.Member) {
		return ErrUnknownMember
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if err := r.PaymentMode.Validate(); err != nil {
		return err
	}
	if err := r.Amount.Validate(); err != nil {
		return err
	}
	if err := r.Date.Validate(); err != nil {
		return err
	}
	// Deadline is optional; no constraint when absent.
	return nil
}
