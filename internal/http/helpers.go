package http

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Chemi-prog/family-budget-app-v2/internal/core"
)

// formatRupees formats cents as a rupee string with thousands grouping
// (e.g. "Rs. 1,234.56").
func formatRupees(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	whole := strconv.FormatInt(cents/100, 10)
	rem := cents % 100

	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}

	s := fmt.Sprintf("Rs. %s.%02d", b.String(), rem)
	if neg {
		return "-" + s
	}
	return s
}

// todayDate converts an instant to the calendar date in its own zone. Going
// through Truncate would floor to UTC midnight and shift the day for any
// zone west of UTC.
func todayDate(t time.Time) core.Date {
	y, m, d := t.Date()
	return core.NewDate(y, int(m), d)
}

// sanitizeInput removes potentially dangerous characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	result := strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
	return result
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

// isValidationErr reports whether the error is a record validation failure,
// as opposed to a persistence failure.
func isValidationErr(err error) bool {
	for _, sentinel := range []error{
		core.ErrEmptyMember,
		core.ErrUnknownMember,
		core.ErrEmptyCategory,
		core.ErrInvalidPaymentMode,
		core.ErrInvalidAmount,
		core.ErrInvalidDate,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
