package amqp

import (
	"encoding/json"
	"time"

	"github.com/Chemi-prog/family-budget-app-v2/internal/core"
)

// RecordAddedMessage announces a newly persisted expense record. It carries
// the full record since the remote sheet has no stable row identifiers.
type RecordAddedMessage struct {
	Member      string    `json:"member"`
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category"`
	PaymentMode string    `json:"payment_mode"`
	Date        string    `json:"date"`
	Deadline    string    `json:"deadline,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewRecordAddedMessage builds a message from a record.
func NewRecordAddedMessage(rec core.Record) *RecordAddedMessage {
	return &RecordAddedMessage{
		Member:      rec.Member,
		AmountCents: rec.Amount.Cents,
		Category:    rec.Category,
		PaymentMode: string(rec.PaymentMode),
		Date:        rec.Date.String(),
		Deadline:    rec.Deadline.String(),
		Timestamp:   time.Now(),
	}
}

// Record reconstructs the expense record carried by the message.
func (m *RecordAddedMessage) Record() core.Record {
	return core.Record{
		Member:      m.Member,
		Amount:      core.Money{Cents: m.AmountCents},
		Category:    m.Category,
		PaymentMode: core.PaymentMode(m.PaymentMode),
		Date:        core.ParseDate(m.Date),
		Deadline:    core.ParseDate(m.Deadline),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *RecordAddedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RecordAddedMessageFromJSON parses a message from JSON bytes.
func RecordAddedMessageFromJSON(data []byte) (*RecordAddedMessage, error) {
	var msg RecordAddedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
