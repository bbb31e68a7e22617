// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// OrderRecordedEvent is published after a checkout commits. It carries
// enough for downstream consumers to notify the buyer or feed analytics
// without re-querying the primary database.
type OrderRecordedEvent struct {
	TransactionID    uint64  `json:"transaction_id"`
	VisitorID        uint64  `json:"visitor_id"`
	Total            float64 `json:"total"`
	ItemCount        int     `json:"item_count"`
	MembershipMonths int     `json:"membership_months"`
	MembershipEnd    string  `json:"membership_end,omitempty"`
	RecordedAt       string  `json:"recorded_at"`
}
