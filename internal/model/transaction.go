package model

import "time"

// Transaction records one checkout event. Rows are immutable once written.
type Transaction struct {
	TransactionID uint64    `json:"transactionID"` // transactions.TransactionID
	VisitorID     uint64    `json:"visitorID"`     // transactions.visitorID
	Price         float64   `json:"price"`         // transactions.price (settled total)
	Date          time.Time `json:"date"`          // transactions.date
}

// TransactionItem is one denormalized line inside a transaction. Name,
// price and category are copied from the store item at checkout time so the
// receipt survives later catalog edits.
type TransactionItem struct {
	ItemID        uint64  // transaction_items.ItemID
	TransactionID uint64  // transaction_items.transactionID
	Name          string  // transaction_items.name
	Price         float64 // transaction_items.price
	Quantity      int     // transaction_items.quantity
	Category      string  // transaction_items.category
}

// Ticket represents a row in the `tickets` table. Tickets are sold in
// batches; status defaults to "Active".
type Ticket struct {
	TicketID  uint64    // tickets.TicketID
	VisitorID uint64    // tickets.visitorID
	Quantity  int       // tickets.quantity
	Price     float64   // tickets.price
	Date      time.Time // tickets.date
	Type      string    // tickets.type
	Status    string    // tickets.status
}
