package model

import "time"

// Notification is a per-visitor message with a checked flag. Rows are
// written by the order event consumer (or by back-office tooling) and
// marked checked by the visitor.
type Notification struct {
	NotificationID   uint64    `json:"notificationID"`   // notification.NotificationId
	VisitorID        uint64    `json:"visitorID"`        // notification.visitorID
	NotificationText string    `json:"notificationText"` // notification.NotificationText
	NotificationTime time.Time `json:"notificationTime"` // notification.NotificationTime
	IsCheck          bool      `json:"isCheck"`          // notification.IsCheck
}
