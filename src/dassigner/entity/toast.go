package entity

import "time"

// Severity classifies a toast.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Toast is a transient user-facing notification. Toasts are never persisted.
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToastAction says what happened to a toast.
type ToastAction string

const (
	ToastAdded   ToastAction = "added"
	ToastRemoved ToastAction = "removed"
)

// ToastEvent is pushed to clients whenever a toast appears or goes away.
type ToastEvent struct {
	Action ToastAction `json:"action"`
	Toast  Toast       `json:"toast"`
}
