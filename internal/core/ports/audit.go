package ports

import (
	"context"
	"time"
)

// Auth event types recorded in the audit trail.
const (
	AuthEventRegistered     = "user_registered"
	AuthEventLoginSucceeded = "login_succeeded"
	AuthEventLoginFailed    = "login_failed"
)

// AuthEventInput is the DTO handed to the audit pipeline. Subject is the
// identifier the caller presented; UserID is set only when the event maps to
// a known user.
type AuthEventInput struct {
	Type      string
	Subject   string
	UserID    string
	Timestamp time.Time
}

// AuditService persists a single auth event.
type AuditService interface {
	Process(ctx context.Context, event AuthEventInput) error
}

// AuditSink accepts events for asynchronous, best-effort recording. A nil
// sink disables the trail.
type AuditSink interface {
	Enqueue(event AuthEventInput)
}

// AuthEventRepository is the persistence contract for the audit trail.
type AuthEventRepository interface {
	Insert(ctx context.Context, event AuthEventInput) error
}
