package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vendly/auction-api/internal/core/ports"
)

// AuditService persists auth events delivered by the queue dispatcher.
type AuditService struct {
	events ports.AuthEventRepository
}

func NewAuditService(events ports.AuthEventRepository) *AuditService {
	return &AuditService{events: events}
}

// Process validates and stores a single auth event. A zero timestamp is
// stamped at processing time so replayed inputs never persist as year one.
func (s *AuditService) Process(ctx context.Context, event ports.AuthEventInput) error {
	switch event.Type {
	case ports.AuthEventRegistered, ports.AuthEventLoginSucceeded, ports.AuthEventLoginFailed:
	default:
		return fmt.Errorf("unknown auth event type %q", event.Type)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if err := s.events.Insert(ctx, event); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
