package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vendly/auction-api/internal/core/ports"
)

type stubEventRepo struct {
	inserted []ports.AuthEventInput
	err      error
}

func (r *stubEventRepo) Insert(_ context.Context, event ports.AuthEventInput) error {
	if r.err != nil {
		return r.err
	}
	r.inserted = append(r.inserted, event)
	return nil
}

func TestAuditService_Process(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewAuditService(repo)

	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	err := svc.Process(context.Background(), ports.AuthEventInput{
		Type:      ports.AuthEventLoginSucceeded,
		Subject:   "a@x.com",
		UserID:    "u1",
		Timestamp: at,
	})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 inserted event, got %d", len(repo.inserted))
	}
	if repo.inserted[0].Timestamp != at {
		t.Fatalf("timestamp rewritten: %v", repo.inserted[0].Timestamp)
	}
}

func TestAuditService_Process_StampsZeroTimestamp(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewAuditService(repo)

	if err := svc.Process(context.Background(), ports.AuthEventInput{
		Type:    ports.AuthEventRegistered,
		Subject: "a@x.com",
	}); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if repo.inserted[0].Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be stamped")
	}
}

func TestAuditService_Process_UnknownType(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewAuditService(repo)

	if err := svc.Process(context.Background(), ports.AuthEventInput{Type: "password_changed"}); err == nil {
		t.Fatalf("expected error for unknown event type")
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("unexpected insert")
	}
}

func TestAuditService_Process_InsertError(t *testing.T) {
	repo := &stubEventRepo{err: errors.New("boom")}
	svc := NewAuditService(repo)

	if err := svc.Process(context.Background(), ports.AuthEventInput{Type: ports.AuthEventLoginFailed}); err == nil {
		t.Fatalf("expected insert error to propagate")
	}
}
