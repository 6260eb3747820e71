package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/portfolio/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockContactRepository — in-memory stub for testing
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	saveFunc func(ctx context.Context, msg *model.ContactMessage) error
	listFunc func(ctx context.Context) ([]*model.ContactMessage, error)
}

func (m *mockContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, msg)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactRepository) Ping(ctx context.Context) error { return nil }

func (m *mockContactRepository) Close() error { return nil }

// captureLogs redirects the default slog logger for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestContactService_Submit_SavesMessage(t *testing.T) {
	var saved *model.ContactMessage
	mock := &mockContactRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			msg.ID = 7
			saved = msg
			return nil
		},
	}
	svc := NewContactService(mock)
	logs := captureLogs(t)

	msg := &model.ContactMessage{Name: "Ann", Email: "a@x.com"}
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != msg {
		t.Fatal("expected Save to be called with the submitted message")
	}
	if msg.ID != 7 {
		t.Errorf("expected id from repository, got %d", msg.ID)
	}
	if !strings.Contains(logs.String(), "contact message received") {
		t.Errorf("expected diagnostic log line, got %q", logs.String())
	}
}

// TestContactService_Submit_RepositoryError propagates repository errors.
func TestContactService_Submit_RepositoryError(t *testing.T) {
	mock := &mockContactRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return errors.New("db write failed")
		},
	}
	svc := NewContactService(mock)
	logs := captureLogs(t)

	err := svc.Submit(context.Background(), &model.ContactMessage{Name: "a", Email: "e@e.com"})
	if err == nil {
		t.Error("expected error from repository, got nil")
	}
	if strings.Contains(logs.String(), "contact message received") {
		t.Error("did not expect a received log line for a failed save")
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestContactService_List_ReturnsMessages(t *testing.T) {
	want := []*model.ContactMessage{
		{ID: 1, Name: "Ann", Email: "a@b.com"},
	}
	mock := &mockContactRepository{
		listFunc: func(ctx context.Context) ([]*model.ContactMessage, error) {
			return want, nil
		},
	}
	svc := NewContactService(mock)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestContactService_List_RepositoryError propagates repository errors.
func TestContactService_List_RepositoryError(t *testing.T) {
	mock := &mockContactRepository{
		listFunc: func(ctx context.Context) ([]*model.ContactMessage, error) {
			return nil, errors.New("db read failed")
		},
	}
	svc := NewContactService(mock)

	if _, err := svc.List(context.Background()); err == nil {
		t.Error("expected error from repository, got nil")
	}
}
