package service

import (
	"context"
	"log/slog"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit persists msg and logs the stored submission.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	if err := s.repo.Save(ctx, msg); err != nil {
		return err
	}
	slog.InfoContext(ctx, "contact message received",
		"id", msg.ID,
		"name", msg.Name,
		"email", msg.Email,
	)
	return nil
}

// List returns every stored contact message.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx)
}
