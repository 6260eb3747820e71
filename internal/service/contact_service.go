package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact message. msg.ID is populated by the
	// implementation.
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// List returns every stored contact message in insertion order.
	List(ctx context.Context) ([]*model.ContactMessage, error)
}
