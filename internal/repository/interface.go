package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	DB
	// Save inserts msg and sets msg.ID to the id assigned by the store.
	Save(ctx context.Context, msg *model.ContactMessage) error
	// List returns every stored message in ascending id order.
	List(ctx context.Context) ([]*model.ContactMessage, error)
	Close() error
}
