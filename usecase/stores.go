package usecase

import (
	"context"

	"rentify-api/entity"
	"rentify-api/enum"
)

// MessageStore and NotificationStore are the two persistence capabilities
// the workflows depend on. They live in different engines (Postgres and
// Redis) and are never mutated in one transaction; the feed aggregator
// tolerates the notification store being unavailable.

type MessageStore interface {
	Create(ctx context.Context, message *entity.Message) error
	FindByIDWithRelations(ctx context.Context, id string) (*entity.Message, error)
	FindByRecipient(ctx context.Context, userID string) ([]entity.Message, error)
	FindReadBySender(ctx context.Context, userID string) ([]entity.Message, error)
	ClaimRead(ctx context.Context, id string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status enum.InquiryStatus) error
	Delete(ctx context.Context, message *entity.Message) error
}

type NotificationStore interface {
	Create(ctx context.Context, notification *entity.Notification) error
	ListAll(ctx context.Context) ([]entity.Notification, error)
	ListForRecipient(ctx context.Context, userID string) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id string) (previous entity.Notification, updated entity.Notification, err error)
}
