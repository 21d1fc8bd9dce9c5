package usecase

import (
	"context"

	"rentify-api/dto/res"
	"rentify-api/entity"
)

type NotificationUsecase interface {
	GetAllNotifications(ctx context.Context) ([]entity.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID string) (entity.Notification, error)
	GetInterestedOwners(ctx context.Context, userID string) ([]res.FeedEntry, error)
}
