package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"rentify-api/dto/res"
	"rentify-api/entity"
	"rentify-api/mail"
)

type NotificationUsecaseImpl struct {
	Notifications NotificationStore
	Messages      MessageStore
	Mailer        mail.Mailer
	*logrus.Logger
}

func NewNotificationUsecase(
	notifications NotificationStore,
	messages MessageStore,
	mailer mail.Mailer,
	logger *logrus.Logger,
) NotificationUsecase {
	return &NotificationUsecaseImpl{
		Notifications: notifications,
		Messages:      messages,
		Mailer:        mailer,
		Logger:        logger,
	}
}

func (uc *NotificationUsecaseImpl) GetAllNotifications(ctx context.Context) ([]entity.Notification, error) {
	notifications, err := uc.Notifications.ListAll(ctx)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to fetch notifications")
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead flips the read flag and emails the tenant the
// owner's contact details, composed from the record as it was before the
// update. The email is advisory; a send failure does not undo the flag.
func (uc *NotificationUsecaseImpl) MarkNotificationRead(ctx context.Context, notificationID string) (entity.Notification, error) {
	previous, updated, err := uc.Notifications.MarkRead(ctx, notificationID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.Notification{}, ErrNotFound
		}
		uc.Logger.WithError(err).Errorf("Failed to update notification %s", notificationID)
		return entity.Notification{}, err
	}

	email := mail.OwnerInterestedEmail(
		previous.Sender.Email,
		previous.Sender.Name,
		previous.Property.OwnerName,
		previous.Property.OwnerPhone,
		previous.Property.Name,
		previous.Property.Street,
		previous.Property.City,
		previous.Property.State,
		previous.Property.Zipcode,
	)
	if err := uc.Mailer.Send(ctx, email); err != nil {
		uc.Logger.WithError(err).Errorf("Failed to send email for notification %s", notificationID)
	}

	return updated, nil
}

// GetInterestedOwners merges notifications addressed to the user with the
// user's own messages that the recipient has read, newest first by
// readAt falling back to createdAt. The notification store is the
// secondary engine: when it is down the feed degrades to the
// message-derived entries instead of failing.
func (uc *NotificationUsecaseImpl) GetInterestedOwners(ctx context.Context, userID string) ([]res.FeedEntry, error) {
	notifications, err := uc.Notifications.ListForRecipient(ctx, userID)
	if err != nil {
		uc.Logger.WithError(err).Warn("Notification store unavailable, returning read messages only")
		notifications = nil
	}

	messages, err := uc.Messages.FindReadBySender(ctx, userID)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to fetch read messages")
		return nil, err
	}

	entries := make([]res.FeedEntry, 0, len(notifications)+len(messages))

	for _, message := range messages {
		readAt := message.UpdatedAt
		entries = append(entries, res.FeedEntry{
			Type:      "readMessage",
			MessageID: message.ID,
			Property: &res.PropertyInfo{
				ID:      message.Property.ID,
				Name:    message.Property.Name,
				Street:  message.Property.Street,
				City:    message.Property.City,
				State:   message.Property.State,
				Zipcode: message.Property.Zipcode,
			},
			PropertyOwner: &res.ContactInfo{
				ID:          message.Recipient.ID,
				Username:    message.Recipient.Username,
				Email:       message.Recipient.Email,
				PhoneNumber: message.Recipient.PhoneNumber,
			},
			ReadAt:           &readAt,
			HasSharedContact: true,
		})
	}

	for _, notification := range notifications {
		read := notification.Read
		createdAt := notification.CreatedAt
		entries = append(entries, res.FeedEntry{
			Type:           "notification",
			NotificationID: notification.ID,
			Content:        notification.Content,
			Read:           &read,
			CreatedAt:      &createdAt,
			Sender: &res.ContactInfo{
				ID:          notification.SenderId,
				Username:    notification.Sender.Username,
				Name:        notification.Sender.Name,
				Email:       notification.Sender.Email,
				PhoneNumber: notification.Sender.PhoneNumber,
			},
			Property: &res.PropertyInfo{
				ID:      notification.PropertyId,
				Name:    notification.Property.Name,
				Street:  notification.Property.Street,
				City:    notification.Property.City,
				State:   notification.Property.State,
				Zipcode: notification.Property.Zipcode,
			},
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EffectiveTime().After(entries[j].EffectiveTime())
	})

	return entries, nil
}
