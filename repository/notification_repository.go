package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"rentify-api/entity"
)

const notificationAllKey = "notifications:all"

func notificationKey(id string) string {
	return "notification:" + id
}

func notificationRecipientKey(userID string) string {
	return "notifications:recipient:" + userID
}

// NotificationRepository persists notifications in Redis, a store disjoint
// from the message database. Records are JSON blobs keyed by id with
// per-recipient and global sorted sets scored by creation time.
type NotificationRepository struct {
	rdb *redis.Client
}

func NewNotificationRepository(rdb *redis.Client) *NotificationRepository {
	return &NotificationRepository{rdb: rdb}
}

func (repository *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}

	raw, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	score := float64(notification.CreatedAt.UnixNano())
	pipe := repository.rdb.TxPipeline()
	pipe.Set(ctx, notificationKey(notification.ID), raw, 0)
	pipe.ZAdd(ctx, notificationRecipientKey(notification.RecipientId), &redis.Z{Score: score, Member: notification.ID})
	pipe.ZAdd(ctx, notificationAllKey, &redis.Z{Score: score, Member: notification.ID})
	_, err = pipe.Exec(ctx)
	return err
}

func (repository *NotificationRepository) ListForRecipient(ctx context.Context, userID string) ([]entity.Notification, error) {
	ids, err := repository.rdb.ZRevRange(ctx, notificationRecipientKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return repository.fetchByIDs(ctx, ids)
}

func (repository *NotificationRepository) ListAll(ctx context.Context) ([]entity.Notification, error) {
	ids, err := repository.rdb.ZRevRange(ctx, notificationAllKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return repository.fetchByIDs(ctx, ids)
}

// MarkRead flips the read flag and returns both the previous and the
// updated record; callers compose the follow-up email from the pre-update
// state. Returns redis.Nil when the id is unknown.
func (repository *NotificationRepository) MarkRead(ctx context.Context, id string) (entity.Notification, entity.Notification, error) {
	raw, err := repository.rdb.Get(ctx, notificationKey(id)).Result()
	if err != nil {
		return entity.Notification{}, entity.Notification{}, err
	}

	var previous entity.Notification
	if err := json.Unmarshal([]byte(raw), &previous); err != nil {
		return entity.Notification{}, entity.Notification{}, err
	}

	updated := previous
	updated.Read = true

	encoded, err := json.Marshal(&updated)
	if err != nil {
		return entity.Notification{}, entity.Notification{}, err
	}
	if err := repository.rdb.Set(ctx, notificationKey(id), encoded, 0).Err(); err != nil {
		return entity.Notification{}, entity.Notification{}, err
	}

	return previous, updated, nil
}

func (repository *NotificationRepository) fetchByIDs(ctx context.Context, ids []string) ([]entity.Notification, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = notificationKey(id)
	}

	values, err := repository.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	notifications := make([]entity.Notification, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			// index entry without a record, skip
			continue
		}
		var notification entity.Notification
		if err := json.Unmarshal([]byte(raw), &notification); err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}
	return notifications, nil
}
