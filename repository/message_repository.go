package repository

import (
	"context"

	"gorm.io/gorm"

	"rentify-api/entity"
	"rentify-api/enum"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (repository *MessageRepository) Create(ctx context.Context, message *entity.Message) error {
	return repository.db.WithContext(ctx).Create(message).Error
}

func (repository *MessageRepository) FindByIDWithRelations(ctx context.Context, id string) (*entity.Message, error) {
	var message entity.Message
	err := repository.db.WithContext(ctx).
		Preload("Sender").
		Preload("Recipient").
		Preload("Property").
		Where("id = ?", id).
		First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (repository *MessageRepository) FindByRecipient(ctx context.Context, userID string) ([]entity.Message, error) {
	var messages []entity.Message
	err := repository.db.WithContext(ctx).
		Preload("Sender").
		Preload("Property").
		Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (repository *MessageRepository) FindReadBySender(ctx context.Context, userID string) ([]entity.Message, error) {
	var messages []entity.Message
	err := repository.db.WithContext(ctx).
		Preload("Recipient").
		Preload("Property").
		Where("sender_id = ? AND read = ?", userID, true).
		Order("updated_at DESC").
		Find(&messages).Error
	return messages, err
}

// ClaimRead flips the read flag only if it is still false and reports
// whether this call made the transition. Racing calls cannot both claim
// the same message, so at most one disclosure fires per message.
func (repository *MessageRepository) ClaimRead(ctx context.Context, id string) (bool, error) {
	tx := repository.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("id = ? AND read = ?", id, false).
		Update("read", true)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (repository *MessageRepository) UpdateStatus(ctx context.Context, id string, status enum.InquiryStatus) error {
	return repository.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (repository *MessageRepository) Delete(ctx context.Context, message *entity.Message) error {
	return repository.db.WithContext(ctx).Delete(message).Error
}
