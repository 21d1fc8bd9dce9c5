package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"rentify-api/dto/req"
	"rentify-api/dto/res"
	"rentify-api/entity"
	"rentify-api/enum"
	"rentify-api/mail"
	"rentify-api/repository"
)

type MessageUsecaseImpl struct {
	Messages      MessageStore
	Notifications NotificationStore
	*repository.PropertyRepository
	*gorm.DB
	Mailer mail.Mailer
	*validator.Validate
	*logrus.Logger
}

func NewMessageUsecase(
	messages MessageStore,
	notifications NotificationStore,
	propertyRepository *repository.PropertyRepository,
	DB *gorm.DB,
	mailer mail.Mailer,
	validate *validator.Validate,
	logger *logrus.Logger,
) MessageUsecase {
	return &MessageUsecaseImpl{
		Messages:           messages,
		Notifications:      notifications,
		PropertyRepository: propertyRepository,
		DB:                 DB,
		Mailer:             mailer,
		Validate:           validate,
		Logger:             logger,
	}
}

func (uc *MessageUsecaseImpl) CreateMessage(ctx context.Context, senderID string, request *req.CreateMessageRequest) (res.MessageResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("Failed to validate create message request")
		return res.MessageResponse{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var property entity.Property
	if err := uc.PropertyRepository.FindById(ctx, uc.DB, &property, request.PropertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.MessageResponse{}, ErrNotFound
		}
		return res.MessageResponse{}, err
	}

	message := &entity.Message{
		Body:        request.Body,
		SenderId:    senderID,
		RecipientId: property.OwnerId,
		PropertyId:  property.ID,
		SenderEmail: request.SenderEmail,
		SenderPhone: request.SenderPhone,
		Read:        false,
		Status:      enum.InquiryStatusPending,
	}
	if err := uc.Messages.Create(ctx, message); err != nil {
		uc.Logger.WithError(err).Error("Failed to save message")
		return res.MessageResponse{}, err
	}

	uc.Logger.Infof("New inquiry %s for property %s", message.ID, property.ID)
	return res.MessageResponse{
		MessageId:   message.ID,
		Body:        message.Body,
		SenderId:    message.SenderId,
		SenderEmail: message.SenderEmail,
		SenderPhone: message.SenderPhone,
		Read:        message.Read,
		Status:      string(message.Status),
		CreatedAt:   message.CreatedAt.Format("2006-01-02 15:04:05"),
		Property: &res.PropertyInfo{
			ID:   property.ID,
			Name: property.Name,
		},
	}, nil
}

func (uc *MessageUsecaseImpl) GetMessagesForRecipient(ctx context.Context, userID string) ([]res.MessageResponse, error) {
	messages, err := uc.Messages.FindByRecipient(ctx, userID)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to get messages by recipient")
		return nil, err
	}

	var responses []res.MessageResponse
	for _, message := range messages {
		responses = append(responses, res.MessageResponse{
			MessageId:   message.ID,
			Body:        message.Body,
			SenderId:    message.SenderId,
			SenderName:  message.Sender.Username,
			SenderEmail: message.SenderEmail,
			SenderPhone: message.SenderPhone,
			Read:        message.Read,
			Status:      string(message.Status),
			CreatedAt:   message.CreatedAt.Format("2006-01-02 15:04:05"),
			Property: &res.PropertyInfo{
				ID:      message.Property.ID,
				Name:    message.Property.Name,
				Street:  message.Property.Street,
				City:    message.Property.City,
				State:   message.Property.State,
				Zipcode: message.Property.Zipcode,
			},
		})
	}
	return responses, nil
}

// UpdateMessage is the disclosure workflow. Status and read are
// independent updates; the notification and email fire only when this
// call claims the false-to-true read transition. A failure past the
// message mutation is logged and swallowed, the caller still sees
// success.
func (uc *MessageUsecaseImpl) UpdateMessage(ctx context.Context, messageID, actorID string, request *req.UpdateMessageRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("Failed to validate update message request")
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	message, err := uc.Messages.FindByIDWithRelations(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if message.RecipientId != actorID {
		return ErrUnauthorized
	}

	if request.Status != nil {
		status := enum.InquiryStatus(*request.Status)
		if !status.Valid() {
			return fmt.Errorf("%w: unknown status %q", ErrValidation, *request.Status)
		}
		if err := uc.Messages.UpdateStatus(ctx, messageID, status); err != nil {
			uc.Logger.WithError(err).Errorf("Failed to update status of message %s", messageID)
			return err
		}
	}

	// The read flag is monotonic; read=false in the body is ignored.
	if request.Read != nil && *request.Read {
		claimed, err := uc.Messages.ClaimRead(ctx, messageID)
		if err != nil {
			uc.Logger.WithError(err).Errorf("Failed to mark message %s as read", messageID)
			return err
		}
		if claimed {
			uc.disclose(ctx, message)
		}
	}

	return nil
}

func (uc *MessageUsecaseImpl) DeleteMessage(ctx context.Context, messageID, actorID string) error {
	message, err := uc.Messages.FindByIDWithRelations(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if message.RecipientId != actorID {
		return ErrUnauthorized
	}

	return uc.Messages.Delete(ctx, message)
}

// disclose records the owner-interested notification for the tenant and
// emails them the owner's contact details. Both effects are best-effort:
// the read flag is already persisted and is authoritative.
func (uc *MessageUsecaseImpl) disclose(ctx context.Context, message *entity.Message) {
	owner := message.Recipient
	property := message.Property

	content := fmt.Sprintf(
		"%s is interested in your inquiry about the property %q. Contact details: Email: %s, Phone: %s",
		owner.Username, property.Name, owner.Email, owner.PhoneNumber,
	)

	notification := &entity.Notification{
		Content:     content,
		SenderId:    message.RecipientId,
		RecipientId: message.SenderId,
		PropertyId:  message.PropertyId,
		Read:        false,
		Sender: entity.NotificationSender{
			Name:        owner.Name,
			Username:    owner.Username,
			Email:       owner.Email,
			PhoneNumber: owner.PhoneNumber,
		},
		Property: entity.NotificationProperty{
			Name:       property.Name,
			Street:     property.Street,
			City:       property.City,
			State:      property.State,
			Zipcode:    property.Zipcode,
			OwnerName:  owner.Name,
			OwnerPhone: owner.PhoneNumber,
		},
	}
	if err := uc.Notifications.Create(ctx, notification); err != nil {
		uc.Logger.WithError(err).Errorf("Failed to create notification for message %s", message.ID)
	}

	email := mail.DisclosureEmail(
		message.Sender.Email,
		message.Sender.Username,
		owner.Username,
		owner.Email,
		owner.PhoneNumber,
		property.Address(),
	)
	if err := uc.Mailer.Send(ctx, email); err != nil {
		uc.Logger.WithError(err).Errorf("Failed to send disclosure email for message %s", message.ID)
	}
}
