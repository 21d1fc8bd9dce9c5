package usecase

import (
	"context"

	"rentify-api/dto/req"
	"rentify-api/dto/res"
)

type MessageUsecase interface {
	CreateMessage(ctx context.Context, senderID string, request *req.CreateMessageRequest) (res.MessageResponse, error)
	GetMessagesForRecipient(ctx context.Context, userID string) ([]res.MessageResponse, error)
	UpdateMessage(ctx context.Context, messageID, actorID string, request *req.UpdateMessageRequest) error
	DeleteMessage(ctx context.Context, messageID, actorID string) error
}
