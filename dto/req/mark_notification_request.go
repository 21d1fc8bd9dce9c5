package req

type MarkNotificationRequest struct {
	NotificationID string `json:"notificationId" validate:"required"`
}
