package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"rentify-api/dto/req"
	"rentify-api/entity"
	"rentify-api/enum"
	"rentify-api/mail"
	"rentify-api/repository"
)

type fakeMessageStore struct {
	mu       sync.Mutex
	messages map[string]*entity.Message
	findErr  error
}

func newFakeMessageStore(messages ...*entity.Message) *fakeMessageStore {
	store := &fakeMessageStore{messages: map[string]*entity.Message{}}
	for _, message := range messages {
		store.messages[message.ID] = message
	}
	return store
}

func (s *fakeMessageStore) Create(_ context.Context, message *entity.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[message.ID] = message
	return nil
}

func (s *fakeMessageStore) FindByIDWithRelations(_ context.Context, id string) (*entity.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	message, ok := s.messages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *message
	return &clone, nil
}

func (s *fakeMessageStore) FindByRecipient(_ context.Context, userID string) ([]entity.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []entity.Message
	for _, message := range s.messages {
		if message.RecipientId == userID {
			result = append(result, *message)
		}
	}
	return result, nil
}

func (s *fakeMessageStore) FindReadBySender(_ context.Context, userID string) ([]entity.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	var result []entity.Message
	for _, message := range s.messages {
		if message.SenderId == userID && message.Read {
			result = append(result, *message)
		}
	}
	return result, nil
}

func (s *fakeMessageStore) ClaimRead(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	message, ok := s.messages[id]
	if !ok || message.Read {
		return false, nil
	}
	message.Read = true
	message.UpdatedAt = time.Now()
	return true, nil
}

func (s *fakeMessageStore) UpdateStatus(_ context.Context, id string, status enum.InquiryStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	message, ok := s.messages[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	message.Status = status
	return nil
}

func (s *fakeMessageStore) Delete(_ context.Context, message *entity.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.messages, message.ID)
	return nil
}

func (s *fakeMessageStore) get(id string) entity.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.messages[id]
}

func (s *fakeMessageStore) exists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.messages[id]
	return ok
}

type fakeNotificationStore struct {
	mu        sync.Mutex
	records   map[string]entity.Notification
	order     []string
	createErr error
	listErr   error
}

func newFakeNotificationStore(notifications ...entity.Notification) *fakeNotificationStore {
	store := &fakeNotificationStore{records: map[string]entity.Notification{}}
	for _, notification := range notifications {
		store.records[notification.ID] = notification
		store.order = append(store.order, notification.ID)
	}
	return store
}

func (s *fakeNotificationStore) Create(_ context.Context, notification *entity.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	if notification.ID == "" {
		notification.ID = "n-" + time.Now().Format("150405.000000000")
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	s.records[notification.ID] = *notification
	s.order = append(s.order, notification.ID)
	return nil
}

func (s *fakeNotificationStore) ListAll(_ context.Context) ([]entity.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var result []entity.Notification
	for _, id := range s.order {
		result = append(result, s.records[id])
	}
	return result, nil
}

func (s *fakeNotificationStore) ListForRecipient(_ context.Context, userID string) ([]entity.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var result []entity.Notification
	for _, id := range s.order {
		if s.records[id].RecipientId == userID {
			result = append(result, s.records[id])
		}
	}
	return result, nil
}

func (s *fakeNotificationStore) MarkRead(_ context.Context, id string) (entity.Notification, entity.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous, ok := s.records[id]
	if !ok {
		return entity.Notification{}, entity.Notification{}, redis.Nil
	}
	updated := previous
	updated.Read = true
	s.records[id] = updated
	return previous, updated, nil
}

func (s *fakeNotificationStore) created() []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []entity.Notification
	for _, id := range s.order {
		result = append(result, s.records[id])
	}
	return result
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []mail.Email
	err  error
}

func (m *fakeMailer) Send(_ context.Context, email mail.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, email)
	return nil
}

func (m *fakeMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testInquiry() *entity.Message {
	return &entity.Message{
		BaseEntity:  entity.BaseEntity{ID: "m1"},
		Body:        "Is this place still available?",
		SenderId:    "tenant-a",
		RecipientId: "owner-b",
		PropertyId:  "prop-p",
		SenderEmail: "tenant@example.com",
		Read:        false,
		Status:      enum.InquiryStatusPending,
		Sender: entity.User{
			BaseEntity: entity.BaseEntity{ID: "tenant-a"},
			Username:   "tenant_a",
			Email:      "tenant@example.com",
		},
		Recipient: entity.User{
			BaseEntity:  entity.BaseEntity{ID: "owner-b"},
			Username:    "owner_b",
			Name:        "Owner B",
			Email:       "owner@example.com",
			PhoneNumber: "555-0101",
		},
		Property: entity.Property{
			BaseEntity: entity.BaseEntity{ID: "prop-p"},
			Name:       "Sunny Loft",
			Street:     "12 Main St",
			City:       "Springfield",
			State:      "IL",
			Zipcode:    "62701",
			OwnerId:    "owner-b",
		},
	}
}

func newMessageUsecaseForTest(messages MessageStore, notifications NotificationStore, mailer mail.Mailer) MessageUsecase {
	return NewMessageUsecase(messages, notifications, repository.NewPropertyRepository(), nil, mailer, validator.New(), testLogger())
}

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

func TestUpdateMessageNotFound(t *testing.T) {
	store := newFakeMessageStore()
	uc := newMessageUsecaseForTest(store, newFakeNotificationStore(), &fakeMailer{})

	err := uc.UpdateMessage(context.Background(), "missing", "owner-b", &req.UpdateMessageRequest{Read: boolPtr(true)})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateMessageNonRecipientUnauthorized(t *testing.T) {
	store := newFakeMessageStore(testInquiry())
	notifications := newFakeNotificationStore()
	mailer := &fakeMailer{}
	uc := newMessageUsecaseForTest(store, notifications, mailer)

	err := uc.UpdateMessage(context.Background(), "m1", "someone-else", &req.UpdateMessageRequest{Read: boolPtr(true)})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if store.get("m1").Read {
		t.Error("read flag changed by unauthorized call")
	}
	if len(notifications.created()) != 0 || mailer.sentCount() != 0 {
		t.Error("side effects fired for unauthorized call")
	}
}

func TestUpdateMessageReadTransitionDiscloses(t *testing.T) {
	store := newFakeMessageStore(testInquiry())
	notifications := newFakeNotificationStore()
	mailer := &fakeMailer{}
	uc := newMessageUsecaseForTest(store, notifications, mailer)

	if err := uc.UpdateMessage(context.Background(), "m1", "owner-b", &req.UpdateMessageRequest{Read: boolPtr(true)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !store.get("m1").Read {
		t.Error("read flag not set")
	}

	created := notifications.created()
	if len(created) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(created))
	}
	if created[0].RecipientId != "tenant-a" {
		t.Errorf("notification recipient = %s, want tenant-a", created[0].RecipientId)
	}
	if created[0].SenderId != "owner-b" {
		t.Errorf("notification sender = %s, want owner-b", created[0].SenderId)
	}

	if mailer.sentCount() != 1 {
		t.Fatalf("expected exactly one email, got %d", mailer.sentCount())
	}
	if mailer.sent[0].To != "tenant@example.com" {
		t.Errorf("email to = %s, want tenant@example.com", mailer.sent[0].To)
	}
}

func TestUpdateMessageAlreadyReadNoRedisclosure(t *testing.T) {
	inquiry := testInquiry()
	inquiry.Read = true
	store := newFakeMessageStore(inquiry)
	notifications := newFakeNotificationStore()
	mailer := &fakeMailer{}
	uc := newMessageUsecaseForTest(store, notifications, mailer)

	err := uc.UpdateMessage(context.Background(), "m1", "owner-b", &req.UpdateMessageRequest{
		Read:   boolPtr(true),
		Status: strPtr("approved"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// status change still lands, but read was already claimed
	if got := store.get("m1").Status; got != enum.InquiryStatusApproved {
		t.Errorf("status = %s, want approved", got)
	}
	if len(notifications.created()) != 0 || mailer.sentCount() != 0 {
		t.Error("re-marking an already-read message must not re-trigger disclosure")
	}
}

func TestUpdateMessageStatusOnlyNoDisclosure(t *testing.T) {
	store := newFakeMessageStore(testInquiry())
	notifications := newFakeNotificationStore()
	mailer := &fakeMailer{}
	uc := newMessageUsecaseForTest(store, notifications, mailer)

	if err := uc.UpdateMessage(context.Background(), "m1", "owner-b", &req.UpdateMessageRequest{Status: strPtr("declined")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	message := store.get("m1")
	if message.Status != enum.InquiryStatusDeclined {
		t.Errorf("status = %s, want declined", message.Status)
	}
	if message.Read {
		t.Error("read flag set by status-only update")
	}
	if len(notifications.created()) != 0 || mailer.sentCount() != 0 {
		t.Error("disclosure fired without a read transition")
	}
}

func TestUpdateMessageEmailFailureStillSucceeds(t *testing.T) {
	store := newFakeMessageStore(testInquiry())
	notifications := newFakeNotificationStore()
	mailer := &fakeMailer{err: errors.New("smtp unavailable")}
	uc := newMessageUsecaseForTest(store, notifications, mailer)

	if err := uc.UpdateMessage(context.Background(), "m1", "owner-b", &req.UpdateMessageRequest{Read: boolPtr(true)}); err != nil {
		t.Fatalf("email failure must not fail the operation, got %v", err)
	}
	if !store.get("m1").Read {
		t.Error("read flag rolled back on email failure")
	}
	if len(notifications.created()) != 1 {
		t.Error("notification missing despite email failure")
	}
}

func TestUpdateMessageNotificationFailureStillSucceeds(t *testing.T) {
	store := newFakeMessageStore(testInquiry())
	notifications := newFakeNotificationStore()
	notifications.createErr = errors.New("redis down")
	mailer := &fakeMailer{}
	uc := newMessageUsecaseForTest(store, notifications, mailer)

	if err := uc.UpdateMessage(context.Background(), "m1", "owner-b", &req.UpdateMessageRequest{Read: boolPtr(true)}); err != nil {
		t.Fatalf("notification failure must not fail the operation, got %v", err)
	}
	if !store.get("m1").Read {
		t.Error("read flag rolled back on notification failure")
	}
	if mailer.sentCount() != 1 {
		t.Error("email skipped despite notification failure")
	}
}

func TestUpdateMessageConcurrentReadsSingleDisclosure(t *testing.T) {
	store := newFakeMessageStore(testInquiry())
	notifications := newFakeNotificationStore()
	mailer := &fakeMailer{}
	uc := newMessageUsecaseForTest(store, notifications, mailer)

	const callers = 8
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			_ = uc.UpdateMessage(context.Background(), "m1", "owner-b", &req.UpdateMessageRequest{Read: boolPtr(true)})
		}()
	}
	wg.Wait()

	if got := len(notifications.created()); got != 1 {
		t.Errorf("expected one disclosure under concurrency, got %d notifications", got)
	}
	if got := mailer.sentCount(); got != 1 {
		t.Errorf("expected one disclosure email under concurrency, got %d", got)
	}
}

func TestDeleteMessageNonRecipientUnauthorized(t *testing.T) {
	store := newFakeMessageStore(testInquiry())
	uc := newMessageUsecaseForTest(store, newFakeNotificationStore(), &fakeMailer{})

	err := uc.DeleteMessage(context.Background(), "m1", "user-c")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if !store.exists("m1") {
		t.Error("message deleted by non-recipient")
	}
}

func TestDeleteMessageByRecipient(t *testing.T) {
	store := newFakeMessageStore(testInquiry())
	uc := newMessageUsecaseForTest(store, newFakeNotificationStore(), &fakeMailer{})

	if err := uc.DeleteMessage(context.Background(), "m1", "owner-b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.exists("m1") {
		t.Error("message still present after delete")
	}
}
