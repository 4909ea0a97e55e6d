package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inioluwa/atelier/internal/model"
	"github.com/inioluwa/atelier/internal/repository"
	"github.com/inioluwa/atelier/internal/validation"
)

const maxMessageLength = 5000

type MessageService struct {
	repo  repository.MessageRepository
	email *EmailService
}

func NewMessageService(repo repository.MessageRepository, email *EmailService) *MessageService {
	return &MessageService{repo: repo, email: email}
}

// Create stores a contact form submission and notifies the site owner.
// A notification failure is logged but never surfaces to the visitor.
func (s *MessageService) Create(name, email, message string) (*model.ContactMessage, error) {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, errors.New("name is required")
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, errors.New("message is required")
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("message is too long (max %d characters)", maxMessageLength)
	}

	msg := &model.ContactMessage{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Message:   message,
		Status:    model.MessageStatusUnread,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(msg); err != nil {
		return nil, err
	}

	if err := s.email.SendContactNotification(msg); err != nil {
		slog.Error("failed to send contact notification", "error", err, "message_id", msg.ID)
	}

	return msg, nil
}

func (s *MessageService) List() ([]*model.ContactMessage, error) {
	return s.repo.Messages()
}

func (s *MessageService) UpdateStatus(id, status string) error {
	if !model.ValidMessageStatus(status) {
		return fmt.Errorf("unknown message status %q", status)
	}
	return s.repo.UpdateStatus(id, status)
}

func (s *MessageService) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *MessageService) UnreadCount() (int, error) {
	return s.repo.CountByStatus(model.MessageStatusUnread)
}
