package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"

	"github.com/inioluwa/atelier/internal/model"
)

// EmailService sends transactional mail through Resend. In development no
// client is created and sends are logged instead.
type EmailService struct {
	client      *resend.Client
	fromEmail   string
	notifyEmail string
	appName     string
	isDev       bool
}

func NewEmailService(apiKey, fromEmail, notifyEmail, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:      client,
		fromEmail:   fromEmail,
		notifyEmail: notifyEmail,
		appName:     appName,
		isDev:       isDev,
	}
}

// SendContactNotification alerts the site owner about a new contact form
// submission.
func (s *EmailService) SendContactNotification(msg *model.ContactMessage) error {
	subject := fmt.Sprintf("[%s] New message from %s", s.appName, msg.Name)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "contact_notification", "to", s.notifyEmail, "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.notifyEmail},
		ReplyTo: msg.Email,
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "contact_notification", "to", s.notifyEmail)
	}
	return err
}
