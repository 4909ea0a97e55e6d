package model

import (
	"time"
)

const (
	MessageStatusUnread   = "unread"
	MessageStatusRead     = "read"
	MessageStatusArchived = "archived"
)

// ValidMessageStatus reports whether status is a known message state.
func ValidMessageStatus(status string) bool {
	switch status {
	case MessageStatusUnread, MessageStatusRead, MessageStatusArchived:
		return true
	}
	return false
}

type ContactMessage struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Message   string    `db:"message" json:"message"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
