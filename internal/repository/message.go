package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/inioluwa/atelier/internal/model"
)

var (
	ErrMessageNotFound = errors.New("contact message not found")
)

type MessageRepository interface {
	Create(message *model.ContactMessage) error
	ByID(id string) (*model.ContactMessage, error)
	Messages() ([]*model.ContactMessage, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
	Count() (int, error)
	CountByStatus(status string) (int, error)
}

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *model.ContactMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Status == "" {
		message.Status = model.MessageStatusUnread
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	query := `INSERT INTO contact_messages (id, name, email, message, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		message.ID,
		message.Name,
		message.Email,
		message.Message,
		message.Status,
		message.CreatedAt,
	)
	return err
}

func (r *messageRepository) ByID(id string) (*model.ContactMessage, error) {
	message := &model.ContactMessage{}
	err := r.db.Get(message, `SELECT * FROM contact_messages WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, ErrMessageNotFound
	}
	return message, err
}

func (r *messageRepository) Messages() ([]*model.ContactMessage, error) {
	var messages []*model.ContactMessage
	err := r.db.Select(&messages, `SELECT * FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) UpdateStatus(id, status string) error {
	result, err := r.db.Exec(`UPDATE contact_messages SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *messageRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *messageRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM contact_messages`).Scan(&count)
	return count, err
}

func (r *messageRepository) CountByStatus(status string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM contact_messages WHERE status = $1`, status).Scan(&count)
	return count, err
}
