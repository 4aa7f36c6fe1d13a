package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app alert. Reference is a stable key per event so the
// scanner never files the same alert twice in a month.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_notification_user_ref" json:"user_id"`
	Message   string    `gorm:"size:255;not null" json:"mensagem"`
	Reference string    `gorm:"size:120;uniqueIndex:idx_notification_user_ref" json:"-"`
	IsRead    bool      `gorm:"not null;default:false" json:"lida"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"criado_em"`
}
