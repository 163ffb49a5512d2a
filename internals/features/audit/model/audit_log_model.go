package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLogModel menyimpan jejak aksi sensitif (mis. pembuatan akun guru)
// dengan detail lengkap di payload — hanya untuk sisi server.
type AuditLogModel struct {
	AuditLogID  uuid.UUID      `gorm:"column:audit_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"audit_log_id"`
	ActorUserID uuid.UUID      `gorm:"column:actor_user_id;type:uuid;not null;index" json:"actor_user_id"`
	Action      string         `gorm:"column:action;size:80;not null" json:"action"`
	Payload     datatypes.JSON `gorm:"column:payload;type:jsonb;not null;default:'{}'" json:"payload"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
