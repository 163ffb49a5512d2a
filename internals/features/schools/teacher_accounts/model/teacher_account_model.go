package model

import (
	"time"

	"github.com/google/uuid"
)

// TeacherAccountModel adalah baris penghubung: satu identity (user) ↔ satu guru.
// Unik di kedua sisi — satu user maksimal satu akun guru, satu guru maksimal satu akun.
type TeacherAccountModel struct {
	TeacherAccountID uuid.UUID `gorm:"column:teacher_account_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_account_id"`
	TeacherID        uuid.UUID `gorm:"column:teacher_id;type:uuid;uniqueIndex;not null" json:"teacher_id"`
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;uniqueIndex;not null" json:"user_id"`
	Email            string    `gorm:"column:email;size:255;not null" json:"email"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TeacherAccountModel) TableName() string {
	return "teacher_accounts"
}
