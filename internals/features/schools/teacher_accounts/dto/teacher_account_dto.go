package dto

import (
	"time"

	"github.com/google/uuid"
)

// ============================
// Request DTO
// ============================

// Password opsional — kalau kosong, backend generate password sementara.
// TeacherID juga opsional: tanpa teacher_id hanya identity yang dibuat,
// baris link menyusul belakangan.
type CreateTeacherAccountRequest struct {
	TeacherID string `json:"teacher_id" validate:"omitempty,uuid"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"omitempty,min=6,max=72"`
}

// ============================
// Response DTO
// ============================

// ProvisionResponse dikembalikan ke admin setelah akun guru dibuat.
// TemporaryPassword hanya terisi kalau identity baru dibuat — identity
// lama yang di-reuse tetap memakai password miliknya sendiri.
type ProvisionResponse struct {
	UserID            uuid.UUID  `json:"user_id"`
	TeacherAccountID  *uuid.UUID `json:"teacher_account_id,omitempty"`
	Email             string     `json:"email"`
	TemporaryPassword string     `json:"temporary_password,omitempty"`
}

type TeacherAccountDTO struct {
	TeacherAccountID uuid.UUID `json:"teacher_account_id"`
	TeacherID        uuid.UUID `json:"teacher_id"`
	UserID           uuid.UUID `json:"user_id"`
	Email            string    `json:"email"`
	TeacherName      string    `json:"teacher_name"`
	CreatedAt        time.Time `json:"created_at"`
}
