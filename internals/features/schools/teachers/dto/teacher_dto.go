package dto

import (
	"time"

	"github.com/google/uuid"

	"supervisi_backend/internals/features/schools/teachers/model"
)

// ============================
// Response DTO
// ============================

type TeacherDTO struct {
	TeacherID      uuid.UUID `json:"teacher_id"`
	SchoolID       uuid.UUID `json:"school_id"`
	Name           string    `json:"name"`
	NIP            string    `json:"nip"`
	Email          string    `json:"email"`
	Rank           string    `json:"rank"`
	EmploymentType string    `json:"employment_type"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateTeacherRequest struct {
	Name           string `json:"name" validate:"required,min=3,max=255"`
	NIP            string `json:"nip" validate:"required,max=30"`
	Email          string `json:"email" validate:"omitempty,email,max=255"`
	Rank           string `json:"rank" validate:"required"`
	EmploymentType string `json:"employment_type" validate:"required,oneof=PNS PPPK 'Guru Honorer'"`
}

type UpdateTeacherRequest struct {
	Name           string `json:"name" validate:"required,min=3,max=255"`
	NIP            string `json:"nip" validate:"required,max=30"`
	Email          string `json:"email" validate:"omitempty,email,max=255"`
	Rank           string `json:"rank" validate:"required"`
	EmploymentType string `json:"employment_type" validate:"required,oneof=PNS PPPK 'Guru Honorer'"`
}

// ============================
// Converter
// ============================

func ToTeacherDTO(m model.TeacherModel) TeacherDTO {
	return TeacherDTO{
		TeacherID:      m.TeacherID,
		SchoolID:       m.SchoolID,
		Name:           m.Name,
		NIP:            m.NIP,
		Email:          m.Email,
		Rank:           m.Rank,
		EmploymentType: m.EmploymentType,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToTeacherDTOList(list []model.TeacherModel) []TeacherDTO {
	out := make([]TeacherDTO, 0, len(list))
	for _, m := range list {
		out = append(out, ToTeacherDTO(m))
	}
	return out
}
