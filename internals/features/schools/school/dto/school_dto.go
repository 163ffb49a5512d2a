package dto

import (
	"time"

	"github.com/google/uuid"

	"supervisi_backend/internals/features/schools/school/model"
)

// ============================
// Response DTO
// ============================

type SchoolDTO struct {
	SchoolID      uuid.UUID `json:"school_id"`
	Name          string    `json:"name"`
	NPSN          string    `json:"npsn"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	PrincipalName string    `json:"principal_name"`
	PrincipalNIP  string    `json:"principal_nip"`
	LogoURL       string    `json:"logo_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateSchoolRequest struct {
	Name          string `json:"name" validate:"required,min=3,max=255"`
	NPSN          string `json:"npsn" validate:"omitempty,max=20"`
	Address       string `json:"address"`
	Phone         string `json:"phone" validate:"omitempty,max=30"`
	PrincipalName string `json:"principal_name" validate:"required,max=255"`
	PrincipalNIP  string `json:"principal_nip" validate:"required,max=30"`
}

type UpdateSchoolRequest struct {
	Name          string `json:"name" validate:"required,min=3,max=255"`
	NPSN          string `json:"npsn" validate:"omitempty,max=20"`
	Address       string `json:"address"`
	Phone         string `json:"phone" validate:"omitempty,max=30"`
	PrincipalName string `json:"principal_name" validate:"required,max=255"`
	PrincipalNIP  string `json:"principal_nip" validate:"required,max=30"`
}

// ============================
// Converter
// ============================

func ToSchoolDTO(m model.SchoolModel) SchoolDTO {
	return SchoolDTO{
		SchoolID:      m.SchoolID,
		Name:          m.Name,
		NPSN:          m.NPSN,
		Address:       m.Address,
		Phone:         m.Phone,
		PrincipalName: m.PrincipalName,
		PrincipalNIP:  m.PrincipalNIP,
		LogoURL:       m.LogoURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
