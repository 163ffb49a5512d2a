package model

import (
	"time"

	"github.com/google/uuid"
)

// SchoolModel merepresentasikan tabel schools.
// Satu user (kepala sekolah/admin) memiliki tepat satu sekolah.
type SchoolModel struct {
	SchoolID      uuid.UUID `gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_id"`
	OwnerUserID   uuid.UUID `gorm:"column:owner_user_id;type:uuid;uniqueIndex;not null" json:"owner_user_id"`
	Name          string    `gorm:"column:name;size:255;not null" json:"name"`
	NPSN          string    `gorm:"column:npsn;size:20" json:"npsn"`
	Address       string    `gorm:"column:address;type:text" json:"address"`
	Phone         string    `gorm:"column:phone;size:30" json:"phone"`
	PrincipalName string    `gorm:"column:principal_name;size:255;not null" json:"principal_name"`
	PrincipalNIP  string    `gorm:"column:principal_nip;size:30;not null" json:"principal_nip"`
	LogoURL       string    `gorm:"column:logo_url;type:text" json:"logo_url"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
