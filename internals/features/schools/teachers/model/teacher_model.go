package model

import (
	"time"

	"github.com/google/uuid"
)

// Pangkat/golongan guru sesuai aturan kepegawaian.
var ValidRanks = []string{
	"Tidak Ada",
	"III.A", "III.B", "III.C", "III.D",
	"IV.A", "IV.B", "IV.C", "IV.D",
	"IX",
}

var ValidEmploymentTypes = []string{"PNS", "PPPK", "Guru Honorer"}

type TeacherModel struct {
	TeacherID      uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`
	SchoolID       uuid.UUID `gorm:"column:school_id;type:uuid;not null;index" json:"school_id"`
	Name           string    `gorm:"column:name;size:255;not null" json:"name"`
	NIP            string    `gorm:"column:nip;size:30;not null" json:"nip"`
	Email          string    `gorm:"column:email;size:255" json:"email"`
	Rank           string    `gorm:"column:rank;size:20;not null" json:"rank"`
	EmploymentType string    `gorm:"column:employment_type;size:20;not null" json:"employment_type"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}

func IsValidRank(rank string) bool {
	for _, r := range ValidRanks {
		if r == rank {
			return true
		}
	}
	return false
}

func IsValidEmploymentType(t string) bool {
	for _, e := range ValidEmploymentTypes {
		if e == t {
			return true
		}
	}
	return false
}
