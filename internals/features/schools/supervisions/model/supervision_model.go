package model

import (
	"time"

	"github.com/google/uuid"
)

// SupervisionModel merepresentasikan tabel supervisions —
// checklist kelengkapan administrasi saat supervisi kelas.
type SupervisionModel struct {
	SupervisionID   uuid.UUID `gorm:"column:supervision_id;type:uuid;default:gen_random_uuid();primaryKey" json:"supervision_id"`
	SchoolID        uuid.UUID `gorm:"column:school_id;type:uuid;not null;index" json:"school_id"`
	TeacherID       uuid.UUID `gorm:"column:teacher_id;type:uuid;not null;index" json:"teacher_id"`
	SupervisionDate time.Time `gorm:"column:supervision_date;type:date;not null" json:"supervision_date"`

	LessonPlan        bool `gorm:"column:lesson_plan;not null;default:false" json:"lesson_plan"`
	Syllabus          bool `gorm:"column:syllabus;not null;default:false" json:"syllabus"`
	AssessmentTools   bool `gorm:"column:assessment_tools;not null;default:false" json:"assessment_tools"`
	TeachingMaterials bool `gorm:"column:teaching_materials;not null;default:false" json:"teaching_materials"`
	StudentAttendance bool `gorm:"column:student_attendance;not null;default:false" json:"student_attendance"`

	Notes     string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedBy uuid.UUID `gorm:"column:created_by;type:uuid;not null" json:"created_by"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SupervisionModel) TableName() string {
	return "supervisions"
}
