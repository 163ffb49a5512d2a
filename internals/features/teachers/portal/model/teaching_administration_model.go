package model

import (
	"time"

	"github.com/google/uuid"
)

// TeachingAdministrationModel — riwayat pengumpulan administrasi mengajar
// oleh guru (link dokumen). Append-only: tidak pernah di-update/hapus.
type TeachingAdministrationModel struct {
	TeachingAdministrationID uuid.UUID `gorm:"column:teaching_administration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teaching_administration_id"`
	TeacherAccountID         uuid.UUID `gorm:"column:teacher_account_id;type:uuid;not null;index" json:"teacher_account_id"`
	TeacherID                uuid.UUID `gorm:"column:teacher_id;type:uuid;not null" json:"teacher_id"`
	SchoolID                 uuid.UUID `gorm:"column:school_id;type:uuid;not null" json:"school_id"`

	TeachingHours string `gorm:"column:teaching_hours;size:20" json:"teaching_hours"`
	SemesterClass string `gorm:"column:semester_class;size:50" json:"semester_class"`

	CalendarLink          string `gorm:"column:calendar_link;type:text" json:"calendar_link"`
	AnnualProgramLink     string `gorm:"column:annual_program_link;type:text" json:"annual_program_link"`
	AssessmentUseLink     string `gorm:"column:assessment_use_link;type:text" json:"assessment_use_link"`
	LearningFlowLink      string `gorm:"column:learning_flow_link;type:text" json:"learning_flow_link"`
	TeachingModuleLink    string `gorm:"column:teaching_module_link;type:text" json:"teaching_module_link"`
	TeachingMaterialLink  string `gorm:"column:teaching_material_link;type:text" json:"teaching_material_link"`
	ScheduleLink          string `gorm:"column:schedule_link;type:text" json:"schedule_link"`
	AssessmentProgramLink string `gorm:"column:assessment_program_link;type:text" json:"assessment_program_link"`
	GradeListLink         string `gorm:"column:grade_list_link;type:text" json:"grade_list_link"`
	DailyAgendaLink       string `gorm:"column:daily_agenda_link;type:text" json:"daily_agenda_link"`
	AttendanceLink        string `gorm:"column:attendance_link;type:text" json:"attendance_link"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TeachingAdministrationModel) TableName() string {
	return "teaching_administration"
}
