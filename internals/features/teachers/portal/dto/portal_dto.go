package dto

import (
	"time"

	"github.com/google/uuid"

	"supervisi_backend/internals/features/teachers/portal/model"
)

// ============================
// Profil guru (GET /api/t/me)
// ============================

type TeacherProfileDTO struct {
	TeacherAccountID uuid.UUID `json:"teacher_account_id"`
	TeacherID        uuid.UUID `json:"teacher_id"`
	Name             string    `json:"name"`
	NIP              string    `json:"nip"`
	Email            string    `json:"email"`
	Rank             string    `json:"rank"`
	EmploymentType   string    `json:"employment_type"`

	SchoolID   uuid.UUID `json:"school_id"`
	SchoolName string    `json:"school_name"`
	SchoolNPSN string    `json:"school_npsn"`
}

// ============================
// Administrasi mengajar
// ============================

type CreateTeachingAdministrationRequest struct {
	TeachingHours string `json:"teaching_hours" validate:"max=20"`
	SemesterClass string `json:"semester_class" validate:"max=50"`

	CalendarLink          string `json:"calendar_link" validate:"omitempty,url"`
	AnnualProgramLink     string `json:"annual_program_link" validate:"omitempty,url"`
	AssessmentUseLink     string `json:"assessment_use_link" validate:"omitempty,url"`
	LearningFlowLink      string `json:"learning_flow_link" validate:"omitempty,url"`
	TeachingModuleLink    string `json:"teaching_module_link" validate:"omitempty,url"`
	TeachingMaterialLink  string `json:"teaching_material_link" validate:"omitempty,url"`
	ScheduleLink          string `json:"schedule_link" validate:"omitempty,url"`
	AssessmentProgramLink string `json:"assessment_program_link" validate:"omitempty,url"`
	GradeListLink         string `json:"grade_list_link" validate:"omitempty,url"`
	DailyAgendaLink       string `json:"daily_agenda_link" validate:"omitempty,url"`
	AttendanceLink        string `json:"attendance_link" validate:"omitempty,url"`
}

type TeachingAdministrationDTO struct {
	TeachingAdministrationID uuid.UUID `json:"teaching_administration_id"`
	TeacherID                uuid.UUID `json:"teacher_id"`
	SchoolID                 uuid.UUID `json:"school_id"`

	TeachingHours string `json:"teaching_hours"`
	SemesterClass string `json:"semester_class"`

	CalendarLink          string `json:"calendar_link"`
	AnnualProgramLink     string `json:"annual_program_link"`
	AssessmentUseLink     string `json:"assessment_use_link"`
	LearningFlowLink      string `json:"learning_flow_link"`
	TeachingModuleLink    string `json:"teaching_module_link"`
	TeachingMaterialLink  string `json:"teaching_material_link"`
	ScheduleLink          string `json:"schedule_link"`
	AssessmentProgramLink string `json:"assessment_program_link"`
	GradeListLink         string `json:"grade_list_link"`
	DailyAgendaLink       string `json:"daily_agenda_link"`
	AttendanceLink        string `json:"attendance_link"`

	CreatedAt time.Time `json:"created_at"`
}

func ToTeachingAdministrationDTO(m model.TeachingAdministrationModel) TeachingAdministrationDTO {
	return TeachingAdministrationDTO{
		TeachingAdministrationID: m.TeachingAdministrationID,
		TeacherID:                m.TeacherID,
		SchoolID:                 m.SchoolID,
		TeachingHours:            m.TeachingHours,
		SemesterClass:            m.SemesterClass,
		CalendarLink:             m.CalendarLink,
		AnnualProgramLink:        m.AnnualProgramLink,
		AssessmentUseLink:        m.AssessmentUseLink,
		LearningFlowLink:         m.LearningFlowLink,
		TeachingModuleLink:       m.TeachingModuleLink,
		TeachingMaterialLink:     m.TeachingMaterialLink,
		ScheduleLink:             m.ScheduleLink,
		AssessmentProgramLink:    m.AssessmentProgramLink,
		GradeListLink:            m.GradeListLink,
		DailyAgendaLink:          m.DailyAgendaLink,
		AttendanceLink:           m.AttendanceLink,
		CreatedAt:                m.CreatedAt,
	}
}

func ToTeachingAdministrationDTOList(list []model.TeachingAdministrationModel) []TeachingAdministrationDTO {
	out := make([]TeachingAdministrationDTO, 0, len(list))
	for _, m := range list {
		out = append(out, ToTeachingAdministrationDTO(m))
	}
	return out
}
