package dto

import (
	"time"

	"github.com/google/uuid"

	"supervisi_backend/internals/features/schools/supervisions/model"
)

// ============================
// Request DTO
// ============================

type CreateSupervisionRequest struct {
	TeacherID       string `json:"teacher_id" validate:"required,uuid"`
	SupervisionDate string `json:"supervision_date" validate:"required,datetime=2006-01-02"`

	LessonPlan        bool `json:"lesson_plan"`
	Syllabus          bool `json:"syllabus"`
	AssessmentTools   bool `json:"assessment_tools"`
	TeachingMaterials bool `json:"teaching_materials"`
	StudentAttendance bool `json:"student_attendance"`

	Notes string `json:"notes" validate:"max=2000"`
}

type UpdateSupervisionRequest struct {
	SupervisionDate string `json:"supervision_date" validate:"required,datetime=2006-01-02"`

	LessonPlan        bool `json:"lesson_plan"`
	Syllabus          bool `json:"syllabus"`
	AssessmentTools   bool `json:"assessment_tools"`
	TeachingMaterials bool `json:"teaching_materials"`
	StudentAttendance bool `json:"student_attendance"`

	Notes string `json:"notes" validate:"max=2000"`
}

// ============================
// Response DTO
// ============================

type SupervisionDTO struct {
	SupervisionID   uuid.UUID `json:"supervision_id"`
	SchoolID        uuid.UUID `json:"school_id"`
	TeacherID       uuid.UUID `json:"teacher_id"`
	TeacherName     string    `json:"teacher_name,omitempty"`
	TeacherNIP      string    `json:"teacher_nip,omitempty"`
	SupervisionDate string    `json:"supervision_date"`

	LessonPlan        bool `json:"lesson_plan"`
	Syllabus          bool `json:"syllabus"`
	AssessmentTools   bool `json:"assessment_tools"`
	TeachingMaterials bool `json:"teaching_materials"`
	StudentAttendance bool `json:"student_attendance"`

	Notes     string    `json:"notes"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToSupervisionDTO(m model.SupervisionModel) SupervisionDTO {
	return SupervisionDTO{
		SupervisionID:     m.SupervisionID,
		SchoolID:          m.SchoolID,
		TeacherID:         m.TeacherID,
		SupervisionDate:   m.SupervisionDate.Format("2006-01-02"),
		LessonPlan:        m.LessonPlan,
		Syllabus:          m.Syllabus,
		AssessmentTools:   m.AssessmentTools,
		TeachingMaterials: m.TeachingMaterials,
		StudentAttendance: m.StudentAttendance,
		Notes:             m.Notes,
		CreatedBy:         m.CreatedBy,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// SupervisionRow dipakai untuk list dengan join nama guru.
type SupervisionRow struct {
	model.SupervisionModel
	TeacherName string `json:"teacher_name"`
	TeacherNIP  string `json:"teacher_nip"`
}

func ToSupervisionDTOList(rows []SupervisionRow) []SupervisionDTO {
	out := make([]SupervisionDTO, 0, len(rows))
	for _, r := range rows {
		d := ToSupervisionDTO(r.SupervisionModel)
		d.TeacherName = r.TeacherName
		d.TeacherNIP = r.TeacherNIP
		out = append(out, d)
	}
	return out
}
