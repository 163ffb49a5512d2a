package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "supervisi_backend/internals/features/schools/school/model"
	"supervisi_backend/internals/features/schools/supervisions/dto"
	"supervisi_backend/internals/features/schools/supervisions/model"
	teacherModel "supervisi_backend/internals/features/schools/teachers/model"
	helpers "supervisi_backend/internals/helpers"
	helperAuth "supervisi_backend/internals/helpers/auth"
)

var validateSupervision = validator.New()

type SupervisionController struct {
	DB *gorm.DB
}

func NewSupervisionController(db *gorm.DB) *SupervisionController {
	return &SupervisionController{DB: db}
}

func (ctrl *SupervisionController) callerSchool(c *fiber.Ctx) (uuid.UUID, *schoolModel.SchoolModel, error) {
	userID, err := helperAuth.GetUserUUID(c)
	if err != nil {
		return uuid.Nil, nil, err
	}
	school, err := helperAuth.GetOwnedSchool(ctrl.DB, userID)
	if err != nil {
		if errors.Is(err, helperAuth.ErrNoSchool) {
			return uuid.Nil, nil, helpers.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki sekolah")
		}
		return uuid.Nil, nil, helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}
	return userID, school, nil
}

// =============================
// 📄 List Supervisions (terbaru dulu)
// =============================
func (ctrl *SupervisionController) GetSupervisions(c *fiber.Ctx) error {
	_, school, err := ctrl.callerSchool(c)
	if school == nil {
		return err
	}

	q := ctrl.DB.
		Table("supervisions").
		Select("supervisions.*, teachers.name AS teacher_name, teachers.nip AS teacher_nip").
		Joins("JOIN teachers ON teachers.teacher_id = supervisions.teacher_id").
		Where("supervisions.school_id = ?", school.SchoolID)

	// Filter opsional per guru
	if teacherID := c.Query("teacher_id"); teacherID != "" {
		id, err := uuid.Parse(teacherID)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		q = q.Where("supervisions.teacher_id = ?", id)
	}

	var rows []dto.SupervisionRow
	if err := q.
		Order("supervisions.supervision_date DESC, supervisions.created_at DESC").
		Scan(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	return helpers.JsonList(c, "ok", dto.ToSupervisionDTOList(rows))
}

// =============================
// ➕ Create Supervision
// =============================
func (ctrl *SupervisionController) CreateSupervision(c *fiber.Ctx) error {
	userID, school, err := ctrl.callerSchool(c)
	if school == nil {
		return err
	}

	var body dto.CreateSupervisionRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSupervision.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationFieldErrors(err))
	}

	teacherID, err := uuid.Parse(body.TeacherID)
	if err != nil {
		return helpers.JsonValidationError(c, map[string][]string{
			"teacher_id": {"teacher_id harus berupa UUID"},
		})
	}

	// Guru harus milik sekolah pemanggil.
	var count int64
	if err := ctrl.DB.
		Model(&teacherModel.TeacherModel{}).
		Where("teacher_id = ? AND school_id = ?", teacherID, school.SchoolID).
		Count(&count).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}
	if count == 0 {
		return helpers.JsonError(c, fiber.StatusForbidden, "Guru tidak ditemukan di sekolah Anda")
	}

	date, _ := time.Parse("2006-01-02", body.SupervisionDate)

	supervision := model.SupervisionModel{
		SchoolID:          school.SchoolID,
		TeacherID:         teacherID,
		SupervisionDate:   date,
		LessonPlan:        body.LessonPlan,
		Syllabus:          body.Syllabus,
		AssessmentTools:   body.AssessmentTools,
		TeachingMaterials: body.TeachingMaterials,
		StudentAttendance: body.StudentAttendance,
		Notes:             body.Notes,
		CreatedBy:         userID,
	}
	if err := ctrl.DB.Create(&supervision).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	return helpers.JsonCreated(c, "Supervisi berhasil dicatat", dto.ToSupervisionDTO(supervision))
}

// =============================
// 🔄 Update Supervision
// =============================
func (ctrl *SupervisionController) UpdateSupervision(c *fiber.Ctx) error {
	_, school, err := ctrl.callerSchool(c)
	if school == nil {
		return err
	}

	supervisionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID supervisi tidak valid")
	}

	var body dto.UpdateSupervisionRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSupervision.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationFieldErrors(err))
	}

	var supervision model.SupervisionModel
	if err := ctrl.DB.
		Where("supervision_id = ? AND school_id = ?", supervisionID, school.SchoolID).
		First(&supervision).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Data supervisi tidak ditemukan")
	}

	date, _ := time.Parse("2006-01-02", body.SupervisionDate)

	supervision.SupervisionDate = date
	supervision.LessonPlan = body.LessonPlan
	supervision.Syllabus = body.Syllabus
	supervision.AssessmentTools = body.AssessmentTools
	supervision.TeachingMaterials = body.TeachingMaterials
	supervision.StudentAttendance = body.StudentAttendance
	supervision.Notes = body.Notes

	if err := ctrl.DB.Save(&supervision).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	return helpers.JsonUpdated(c, "Data supervisi berhasil diperbarui", dto.ToSupervisionDTO(supervision))
}

// =============================
// 🗑️ Delete Supervision
// =============================
func (ctrl *SupervisionController) DeleteSupervision(c *fiber.Ctx) error {
	_, school, err := ctrl.callerSchool(c)
	if school == nil {
		return err
	}

	supervisionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID supervisi tidak valid")
	}

	res := ctrl.DB.
		Where("supervision_id = ? AND school_id = ?", supervisionID, school.SchoolID).
		Delete(&model.SupervisionModel{})
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(res.Error))
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Data supervisi tidak ditemukan")
	}

	return helpers.JsonDeleted(c, "Data supervisi berhasil dihapus", fiber.Map{"supervision_id": supervisionID})
}
