package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "supervisi_backend/internals/features/schools/school/model"
	accountModel "supervisi_backend/internals/features/schools/teacher_accounts/model"
	"supervisi_backend/internals/features/schools/teachers/dto"
	"supervisi_backend/internals/features/schools/teachers/model"
	helpers "supervisi_backend/internals/helpers"
	helperAuth "supervisi_backend/internals/helpers/auth"
)

var validateTeacher = validator.New()

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

// ownedSchool: authorization check semua endpoint guru (admin only).
func (ctrl *TeacherController) ownedSchool(c *fiber.Ctx) (*schoolModel.SchoolModel, error) {
	userID, err := helperAuth.GetUserUUID(c)
	if err != nil {
		return nil, err
	}
	school, err := helperAuth.GetOwnedSchool(ctrl.DB, userID)
	if err != nil {
		if errors.Is(err, helperAuth.ErrNoSchool) {
			return nil, helpers.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki sekolah")
		}
		return nil, helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}
	return school, nil
}

// =============================
// 📄 Get All Teachers (sekolah sendiri)
// =============================
func (ctrl *TeacherController) GetTeachers(c *fiber.Ctx) error {
	school, err := ctrl.ownedSchool(c)
	if school == nil {
		return err
	}

	var teachers []model.TeacherModel
	if err := ctrl.DB.
		Where("school_id = ?", school.SchoolID).
		Order("created_at DESC").
		Find(&teachers).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	return helpers.JsonList(c, "ok", dto.ToTeacherDTOList(teachers))
}

// =============================
// ➕ Create Teacher
// =============================
func (ctrl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	school, err := ctrl.ownedSchool(c)
	if school == nil {
		return err
	}

	var body dto.CreateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTeacher.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationFieldErrors(err))
	}
	if !model.IsValidRank(body.Rank) {
		return helpers.JsonValidationError(c, map[string][]string{
			"rank": {"pangkat/golongan tidak dikenal"},
		})
	}

	teacher := model.TeacherModel{
		SchoolID:       school.SchoolID,
		Name:           body.Name,
		NIP:            body.NIP,
		Email:          body.Email,
		Rank:           body.Rank,
		EmploymentType: body.EmploymentType,
	}
	if err := ctrl.DB.Create(&teacher).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	return helpers.JsonCreated(c, "Data guru berhasil ditambahkan", dto.ToTeacherDTO(teacher))
}

// =============================
// 🔄 Update Teacher
// =============================
func (ctrl *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	school, err := ctrl.ownedSchool(c)
	if school == nil {
		return err
	}

	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID guru tidak valid")
	}

	var body dto.UpdateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTeacher.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationFieldErrors(err))
	}
	if !model.IsValidRank(body.Rank) {
		return helpers.JsonValidationError(c, map[string][]string{
			"rank": {"pangkat/golongan tidak dikenal"},
		})
	}

	var teacher model.TeacherModel
	if err := ctrl.DB.
		Where("teacher_id = ? AND school_id = ?", teacherID, school.SchoolID).
		First(&teacher).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Data guru tidak ditemukan")
	}

	teacher.Name = body.Name
	teacher.NIP = body.NIP
	teacher.Email = body.Email
	teacher.Rank = body.Rank
	teacher.EmploymentType = body.EmploymentType

	if err := ctrl.DB.Save(&teacher).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	return helpers.JsonUpdated(c, "Data guru berhasil diperbarui", dto.ToTeacherDTO(teacher))
}

// =============================
// 🗑️ Delete Teacher
// =============================
func (ctrl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	school, err := ctrl.ownedSchool(c)
	if school == nil {
		return err
	}

	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID guru tidak valid")
	}

	// Hapus guru + baris link akunnya dalam satu transaksi. Kepemilikan
	// dicek dulu di dalam transaksi — link row tidak boleh tersentuh
	// untuk guru milik sekolah lain.
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var teacher model.TeacherModel
		if err := tx.
			Where("teacher_id = ? AND school_id = ?", teacherID, school.SchoolID).
			First(&teacher).Error; err != nil {
			return err
		}
		if err := tx.
			Where("teacher_id = ?", teacherID).
			Delete(&accountModel.TeacherAccountModel{}).Error; err != nil {
			return err
		}
		return tx.
			Where("teacher_id = ?", teacherID).
			Delete(&model.TeacherModel{}).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Data guru tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(txErr))
	}

	return helpers.JsonDeleted(c, "Data guru berhasil dihapus", fiber.Map{"teacher_id": teacherID})
}
