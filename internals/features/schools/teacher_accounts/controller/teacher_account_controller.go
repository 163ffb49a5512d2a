package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "supervisi_backend/internals/features/schools/school/model"
	"supervisi_backend/internals/features/schools/teacher_accounts/dto"
	"supervisi_backend/internals/features/schools/teacher_accounts/service"
	helpers "supervisi_backend/internals/helpers"
	helperAuth "supervisi_backend/internals/helpers/auth"
)

var validateAccount = validator.New()

type TeacherAccountController struct {
	DB      *gorm.DB
	Service *service.ProvisionService
}

func NewTeacherAccountController(db *gorm.DB) *TeacherAccountController {
	return &TeacherAccountController{DB: db, Service: service.NewProvisionService(db)}
}

func (ctrl *TeacherAccountController) callerSchool(c *fiber.Ctx) (uuid.UUID, *schoolModel.SchoolModel, error) {
	userID, err := helperAuth.GetUserUUID(c)
	if err != nil {
		return uuid.Nil, nil, err
	}
	school, err := helperAuth.GetOwnedSchool(ctrl.DB, userID)
	if err != nil {
		if errors.Is(err, helperAuth.ErrNoSchool) {
			return uuid.Nil, nil, helpers.JsonError(c, fiber.StatusForbidden, "No school found for this user")
		}
		return uuid.Nil, nil, helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}
	return userID, school, nil
}

// =============================
// ➕ Provision Teacher Account
// =============================
func (ctrl *TeacherAccountController) CreateTeacherAccount(c *fiber.Ctx) error {
	userID, school, err := ctrl.callerSchool(c)
	if school == nil {
		return err
	}

	var body dto.CreateTeacherAccountRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAccount.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationFieldErrors(err))
	}
	teacherID := uuid.Nil
	if body.TeacherID != "" {
		parsed, err := uuid.Parse(body.TeacherID)
		if err != nil {
			return helpers.JsonValidationError(c, map[string][]string{
				"teacher_id": {"teacher_id harus berupa UUID"},
			})
		}
		teacherID = parsed
	}

	result, err := ctrl.Service.Provision(c.Context(), service.ProvisionInput{
		SchoolID:  school.SchoolID,
		TeacherID: teacherID,
		Email:     body.Email,
		Password:  body.Password,
		ActorID:   userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeacherNotFound):
			return helpers.JsonError(c, fiber.StatusForbidden, "Guru tidak ditemukan di sekolah Anda")
		case errors.Is(err, service.ErrTeacherAlreadyLinked):
			return helpers.JsonError(c, fiber.StatusConflict, "Guru ini sudah memiliki akun")
		case errors.Is(err, service.ErrEmailLinked):
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email ini sudah digunakan untuk akun guru lain")
		default:
			return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
		}
	}

	resp := dto.ProvisionResponse{
		UserID:            result.UserID,
		Email:             result.Email,
		TemporaryPassword: result.TemporaryPassword,
	}
	if result.TeacherAccountID != uuid.Nil {
		accountID := result.TeacherAccountID
		resp.TeacherAccountID = &accountID
	}
	return helpers.JsonCreated(c, "Akun guru berhasil dibuat", resp)
}

// =============================
// 📄 List Teacher Accounts (sekolah sendiri)
// =============================
func (ctrl *TeacherAccountController) GetTeacherAccounts(c *fiber.Ctx) error {
	_, school, err := ctrl.callerSchool(c)
	if school == nil {
		return err
	}

	var rows []dto.TeacherAccountDTO
	if err := ctrl.DB.
		Table("teacher_accounts").
		Select("teacher_accounts.teacher_account_id, teacher_accounts.teacher_id, teacher_accounts.user_id, teacher_accounts.email, teachers.name AS teacher_name, teacher_accounts.created_at").
		Joins("JOIN teachers ON teachers.teacher_id = teacher_accounts.teacher_id").
		Where("teachers.school_id = ?", school.SchoolID).
		Order("teacher_accounts.created_at DESC").
		Scan(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	return helpers.JsonList(c, "ok", rows)
}

// =============================
// 🗑️ Revoke Teacher Account
// =============================
func (ctrl *TeacherAccountController) DeleteTeacherAccount(c *fiber.Ctx) error {
	userID, school, err := ctrl.callerSchool(c)
	if school == nil {
		return err
	}

	accountID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID akun tidak valid")
	}

	if err := ctrl.Service.Revoke(c.Context(), school.SchoolID, accountID, userID); err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Akun guru tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	return helpers.JsonDeleted(c, "Akun guru berhasil dihapus", fiber.Map{"teacher_account_id": accountID})
}
