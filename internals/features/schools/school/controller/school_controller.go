package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"supervisi_backend/internals/features/schools/school/dto"
	"supervisi_backend/internals/features/schools/school/model"
	helpers "supervisi_backend/internals/helpers"
	helperAuth "supervisi_backend/internals/helpers/auth"
)

var validateSchool = validator.New()

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

// =============================
// ➕ Setup School (onboarding admin)
// =============================
func (ctrl *SchoolController) CreateSchool(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserUUID(c)
	if err != nil {
		return err
	}

	var body dto.CreateSchoolRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSchool.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationFieldErrors(err))
	}

	// Satu sekolah per admin
	if _, err := helperAuth.GetOwnedSchool(ctrl.DB, userID); err == nil {
		return helpers.JsonError(c, fiber.StatusConflict, "Anda sudah memiliki sekolah terdaftar")
	} else if !errors.Is(err, helperAuth.ErrNoSchool) {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	school := model.SchoolModel{
		OwnerUserID:   userID,
		Name:          body.Name,
		NPSN:          body.NPSN,
		Address:       body.Address,
		Phone:         body.Phone,
		PrincipalName: body.PrincipalName,
		PrincipalNIP:  body.PrincipalNIP,
	}
	if err := ctrl.DB.Create(&school).Error; err != nil {
		if helpers.IsDuplicateKeyError(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Anda sudah memiliki sekolah terdaftar")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	return helpers.JsonCreated(c, "Sekolah berhasil didaftarkan", dto.ToSchoolDTO(school))
}

// =============================
// 🔍 Get My School
// =============================
func (ctrl *SchoolController) GetMySchool(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserUUID(c)
	if err != nil {
		return err
	}

	school, err := helperAuth.GetOwnedSchool(ctrl.DB, userID)
	if err != nil {
		if errors.Is(err, helperAuth.ErrNoSchool) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Sekolah belum didaftarkan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	return helpers.JsonOK(c, "ok", dto.ToSchoolDTO(*school))
}

// =============================
// 🔄 Update School (hanya milik sendiri)
// =============================
func (ctrl *SchoolController) UpdateSchool(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserUUID(c)
	if err != nil {
		return err
	}

	school, err := helperAuth.GetOwnedSchool(ctrl.DB, userID)
	if err != nil {
		if errors.Is(err, helperAuth.ErrNoSchool) {
			return helpers.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki sekolah")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}
	paramID, perr := uuid.Parse(c.Params("id"))
	if perr != nil || paramID != school.SchoolID {
		return helpers.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses")
	}

	var body dto.UpdateSchoolRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSchool.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationFieldErrors(err))
	}

	school.Name = body.Name
	school.NPSN = body.NPSN
	school.Address = body.Address
	school.Phone = body.Phone
	school.PrincipalName = body.PrincipalName
	school.PrincipalNIP = body.PrincipalNIP

	if err := ctrl.DB.Save(school).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	return helpers.JsonUpdated(c, "Data sekolah berhasil diperbarui", dto.ToSchoolDTO(*school))
}

// =============================
// 🖼️ Upload Logo
// =============================
func (ctrl *SchoolController) UploadLogo(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserUUID(c)
	if err != nil {
		return err
	}

	school, err := helperAuth.GetOwnedSchool(ctrl.DB, userID)
	if err != nil {
		if errors.Is(err, helperAuth.ErrNoSchool) {
			return helpers.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki sekolah")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}
	paramID, perr := uuid.Parse(c.Params("id"))
	if perr != nil || paramID != school.SchoolID {
		return helpers.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses")
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "File logo wajib diunggah")
	}

	logoURL, err := helpers.UploadLogoImage("school-logos", fileHeader)
	if err != nil {
		log.Printf("[ERROR] upload logo: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Upload logo gagal")
	}

	school.LogoURL = logoURL
	if err := ctrl.DB.Model(school).Update("logo_url", logoURL).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	return helpers.JsonUpdated(c, "Logo berhasil diperbarui", fiber.Map{"logo_url": logoURL})
}
