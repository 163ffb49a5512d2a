package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolModel "supervisi_backend/internals/features/schools/school/model"
	linkModel "supervisi_backend/internals/features/schools/teacher_accounts/model"
	teacherModel "supervisi_backend/internals/features/schools/teachers/model"
	"supervisi_backend/internals/features/teachers/portal/dto"
	"supervisi_backend/internals/features/teachers/portal/model"
	helpers "supervisi_backend/internals/helpers"
	helperAuth "supervisi_backend/internals/helpers/auth"
)

var validatePortal = validator.New()

type PortalController struct {
	DB *gorm.DB
}

func NewPortalController(db *gorm.DB) *PortalController {
	return &PortalController{DB: db}
}

// resolveLink mencari baris teacher_accounts milik user yang login.
// Semua endpoint portal guru berangkat dari baris ini.
func (ctrl *PortalController) resolveLink(c *fiber.Ctx) (*linkModel.TeacherAccountModel, error) {
	userID, err := helperAuth.GetUserUUID(c)
	if err != nil {
		return nil, err
	}

	var link linkModel.TeacherAccountModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda bukan akun guru")
		}
		return nil, helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}
	return &link, nil
}

// =============================
// 👤 Profil Guru
// =============================
func (ctrl *PortalController) GetMe(c *fiber.Ctx) error {
	link, err := ctrl.resolveLink(c)
	if link == nil {
		return err
	}

	var teacher teacherModel.TeacherModel
	if err := ctrl.DB.Where("teacher_id = ?", link.TeacherID).First(&teacher).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	var school schoolModel.SchoolModel
	if err := ctrl.DB.Where("school_id = ?", teacher.SchoolID).First(&school).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	return helpers.JsonOK(c, "ok", dto.TeacherProfileDTO{
		TeacherAccountID: link.TeacherAccountID,
		TeacherID:        teacher.TeacherID,
		Name:             teacher.Name,
		NIP:              teacher.NIP,
		Email:            link.Email,
		Rank:             teacher.Rank,
		EmploymentType:   teacher.EmploymentType,
		SchoolID:         school.SchoolID,
		SchoolName:       school.Name,
		SchoolNPSN:       school.NPSN,
	})
}

// =============================
// 📄 Riwayat Administrasi Mengajar
// =============================
func (ctrl *PortalController) GetTeachingAdministration(c *fiber.Ctx) error {
	link, err := ctrl.resolveLink(c)
	if link == nil {
		return err
	}

	var entries []model.TeachingAdministrationModel
	if err := ctrl.DB.
		Where("teacher_account_id = ?", link.TeacherAccountID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	return helpers.JsonList(c, "ok", dto.ToTeachingAdministrationDTOList(entries))
}

// =============================
// ➕ Setor Administrasi Mengajar (append-only)
// =============================
func (ctrl *PortalController) CreateTeachingAdministration(c *fiber.Ctx) error {
	link, err := ctrl.resolveLink(c)
	if link == nil {
		return err
	}

	var body dto.CreateTeachingAdministrationRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePortal.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationFieldErrors(err))
	}

	var teacher teacherModel.TeacherModel
	if err := ctrl.DB.Where("teacher_id = ?", link.TeacherID).First(&teacher).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	entry := model.TeachingAdministrationModel{
		TeacherAccountID:      link.TeacherAccountID,
		TeacherID:             link.TeacherID,
		SchoolID:              teacher.SchoolID,
		TeachingHours:         body.TeachingHours,
		SemesterClass:         body.SemesterClass,
		CalendarLink:          body.CalendarLink,
		AnnualProgramLink:     body.AnnualProgramLink,
		AssessmentUseLink:     body.AssessmentUseLink,
		LearningFlowLink:      body.LearningFlowLink,
		TeachingModuleLink:    body.TeachingModuleLink,
		TeachingMaterialLink:  body.TeachingMaterialLink,
		ScheduleLink:          body.ScheduleLink,
		AssessmentProgramLink: body.AssessmentProgramLink,
		GradeListLink:         body.GradeListLink,
		DailyAgendaLink:       body.DailyAgendaLink,
		AttendanceLink:        body.AttendanceLink,
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	return helpers.JsonCreated(c, "Administrasi mengajar berhasil disimpan", dto.ToTeachingAdministrationDTO(entry))
}
