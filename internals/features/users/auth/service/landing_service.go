package service

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "supervisi_backend/internals/features/schools/school/model"
	teacherAccountModel "supervisi_backend/internals/features/schools/teacher_accounts/model"
	helpers "supervisi_backend/internals/helpers"
	helperAuth "supervisi_backend/internals/helpers/auth"
)

// Tujuan redirect setelah login.
const (
	LandingTeacherDashboard = "teacher-dashboard"
	LandingAdminDashboard   = "admin-dashboard"
	LandingSetupSchool      = "setup-school"
)

// ResolveLanding menentukan halaman tujuan berdasarkan dua lookup berurutan.
// Urutannya signifikan: link guru menang atas kepemilikan sekolah (user yang
// keduanya diperlakukan sebagai guru). Lookup gagal → fallback default,
// login tidak pernah ikut gagal.
func ResolveLanding(ctx context.Context, db *gorm.DB, userID uuid.UUID) string {
	var n int64
	if err := db.WithContext(ctx).
		Model(&teacherAccountModel.TeacherAccountModel{}).
		Where("user_id = ?", userID).
		Count(&n).Error; err != nil {
		return LandingAdminDashboard
	}
	if n > 0 {
		return LandingTeacherDashboard
	}

	if err := db.WithContext(ctx).
		Model(&schoolModel.SchoolModel{}).
		Where("owner_user_id = ?", userID).
		Count(&n).Error; err != nil {
		return LandingAdminDashboard
	}
	if n > 0 {
		return LandingAdminDashboard
	}

	return LandingSetupSchool
}

// Landing: GET /api/auth/landing — role resolution untuk user yang sudah login.
func Landing(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserUUID(c)
	if err != nil {
		return err
	}
	return helpers.JsonOK(c, "ok", fiber.Map{
		"landing": ResolveLanding(c.UserContext(), db, userID),
	})
}
