package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolRoute "supervisi_backend/internals/features/schools/school/route"
	supervisionRoute "supervisi_backend/internals/features/schools/supervisions/route"
	teacherAccountRoute "supervisi_backend/internals/features/schools/teacher_accounts/route"
	teacherRoute "supervisi_backend/internals/features/schools/teachers/route"
	portalRoute "supervisi_backend/internals/features/teachers/portal/route"
	authRoute "supervisi_backend/internals/features/users/auth/route"
	authMiddleware "supervisi_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan seluruh route aplikasi.
//
//	/api/auth — publik (register, login, login-google, logout) + landing
//	/api/a    — admin sekolah (di belakang auth middleware)
//	/api/t    — portal guru (di belakang auth middleware)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// 🔓 Auth & landing
	authRoute.AuthRoutes(app, db)

	// 🔐 Admin sekolah
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())
	schoolRoute.SchoolAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	teacherAccountRoute.TeacherAccountAdminRoutes(admin, db)
	supervisionRoute.SupervisionAdminRoutes(admin, db)

	// 🔐 Portal guru
	teacher := app.Group("/api/t", authMiddleware.AuthMiddleware())
	portalRoute.TeacherPortalRoutes(teacher, db)
}
