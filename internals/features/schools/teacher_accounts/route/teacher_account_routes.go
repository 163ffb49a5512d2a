package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"supervisi_backend/internals/features/schools/teacher_accounts/controller"
)

func TeacherAccountAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherAccountController(db)

	admin.Post("/teacher-accounts", ctrl.CreateTeacherAccount)
	admin.Get("/teacher-accounts", ctrl.GetTeacherAccounts)
	admin.Delete("/teacher-accounts/:id", ctrl.DeleteTeacherAccount)
}
