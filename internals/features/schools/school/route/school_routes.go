package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"supervisi_backend/internals/features/schools/school/controller"
)

// SchoolAdminRoutes: dipasang di group admin (sudah di belakang auth middleware).
func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSchoolController(db)

	admin.Post("/schools", ctrl.CreateSchool)
	admin.Get("/schools/me", ctrl.GetMySchool)
	admin.Put("/schools/:id", ctrl.UpdateSchool)
	admin.Post("/schools/:id/logo", ctrl.UploadLogo)
}
