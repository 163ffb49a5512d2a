package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"supervisi_backend/internals/features/teachers/portal/controller"
)

func TeacherPortalRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPortalController(db)

	teacher.Get("/me", ctrl.GetMe)
	teacher.Get("/teaching-administration", ctrl.GetTeachingAdministration)
	teacher.Post("/teaching-administration", ctrl.CreateTeachingAdministration)
}
