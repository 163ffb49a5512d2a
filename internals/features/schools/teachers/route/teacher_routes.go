package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"supervisi_backend/internals/features/schools/teachers/controller"
)

func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherController(db)

	admin.Get("/teachers", ctrl.GetTeachers)
	admin.Post("/teachers", ctrl.CreateTeacher)
	admin.Put("/teachers/:id", ctrl.UpdateTeacher)
	admin.Delete("/teachers/:id", ctrl.DeleteTeacher)
}
