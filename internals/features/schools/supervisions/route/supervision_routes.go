package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"supervisi_backend/internals/features/schools/supervisions/controller"
)

func SupervisionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSupervisionController(db)

	admin.Get("/supervisions", ctrl.GetSupervisions)
	admin.Post("/supervisions", ctrl.CreateSupervision)
	admin.Put("/supervisions/:id", ctrl.UpdateSupervision)
	admin.Delete("/supervisions/:id", ctrl.DeleteSupervision)
}
