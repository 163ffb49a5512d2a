package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "supervisi_backend/internals/features/schools/school/model"
)

var ErrNoSchool = errors.New("no school owned by this user")

// GetUserUUID mengambil user_id yang disimpan auth middleware di Locals.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals("user_id").(string)
	if !ok || v == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id")
	}
	return id, nil
}

// GetOwnedSchool: sekolah milik caller — sekaligus authorization check untuk
// semua endpoint admin.
func GetOwnedSchool(db *gorm.DB, ownerID uuid.UUID) (*schoolModel.SchoolModel, error) {
	var school schoolModel.SchoolModel
	if err := db.Where("owner_user_id = ?", ownerID).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSchool
		}
		return nil, err
	}
	return &school, nil
}
