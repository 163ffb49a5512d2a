package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "supervisi_backend/internals/features/users/auth/service"
	middlewares "supervisi_backend/internals/middlewares"
	authMw "supervisi_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/auth")

	api.Post("/register", middlewares.RegisterRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Register(db, c)
	})
	api.Post("/login", middlewares.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Login(db, c)
	})
	api.Post("/login-google", middlewares.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.LoginGoogle(db, c)
	})
	api.Post("/logout", func(c *fiber.Ctx) error {
		return authService.Logout(c)
	})

	api.Get("/landing", authMw.AuthMiddleware(), func(c *fiber.Ctx) error {
		return authService.Landing(db, c)
	})
}
