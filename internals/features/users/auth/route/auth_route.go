// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bookstore_backend/internals/features/users/auth/controller"
	middlewares "bookstore_backend/internals/middlewares"
	authMw "bookstore_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/register", middlewares.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", middlewares.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/refresh-token", authController.RefreshToken)

	// 🔐 Butuh login
	protected := app.Group("/api/auth", authMw.AuthMiddleware(db))
	protected.Post("/logout", authController.Logout)
	protected.Put("/profile", authController.UpdateProfile)
}
