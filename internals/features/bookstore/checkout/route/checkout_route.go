package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bookstore_backend/internals/features/bookstore/checkout/controller"
	"bookstore_backend/internals/middlewares"
)

// CheckoutRoutes dipasang di bawah group /api (dijaga AuthMiddleware oleh
// pemanggil). Checkout dibatasi rate limiter sendiri.
func CheckoutRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewCheckoutController(db)

	api.Post("/checkout", middlewares.CheckoutRateLimiter(), ctl.Checkout)
	api.Get("/orders", ctl.ListSales)
}
