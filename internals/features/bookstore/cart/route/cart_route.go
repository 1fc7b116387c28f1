package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bookstore_backend/internals/features/bookstore/cart/controller"
)

// CartRoutes dipasang di bawah group /api (dijaga AuthMiddleware oleh pemanggil).
func CartRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewCartController(db)

	cart := api.Group("/cart")
	cart.Get("/", ctl.ViewCart)
	cart.Delete("/", ctl.ClearCart)
	cart.Post("/items", ctl.AddItem)
	cart.Delete("/items/:isbn", ctl.RemoveItem)
}
