package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bookstore_backend/internals/features/bookstore/inventory/controller"
)

// InventoryAdminRoutes dipasang di bawah group /api/admin (sudah dijaga
// AuthMiddleware + IsAdmin oleh pemanggil).
func InventoryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewInventoryAdminController(db)

	admin.Put("/books/:isbn/stock", ctl.SellStock)
	admin.Get("/books/:isbn/orders", ctl.GetBookOrderStats)
	admin.Get("/orders/pending", ctl.ListPendingOrders)
	admin.Post("/orders/:order_id/confirm", ctl.ConfirmOrder)
}
