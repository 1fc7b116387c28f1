// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cartRoute "bookstore_backend/internals/features/bookstore/cart/route"
	catalogRoute "bookstore_backend/internals/features/bookstore/catalog/route"
	checkoutRoute "bookstore_backend/internals/features/bookstore/checkout/route"
	inventoryRoute "bookstore_backend/internals/features/bookstore/inventory/route"
	reportRoute "bookstore_backend/internals/features/bookstore/reports/route"
	authRoute "bookstore_backend/internals/features/users/auth/route"
	authMiddleware "bookstore_backend/internals/middlewares/auth"
)

// SetupRoutes merakit seluruh route aplikasi.
//
//	/api/auth/*   — register/login/refresh publik, logout/profile dijaga
//	/api/books/*  — katalog publik (read-only)
//	/api/*        — cart, checkout, riwayat order (perlu login)
//	/api/admin/*  — stok, order penerbit, tambah buku, laporan (admin)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===== Auth (punya group sendiri di dalamnya) =====
	authRoute.AuthRoutes(app, db)

	// ===== Katalog publik =====
	api := app.Group("/api")
	catalogRoute.CatalogUserRoutes(api, db)

	// ===== Customer (perlu login) =====
	protected := api.Group("", authMiddleware.AuthMiddleware(db))
	cartRoute.CartRoutes(protected, db)
	checkoutRoute.CheckoutRoutes(protected, db)

	// ===== Admin =====
	admin := api.Group("/admin",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.IsAdmin("bookstore-admin"),
	)
	catalogRoute.CatalogAdminRoutes(admin, db)
	inventoryRoute.InventoryAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)
}
