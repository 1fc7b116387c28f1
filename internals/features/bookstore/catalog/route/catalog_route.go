// file: internals/features/bookstore/catalog/route/catalog_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bookstore_backend/internals/features/bookstore/catalog/controller"
)

// CatalogUserRoutes: pencarian katalog, publik (tanpa login).
func CatalogUserRoutes(app fiber.Router, db *gorm.DB) {
	ctl := controller.NewBookUserController(db)

	books := app.Group("/books")
	books.Get("/", ctl.Search)
	books.Get("/:isbn", ctl.GetByISBN)
}

// CatalogAdminRoutes: dipasang di group admin (sudah lewat auth + role check).
func CatalogAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewBookAdminController(db)

	admin.Post("/books", ctl.AddBook)
}
