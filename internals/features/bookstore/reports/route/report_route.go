package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bookstore_backend/internals/features/bookstore/reports/controller"
)

// ReportAdminRoutes dipasang di bawah group /api/admin.
func ReportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportController(db)

	reports := admin.Group("/reports")
	reports.Get("/sales/previous-month", ctl.PreviousMonthSales)
	reports.Get("/sales", ctl.SalesByDate)
	reports.Get("/top-customers", ctl.TopCustomers)
	reports.Get("/top-books", ctl.TopBooks)
}
