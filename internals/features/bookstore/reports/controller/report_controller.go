package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "bookstore_backend/internals/features/bookstore/reports/service"
	helper "bookstore_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// GET /api/admin/reports/sales/previous-month
func (ctl *ReportController) PreviousMonthSales(c *fiber.Ctx) error {
	summary, err := service.PreviousMonthSales(c.UserContext(), ctl.DB)
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.JsonOK(c, "ok", summary)
}

// GET /api/admin/reports/sales?date=YYYY-MM-DD
func (ctl *ReportController) SalesByDate(c *fiber.Ctx) error {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query param 'date' is required (YYYY-MM-DD)")
	}

	sales, err := service.SalesByDate(c.UserContext(), ctl.DB, date)
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.JsonList(c, "ok", sales, len(sales))
}

// GET /api/admin/reports/top-customers
func (ctl *ReportController) TopCustomers(c *fiber.Ctx) error {
	customers, err := service.TopCustomers(c.UserContext(), ctl.DB)
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.JsonList(c, "ok", customers, len(customers))
}

// GET /api/admin/reports/top-books
func (ctl *ReportController) TopBooks(c *fiber.Ctx) error {
	books, err := service.TopBooks(c.UserContext(), ctl.DB)
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.JsonList(c, "ok", books, len(books))
}
