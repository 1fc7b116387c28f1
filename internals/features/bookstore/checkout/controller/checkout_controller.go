package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bookstore_backend/internals/features/bookstore/checkout/dto"
	service "bookstore_backend/internals/features/bookstore/checkout/service"
	helper "bookstore_backend/internals/helpers"
)

type CheckoutController struct {
	DB *gorm.DB
}

func NewCheckoutController(db *gorm.DB) *CheckoutController {
	return &CheckoutController{DB: db}
}

// POST /api/checkout
func (ctl *CheckoutController) Checkout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	result, err := service.Checkout(c.UserContext(), ctl.DB, userID, req)
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.JsonCreated(c, "Checkout successful", result)
}

// GET /api/orders — riwayat pembelian user yang login.
func (ctl *CheckoutController) ListSales(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	sales, err := service.ListSales(c.UserContext(), ctl.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.JsonList(c, "ok", sales, len(sales))
}
