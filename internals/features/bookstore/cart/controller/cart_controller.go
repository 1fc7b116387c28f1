package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bookstore_backend/internals/features/bookstore/cart/dto"
	service "bookstore_backend/internals/features/bookstore/cart/service"
	helper "bookstore_backend/internals/helpers"
)

type CartController struct {
	DB *gorm.DB
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db}
}

// POST /api/cart/items
func (ctl *CartController) AddItem(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	if err := service.AddToCart(c.UserContext(), ctl.DB, userID, req); err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.JsonOK(c, "Book added to cart", nil)
}

// GET /api/cart
func (ctl *CartController) ViewCart(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	cart, err := service.ViewCart(c.UserContext(), ctl.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.JsonOK(c, "ok", cart)
}

// DELETE /api/cart/items/:isbn
func (ctl *CartController) RemoveItem(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	isbn := strings.TrimSpace(c.Params("isbn"))
	if isbn == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "ISBN is required")
	}

	if err := service.RemoveFromCart(c.UserContext(), ctl.DB, userID, isbn); err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.JsonDeleted(c, "Book removed from cart", nil)
}

// DELETE /api/cart
func (ctl *CartController) ClearCart(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := service.ClearCart(c.UserContext(), ctl.DB, userID); err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.JsonDeleted(c, "Cart cleared", nil)
}
