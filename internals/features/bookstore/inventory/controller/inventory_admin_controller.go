package controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bookstore_backend/internals/features/bookstore/inventory/dto"
	service "bookstore_backend/internals/features/bookstore/inventory/service"
	helper "bookstore_backend/internals/helpers"
)

type InventoryAdminController struct {
	DB *gorm.DB
}

func NewInventoryAdminController(db *gorm.DB) *InventoryAdminController {
	return &InventoryAdminController{DB: db}
}

// PUT /api/admin/books/:isbn/stock — jalur "sell" manual (hanya menurunkan).
func (ctl *InventoryAdminController) SellStock(c *fiber.Ctx) error {
	isbn := strings.TrimSpace(c.Params("isbn"))
	if isbn == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "ISBN is required")
	}

	var req dto.SellStockRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	result, err := service.SellStock(c.UserContext(), ctl.DB, isbn, req.NewQuantity)
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}

	message := fmt.Sprintf("Book quantity decreased from %d to %d.", result.PreviousQuantity, result.NewQuantity)
	if result.ReorderTriggered {
		message += " Quantity in stock is less than threshold...Publisher order is waiting for confirmation"
	}
	return helper.JsonUpdated(c, message, result)
}

// GET /api/admin/orders/pending
func (ctl *InventoryAdminController) ListPendingOrders(c *fiber.Ctx) error {
	orders, err := service.ListPendingOrders(c.UserContext(), ctl.DB)
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.JsonList(c, "ok", orders, len(orders))
}

// POST /api/admin/orders/:order_id/confirm
func (ctl *InventoryAdminController) ConfirmOrder(c *fiber.Ctx) error {
	orderID, err := strconv.ParseInt(c.Params("order_id"), 10, 64)
	if err != nil || orderID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id tidak valid")
	}

	if err := service.ConfirmOrder(c.UserContext(), ctl.DB, orderID); err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.JsonOK(c, "Order confirmed and stock updated", nil)
}

// GET /api/admin/books/:isbn/orders — rekap order penerbit per buku.
func (ctl *InventoryAdminController) GetBookOrderStats(c *fiber.Ctx) error {
	isbn := strings.TrimSpace(c.Params("isbn"))
	if isbn == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "ISBN is required")
	}

	stats, err := service.GetBookOrderStats(c.UserContext(), ctl.DB, isbn)
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.JsonOK(c, "ok", stats)
}
