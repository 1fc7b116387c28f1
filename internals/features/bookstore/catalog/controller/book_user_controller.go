package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bookstore_backend/internals/features/bookstore/catalog/dto"
	service "bookstore_backend/internals/features/bookstore/catalog/service"
	helper "bookstore_backend/internals/helpers"
)

type BookUserController struct {
	DB *gorm.DB
}

func NewBookUserController(db *gorm.DB) *BookUserController {
	return &BookUserController{DB: db}
}

// GET /api/books — listing + pencarian via query param
func (ctl *BookUserController) Search(c *fiber.Ctx) error {
	var q dto.BookSearchQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	books, err := service.ListBooks(c.UserContext(), ctl.DB, q)
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.JsonList(c, "ok", books, len(books))
}

// GET /api/books/:isbn
func (ctl *BookUserController) GetByISBN(c *fiber.Ctx) error {
	isbn := strings.TrimSpace(c.Params("isbn"))
	if isbn == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "ISBN is required")
	}

	book, err := service.GetBookByISBN(c.UserContext(), ctl.DB, isbn)
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.JsonOK(c, "ok", book)
}
