package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bookstore_backend/internals/features/bookstore/catalog/dto"
	service "bookstore_backend/internals/features/bookstore/catalog/service"
	helper "bookstore_backend/internals/helpers"
)

type BookAdminController struct {
	DB *gorm.DB
}

func NewBookAdminController(db *gorm.DB) *BookAdminController {
	return &BookAdminController{DB: db}
}

// POST /api/admin/books
func (ctl *BookAdminController) AddBook(c *fiber.Ctx) error {
	var req dto.BookCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	book, err := service.AddBook(c.UserContext(), ctl.DB, req)
	if err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}

	return helper.JsonCreated(c, "Book added successfully!", fiber.Map{
		"isbn":  book.BookISBN,
		"title": book.BookTitle,
	})
}
