// internals/features/bookstore/catalog/service/book_admin_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bookstore_backend/internals/features/bookstore/catalog/dto"
	model "bookstore_backend/internals/features/bookstore/catalog/model"
)

// AddBook menambahkan buku baru beserta penerbit & penulisnya dalam SATU
// transaksi: resolve/buat publisher by name, cek ISBN unik, insert buku,
// dedup penulis by name lalu link. Gagal di tengah → rollback semuanya.
func AddBook(ctx context.Context, db *gorm.DB, req dto.BookCreateRequest) (*model.BookModel, error) {
	threshold := req.Threshold
	if threshold == 0 {
		threshold = 10 // default threshold
	}

	var book model.BookModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) Resolve publisher
		publisherID, err := resolvePublisher(tx, req.PublisherID, req.PublisherName)
		if err != nil {
			return err
		}

		// 2) ISBN harus unik
		var count int64
		if err := tx.Model(&model.BookModel{}).
			Where("book_isbn = ?", req.ISBN).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Book with this ISBN already exists")
		}

		// 3) Insert buku
		book = model.BookModel{
			BookISBN:            req.ISBN,
			BookTitle:           strings.TrimSpace(req.Title),
			BookPublisherID:     publisherID,
			BookPublicationYear: req.PublicationYear,
			BookPrice:           req.Price,
			BookCategory:        req.Category,
			BookQuantityInStock: req.InitialStock,
			BookThreshold:       threshold,
		}
		if err := tx.Create(&book).Error; err != nil {
			return err
		}

		// 4) Penulis: dedup by name, lalu link
		for _, raw := range req.Authors {
			name := strings.TrimSpace(raw)
			if name == "" {
				continue
			}
			authorID, err := resolveAuthor(tx, name)
			if err != nil {
				return err
			}
			link := model.BookAuthorModel{BookISBN: book.BookISBN, AuthorID: authorID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func resolvePublisher(tx *gorm.DB, id *int64, name *string) (int64, error) {
	if id != nil {
		var count int64
		if err := tx.Model(&model.PublisherModel{}).
			Where("publisher_id = ?", *id).
			Count(&count).Error; err != nil {
			return 0, err
		}
		if count == 0 {
			return 0, fiber.NewError(fiber.StatusNotFound, "Publisher not found")
		}
		return *id, nil
	}

	if name == nil || strings.TrimSpace(*name) == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Publisher information is missing (ID or Name required)")
	}

	pubName := strings.TrimSpace(*name)
	var pub model.PublisherModel
	err := tx.Where("publisher_name = ?", pubName).First(&pub).Error
	switch {
	case err == nil:
		return pub.PublisherID, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		pub = model.PublisherModel{PublisherName: pubName}
		if err := tx.Create(&pub).Error; err != nil {
			return 0, err
		}
		return pub.PublisherID, nil
	default:
		return 0, err
	}
}

func resolveAuthor(tx *gorm.DB, name string) (int64, error) {
	var author model.AuthorModel
	err := tx.Where("author_name = ?", name).First(&author).Error
	switch {
	case err == nil:
		return author.AuthorID, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		author = model.AuthorModel{AuthorName: name}
		if err := tx.Create(&author).Error; err != nil {
			return 0, err
		}
		return author.AuthorID, nil
	default:
		return 0, err
	}
}
