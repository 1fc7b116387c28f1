// internals/features/bookstore/catalog/service/book_query_service.go
package service

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "bookstore_backend/internals/features/bookstore/catalog/dto"
	model "bookstore_backend/internals/features/bookstore/catalog/model"
)

// bookRow menampung hasil join buku + penerbit + agregat penulis.
// Kolom authors dipakai di Postgres (array_agg), authors_str di MySQL
// (GROUP_CONCAT) — hanya salah satu yang muncul di hasil query.
type bookRow struct {
	ISBN            string         `gorm:"column:book_isbn"`
	Title           string         `gorm:"column:book_title"`
	Category        string         `gorm:"column:book_category"`
	PublicationYear *int16         `gorm:"column:book_publication_year"`
	Price           float64        `gorm:"column:book_price"`
	QuantityInStock int            `gorm:"column:book_quantity_in_stock"`
	Threshold       int            `gorm:"column:book_threshold"`
	PublisherName   string         `gorm:"column:publisher_name"`
	AuthorsArr      pq.StringArray `gorm:"column:authors;type:text[]"`
	AuthorsStr      *string        `gorm:"column:authors_str"`
}

func (r bookRow) toResponse(withThreshold bool) dto.BookResponse {
	authors := []string(r.AuthorsArr)
	if len(authors) == 0 && r.AuthorsStr != nil && *r.AuthorsStr != "" {
		authors = strings.Split(*r.AuthorsStr, ", ")
	}
	if authors == nil {
		authors = []string{}
	}

	availability := "Out of Stock"
	if r.QuantityInStock > 0 {
		availability = "Available"
	}

	resp := dto.BookResponse{
		ISBN:            r.ISBN,
		Title:           r.Title,
		Category:        r.Category,
		PublicationYear: r.PublicationYear,
		Price:           r.Price,
		QuantityInStock: r.QuantityInStock,
		PublisherName:   r.PublisherName,
		Authors:         authors,
		Availability:    availability,
	}
	if withThreshold {
		resp.Threshold = r.Threshold
	}
	return resp
}

func isPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}

// baseBookQuery menyiapkan join + agregat penulis sesuai dialek.
func baseBookQuery(db *gorm.DB) *gorm.DB {
	authorsSel := "GROUP_CONCAT(DISTINCT a.author_name SEPARATOR ', ') AS authors_str"
	if isPostgres(db) {
		authorsSel = "array_agg(DISTINCT a.author_name) FILTER (WHERE a.author_name IS NOT NULL) AS authors"
	}
	return db.Table("books AS b").
		Select("b.book_isbn, b.book_title, b.book_category, b.book_publication_year, "+
			"b.book_price, b.book_quantity_in_stock, b.book_threshold, "+
			"p.publisher_name, "+authorsSel).
		Joins("LEFT JOIN publishers p ON p.publisher_id = b.book_publisher_id").
		Joins("LEFT JOIN book_authors ba ON ba.book_isbn = b.book_isbn").
		Joins("LEFT JOIN authors a ON a.author_id = ba.author_id").
		Group("b.book_isbn, p.publisher_name")
}

func likeOp(db *gorm.DB) string {
	if isPostgres(db) {
		return "ILIKE"
	}
	return "LIKE"
}

// ListBooks menjalankan pencarian katalog (read-only, stok live ikut terbaca).
func ListBooks(ctx context.Context, db *gorm.DB, q dto.BookSearchQuery) ([]dto.BookResponse, error) {
	base := baseBookQuery(db.WithContext(ctx))
	like := likeOp(db)

	if q.Q != nil && strings.TrimSpace(*q.Q) != "" {
		needle := "%" + strings.TrimSpace(*q.Q) + "%"
		exact := strings.TrimSpace(*q.Q)
		base = base.Where(
			"b.book_title "+like+" ? OR b.book_isbn = ? OR b.book_category "+like+" ? "+
				"OR p.publisher_name "+like+" ? "+
				"OR b.book_isbn IN (SELECT ba2.book_isbn FROM book_authors ba2 "+
				"JOIN authors a2 ON a2.author_id = ba2.author_id WHERE a2.author_name "+like+" ?)",
			needle, exact, needle, needle, needle)
	}
	if q.Title != nil && strings.TrimSpace(*q.Title) != "" {
		base = base.Where("b.book_title "+like+" ?", "%"+strings.TrimSpace(*q.Title)+"%")
	}
	if q.Category != nil && strings.TrimSpace(*q.Category) != "" {
		cat := strings.TrimSpace(*q.Category)
		if !model.IsValidCategory(cat) {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Invalid category. Must be one of: "+strings.Join(model.ValidCategories, ", "))
		}
		base = base.Where("b.book_category = ?", cat)
	}
	if q.Author != nil && strings.TrimSpace(*q.Author) != "" {
		base = base.Where(
			"b.book_isbn IN (SELECT ba2.book_isbn FROM book_authors ba2 "+
				"JOIN authors a2 ON a2.author_id = ba2.author_id WHERE a2.author_name "+like+" ?)",
			"%"+strings.TrimSpace(*q.Author)+"%")
	}
	if q.Publisher != nil && strings.TrimSpace(*q.Publisher) != "" {
		base = base.Where("p.publisher_name "+like+" ?", "%"+strings.TrimSpace(*q.Publisher)+"%")
	}

	var rows []bookRow
	if err := base.Order("b.book_title").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]dto.BookResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toResponse(false))
	}
	return out, nil
}

// GetBookByISBN mengembalikan detail satu buku termasuk threshold.
func GetBookByISBN(ctx context.Context, db *gorm.DB, isbn string) (*dto.BookResponse, error) {
	var rows []bookRow
	if err := baseBookQuery(db.WithContext(ctx)).
		Where("b.book_isbn = ?", isbn).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Book not found")
	}
	resp := rows[0].toResponse(true)
	return &resp, nil
}
