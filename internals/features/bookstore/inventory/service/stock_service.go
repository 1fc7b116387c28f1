// internals/features/bookstore/inventory/service/stock_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogModel "bookstore_backend/internals/features/bookstore/catalog/model"
	dto "bookstore_backend/internals/features/bookstore/inventory/dto"
	model "bookstore_backend/internals/features/bookstore/inventory/model"
)

// SellStock: jalur admin untuk menurunkan stok (penjualan manual).
// Seluruh keputusan dibaca dari baris yang dikunci FOR UPDATE di dalam
// transaksi — tidak pernah dari nilai cache.
func SellStock(ctx context.Context, db *gorm.DB, isbn string, newQuantity *int) (*dto.SellStockResponse, error) {
	var resp dto.SellStockResponse
	var createdOrder *model.PublisherOrderModel

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book catalogModel.BookModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("book_isbn = ?", isbn).
			First(&book).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Book not found")
			}
			return err
		}

		if err := ValidateSellStock(book.BookQuantityInStock, book.BookThreshold, newQuantity); err != nil {
			return err
		}

		previous := book.BookQuantityInStock
		newQty := *newQuantity

		if err := tx.Model(&catalogModel.BookModel{}).
			Where("book_isbn = ?", isbn).
			Update("book_quantity_in_stock", newQty).Error; err != nil {
			return err
		}

		resp = dto.SellStockResponse{
			ISBN:             isbn,
			PreviousQuantity: previous,
			NewQuantity:      newQty,
			Threshold:        book.BookThreshold,
		}

		// Trigger reorder di transaksi yang sama: sale sukses tanpa order
		// restock tercatat tidak boleh terjadi.
		if ReorderNeeded(newQty, book.BookThreshold) {
			order, err := createReorder(tx, isbn, previous-newQty)
			if err != nil {
				return err
			}
			resp.ReorderTriggered = true
			createdOrder = order
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Event AMQP best-effort, setelah commit
	if createdOrder != nil {
		PublishReorderEvent(*createdOrder)
	}
	return &resp, nil
}

// DecrementStockForSale menurunkan stok satu buku di dalam transaksi checkout
// yang SEDANG berjalan. Caller wajib sudah mengunci baris buku (FOR UPDATE)
// dan memastikan stok cukup. Mengembalikan order restock bila threshold
// tertembus (di-publish caller setelah commit).
func DecrementStockForSale(tx *gorm.DB, book *catalogModel.BookModel, quantity int) (*model.PublisherOrderModel, error) {
	newQty := book.BookQuantityInStock - quantity
	if err := tx.Model(&catalogModel.BookModel{}).
		Where("book_isbn = ?", book.BookISBN).
		Update("book_quantity_in_stock", newQty).Error; err != nil {
		return nil, err
	}
	book.BookQuantityInStock = newQty

	if ReorderNeeded(newQty, book.BookThreshold) {
		return createReorder(tx, book.BookISBN, quantity)
	}
	return nil, nil
}

// createReorder: kuantitas restock = persis jumlah yang barusan keluar
// (perilaku sistem lama dipertahankan, lihat DESIGN.md).
func createReorder(tx *gorm.DB, isbn string, quantity int) (*model.PublisherOrderModel, error) {
	order := model.PublisherOrderModel{
		OrderISBN:     isbn,
		OrderQuantity: quantity,
		OrderStatus:   model.OrderStatusPending,
		OrderDate:     time.Now().UTC(),
	}
	if err := tx.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
