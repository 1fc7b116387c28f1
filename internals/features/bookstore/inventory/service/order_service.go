// internals/features/bookstore/inventory/service/order_service.go
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

// ListPendingOrders: semua order Pending + judul buku, terbaru dulu.
func ListPendingOrders(ctx context.Context, db *gorm.DB) ([]dto.PendingOrderResponse, error) {
	var rows []dto.PendingOrderResponse
	err := db.WithContext(ctx).
		Table("publisher_orders AS o").
		Select("o.order_id, o.order_isbn AS isbn, b.book_title, o.order_quantity AS quantity, o.order_date").
		Joins("JOIN books b ON b.book_isbn = o.order_isbn").
		Where("o.order_status = ?", model.OrderStatusPending).
		Order("o.order_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.PendingOrderResponse{}
	}
	return rows, nil
}

// ConfirmOrder: SATU-SATUNYA jalur yang menaikkan stok.
// Predikat status='Pending' + lock baris membuat konfirmasi ganda aman:
// panggilan kedua tidak menemukan baris Pending → NotFound.
func ConfirmOrder(ctx context.Context, db *gorm.DB, orderID int64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order model.PublisherOrderModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_id = ? AND order_status = ?", orderID, model.OrderStatusPending).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Order not found or already confirmed")
			}
			return err
		}

		// Kunci baris buku juga; increment atomik di storage.
		var book catalogModel.BookModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("book_isbn = ?", order.OrderISBN).
			First(&book).Error; err != nil {
			return err
		}
		if err := tx.Model(&catalogModel.BookModel{}).
			Where("book_isbn = ?", order.OrderISBN).
			Update("book_quantity_in_stock", gorm.Expr("book_quantity_in_stock + ?", order.OrderQuantity)).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		return tx.Model(&model.PublisherOrderModel{}).
			Where("order_id = ?", order.OrderID).
			Updates(map[string]interface{}{
				"order_status":         model.OrderStatusConfirmed,
				"order_confirmed_date": now,
			}).Error
	})
}

// GetBookOrderStats: rekap order penerbit sebuah buku, dipecah per status.
func GetBookOrderStats(ctx context.Context, db *gorm.DB, isbn string) (*dto.BookOrderStatsResponse, error) {
	var book catalogModel.BookModel
	if err := db.WithContext(ctx).
		Select("book_isbn, book_title").
		Where("book_isbn = ?", isbn).
		First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Book not found")
		}
		return nil, err
	}

	var stats struct {
		TotalOrders          int64
		TotalQuantityOrdered int64
		ConfirmedOrders      int64
		PendingOrders        int64
	}
	err := db.WithContext(ctx).
		Table("publisher_orders").
		Select("COUNT(*) AS total_orders, "+
			"COALESCE(SUM(order_quantity), 0) AS total_quantity_ordered, "+
			"COALESCE(SUM(CASE WHEN order_status = 'Confirmed' THEN 1 ELSE 0 END), 0) AS confirmed_orders, "+
			"COALESCE(SUM(CASE WHEN order_status = 'Pending' THEN 1 ELSE 0 END), 0) AS pending_orders").
		Where("order_isbn = ?", isbn).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	return &dto.BookOrderStatsResponse{
		ISBN:                 book.BookISBN,
		Title:                book.BookTitle,
		TotalOrders:          stats.TotalOrders,
		TotalQuantityOrdered: stats.TotalQuantityOrdered,
		ConfirmedOrders:      stats.ConfirmedOrders,
		PendingOrders:        stats.PendingOrders,
	}, nil
}
