// file: internals/features/bookstore/checkout/service/checkout_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookModel "bookstore_backend/internals/features/bookstore/catalog/model"
	checkoutDto "bookstore_backend/internals/features/bookstore/checkout/dto"
	checkoutModel "bookstore_backend/internals/features/bookstore/checkout/model"
	inventoryModel "bookstore_backend/internals/features/bookstore/inventory/model"
	inventoryService "bookstore_backend/internals/features/bookstore/inventory/service"
)

type paymentMeta struct {
	Brand      string `json:"brand"`
	CardMasked string `json:"card_masked"`
	Expiry     string `json:"expiry"`
}

// Checkout menjalankan transaksi penjualan: validasi kartu dulu (tanpa
// menyentuh storage), lalu satu transaksi DB yang mengunci baris buku,
// mengecek ulang stok, mencatat sale + item, memicu reorder bila perlu,
// dan mengosongkan keranjang. Gagal di tengah = rollback total.
func Checkout(ctx context.Context, db *gorm.DB, userID uuid.UUID, req checkoutDto.CheckoutRequest) (*checkoutDto.CheckoutResponse, error) {
	cardNumber, err := ValidateCardNumber(req.CardNumber)
	if err != nil {
		return nil, err
	}
	if _, _, err := ValidateCardExpiry(req.CardExpiry, time.Now()); err != nil {
		return nil, err
	}

	meta, err := json.Marshal(paymentMeta{
		Brand:      "Visa",
		CardMasked: MaskCardNumber(cardNumber),
		Expiry:     req.CardExpiry,
	})
	if err != nil {
		return nil, err
	}

	var resp *checkoutDto.CheckoutResponse
	var reorders []inventoryModel.PublisherOrderModel

	txErr := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		type cartLine struct {
			ISBN     string `gorm:"column:cart_isbn"`
			Quantity int    `gorm:"column:cart_quantity"`
		}
		var lines []cartLine
		// urut berdasarkan ISBN supaya urutan lock antar-checkout konsisten
		if err := tx.Table("shopping_cart").
			Select("cart_isbn, cart_quantity").
			Where("cart_user_id = ?", userID).
			Order("cart_isbn ASC").
			Scan(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cart is empty")
		}

		sale := checkoutModel.SaleModel{
			SaleID:          uuid.New(),
			SaleUserID:      userID,
			SalePaymentMeta: datatypes.JSON(meta),
			SaleDate:        time.Now().UTC(),
		}

		items := make([]checkoutModel.SaleItemModel, 0, len(lines))
		respItems := make([]checkoutDto.CheckoutItemResponse, 0, len(lines))
		total := 0.0

		for _, line := range lines {
			var book bookModel.BookModel
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("book_isbn = ?", line.ISBN).
				First(&book).Error; err != nil {
				return err
			}

			// cek ulang stok di dalam lock; soft check saat add bisa basi
			if book.BookQuantityInStock < line.Quantity {
				return fiber.NewError(fiber.StatusConflict,
					fmt.Sprintf("Quantity in stock is less than the required quantity for ISBN %s", book.BookISBN))
			}

			reorder, err := inventoryService.DecrementStockForSale(tx, &book, line.Quantity)
			if err != nil {
				return err
			}
			if reorder != nil {
				reorders = append(reorders, *reorder)
			}

			sub := book.BookPrice * float64(line.Quantity)
			total += sub
			items = append(items, checkoutModel.SaleItemModel{
				SaleID:           sale.SaleID,
				SaleItemISBN:     book.BookISBN,
				SaleItemQuantity: line.Quantity,
				SaleItemPrice:    book.BookPrice,
			})
			respItems = append(respItems, checkoutDto.CheckoutItemResponse{
				ISBN:     book.BookISBN,
				Title:    book.BookTitle,
				Quantity: line.Quantity,
				Price:    book.BookPrice,
				Subtotal: sub,
			})
		}

		sale.SaleTotalPrice = total
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM shopping_cart WHERE cart_user_id = ?", userID).Error; err != nil {
			return err
		}

		resp = &checkoutDto.CheckoutResponse{
			SaleID:     sale.SaleID.String(),
			TotalPrice: total,
			CardLast4:  cardNumber[len(cardNumber)-4:],
			SaleDate:   sale.SaleDate,
			Items:      respItems,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// event reorder dikirim setelah commit, best-effort
	for _, order := range reorders {
		inventoryService.PublishReorderEvent(order)
	}
	return resp, nil
}

// ListSales mengembalikan riwayat pembelian user, terbaru dulu.
func ListSales(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]checkoutDto.SaleHistoryResponse, error) {
	type saleRow struct {
		SaleID     uuid.UUID `gorm:"column:sale_id"`
		TotalPrice float64   `gorm:"column:sale_total_price"`
		SaleDate   time.Time `gorm:"column:sale_date"`
		ItemCount  int       `gorm:"column:item_count"`
	}
	var rows []saleRow
	if err := db.WithContext(ctx).
		Table("sales").
		Select("sales.sale_id, sales.sale_total_price, sales.sale_date, COUNT(sale_items.sale_item_isbn) AS item_count").
		Joins("LEFT JOIN sale_items ON sale_items.sale_id = sales.sale_id").
		Where("sales.sale_user_id = ?", userID).
		Group("sales.sale_id, sales.sale_total_price, sales.sale_date").
		Order("sales.sale_date DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]checkoutDto.SaleHistoryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, checkoutDto.SaleHistoryResponse{
			SaleID:     r.SaleID.String(),
			TotalPrice: r.TotalPrice,
			SaleDate:   r.SaleDate,
			ItemCount:  r.ItemCount,
		})
	}
	return out, nil
}
