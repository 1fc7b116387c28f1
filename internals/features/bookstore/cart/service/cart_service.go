// file: internals/features/bookstore/cart/service/cart_service.go
package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cartDto "bookstore_backend/internals/features/bookstore/cart/dto"
	cartModel "bookstore_backend/internals/features/bookstore/cart/model"
	bookModel "bookstore_backend/internals/features/bookstore/catalog/model"
)

// AddToCart menambahkan item; kalau ISBN sudah ada di keranjang,
// kuantitas diakumulasi (upsert). Cek stok di sini hanya "soft check" —
// validasi final tetap di checkout (dengan row lock).
func AddToCart(ctx context.Context, db *gorm.DB, userID uuid.UUID, req cartDto.AddToCartRequest) error {
	var book bookModel.BookModel
	if err := db.WithContext(ctx).
		Where("book_isbn = ?", req.ISBN).
		First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Book not found")
		}
		return err
	}

	if book.BookQuantityInStock < req.Quantity {
		return fiber.NewError(fiber.StatusConflict, "Quantity in stock is less than the required quantity")
	}

	item := cartModel.CartItemModel{
		CartUserID:   userID,
		CartISBN:     req.ISBN,
		CartQuantity: req.Quantity,
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_user_id"}, {Name: "cart_isbn"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"cart_quantity": gorm.Expr("shopping_cart.cart_quantity + ?", req.Quantity),
			}),
		}).
		Create(&item).Error
}

type cartRow struct {
	ISBN     string  `gorm:"column:cart_isbn"`
	Title    string  `gorm:"column:book_title"`
	Price    float64 `gorm:"column:book_price"`
	Quantity int     `gorm:"column:cart_quantity"`
	InStock  int     `gorm:"column:book_quantity_in_stock"`
}

// ViewCart mengembalikan isi keranjang beserta subtotal per baris dan total.
func ViewCart(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*cartDto.CartResponse, error) {
	var rows []cartRow
	if err := db.WithContext(ctx).
		Table("shopping_cart").
		Select("shopping_cart.cart_isbn, books.book_title, books.book_price, shopping_cart.cart_quantity, books.book_quantity_in_stock").
		Joins("JOIN books ON books.book_isbn = shopping_cart.cart_isbn").
		Where("shopping_cart.cart_user_id = ?", userID).
		Order("books.book_title ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	resp := &cartDto.CartResponse{Items: make([]cartDto.CartLineResponse, 0, len(rows))}
	for _, r := range rows {
		sub := r.Price * float64(r.Quantity)
		resp.Items = append(resp.Items, cartDto.CartLineResponse{
			ISBN:      r.ISBN,
			Title:     r.Title,
			Price:     r.Price,
			Quantity:  r.Quantity,
			Subtotal:  sub,
			InStock:   r.InStock,
			Available: r.InStock >= r.Quantity,
		})
		resp.TotalItems += r.Quantity
		resp.TotalPrice += sub
	}
	return resp, nil
}

// RemoveFromCart menghapus satu ISBN dari keranjang. 404 kalau tidak ada.
func RemoveFromCart(ctx context.Context, db *gorm.DB, userID uuid.UUID, isbn string) error {
	res := db.WithContext(ctx).
		Where("cart_user_id = ? AND cart_isbn = ?", userID, isbn).
		Delete(&cartModel.CartItemModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Item not found in cart")
	}
	return nil
}

// ClearCart mengosongkan keranjang user (juga dipakai saat logout).
func ClearCart(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	return db.WithContext(ctx).
		Where("cart_user_id = ?", userID).
		Delete(&cartModel.CartItemModel{}).Error
}
