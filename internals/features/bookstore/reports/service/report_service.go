// file: internals/features/bookstore/reports/service/report_service.go
package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bookstore_backend/internals/features/bookstore/reports/dto"
)

// Semua rentang waktu dihitung di Go dan dikirim sebagai parameter,
// supaya SQL-nya sama untuk Postgres dan MySQL.

// PreviousMonthSales merangkum penjualan bulan kalender sebelumnya (UTC).
func PreviousMonthSales(ctx context.Context, db *gorm.DB) (*dto.SalesSummaryResponse, error) {
	now := time.Now().UTC()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevMonth := thisMonth.AddDate(0, -1, 0)

	var row struct {
		SaleCount   int     `gorm:"column:sale_count"`
		TotalAmount float64 `gorm:"column:total_amount"`
	}
	if err := db.WithContext(ctx).
		Table("sales").
		Select("COUNT(*) AS sale_count, COALESCE(SUM(sale_total_price), 0) AS total_amount").
		Where("sale_date >= ? AND sale_date < ?", prevMonth, thisMonth).
		Scan(&row).Error; err != nil {
		return nil, err
	}

	return &dto.SalesSummaryResponse{
		PeriodStart: prevMonth.Format("2006-01-02"),
		PeriodEnd:   thisMonth.AddDate(0, 0, -1).Format("2006-01-02"),
		SaleCount:   row.SaleCount,
		TotalAmount: row.TotalAmount,
	}, nil
}

// SalesByDate mencantumkan transaksi pada satu tanggal (format YYYY-MM-DD).
func SalesByDate(ctx context.Context, db *gorm.DB, date string) ([]dto.SaleByDateResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid date. Use YYYY-MM-DD")
	}
	next := day.AddDate(0, 0, 1)

	type row struct {
		SaleID     string    `gorm:"column:sale_id"`
		UserName   string    `gorm:"column:user_name"`
		TotalPrice float64   `gorm:"column:sale_total_price"`
		SaleDate   time.Time `gorm:"column:sale_date"`
	}
	var rows []row
	if err := db.WithContext(ctx).
		Table("sales").
		Select("sales.sale_id, users.user_name, sales.sale_total_price, sales.sale_date").
		Joins("JOIN users ON users.user_id = sales.sale_user_id").
		Where("sales.sale_date >= ? AND sales.sale_date < ?", day, next).
		Order("sales.sale_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]dto.SaleByDateResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SaleByDateResponse{
			SaleID:     r.SaleID,
			UserName:   r.UserName,
			TotalPrice: r.TotalPrice,
			SaleDate:   r.SaleDate.UTC().Format(time.RFC3339),
		})
	}
	return out, nil
}

// TopCustomers: 5 pembeli terbesar dalam 3 bulan terakhir.
func TopCustomers(ctx context.Context, db *gorm.DB) ([]dto.TopCustomerResponse, error) {
	since := time.Now().UTC().AddDate(0, -3, 0)

	var rows []dto.TopCustomerResponse
	if err := db.WithContext(ctx).
		Table("sales").
		Select("users.user_id, users.user_name, users.user_email AS email, "+
			"COUNT(*) AS sale_count, COALESCE(SUM(sales.sale_total_price), 0) AS total_spent").
		Joins("JOIN users ON users.user_id = sales.sale_user_id").
		Where("sales.sale_date >= ?", since).
		Group("users.user_id, users.user_name, users.user_email").
		Order("total_spent DESC").
		Limit(5).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// TopBooks: 10 buku terlaris dalam 3 bulan terakhir (berdasarkan kuantitas).
func TopBooks(ctx context.Context, db *gorm.DB) ([]dto.TopBookResponse, error) {
	since := time.Now().UTC().AddDate(0, -3, 0)

	var rows []dto.TopBookResponse
	if err := db.WithContext(ctx).
		Table("sale_items").
		Select("sale_items.sale_item_isbn AS isbn, books.book_title AS title, "+
			"SUM(sale_items.sale_item_quantity) AS quantity_sold, "+
			"SUM(sale_items.sale_item_quantity * sale_items.sale_item_price) AS revenue").
		Joins("JOIN sales ON sales.sale_id = sale_items.sale_id").
		Joins("JOIN books ON books.book_isbn = sale_items.sale_item_isbn").
		Where("sales.sale_date >= ?", since).
		Group("sale_items.sale_item_isbn, books.book_title").
		Order("quantity_sold DESC").
		Limit(10).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
