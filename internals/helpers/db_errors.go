package helper

import (
	"errors"
	"os"
	"strings"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kode error storage yang kita kenali lintas driver.
const (
	pgCheckViolation  = "23514"
	pgUniqueViolation = "23505"

	myCheckViolation  = 3819 // ER_CHECK_CONSTRAINT_VIOLATED
	myUniqueViolation = 1062 // ER_DUP_ENTRY
)

// TranslateDBError memetakan error driver menjadi *fiber.Error dengan
// taksonomi yang stabil. CHECK constraint stok (lapisan pengaman terakhir,
// independen dari validasi aplikasi) keluar sebagai 403, unique sebagai 409.
// Error lain disembunyikan di balik 500 kecuali APP_DEBUG=true.
func TranslateDBError(err error) error {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*fiber.Error); ok {
		return fe
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCheckViolation:
			if strings.Contains(pgErr.ConstraintName, "stock") || strings.Contains(pgErr.Message, "quantity_in_stock") {
				return fiber.NewError(fiber.StatusForbidden, "Cannot update book: quantity cannot be negative")
			}
			return fiber.NewError(fiber.StatusForbidden, "Operasi melanggar constraint data")
		case pgUniqueViolation:
			return fiber.NewError(fiber.StatusConflict, "Data dengan nilai unik yang sama sudah ada")
		}
	}

	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case myCheckViolation:
			if strings.Contains(myErr.Message, "stock") {
				return fiber.NewError(fiber.StatusForbidden, "Cannot update book: quantity cannot be negative")
			}
			return fiber.NewError(fiber.StatusForbidden, "Operasi melanggar constraint data")
		case myUniqueViolation:
			return fiber.NewError(fiber.StatusConflict, "Data dengan nilai unik yang sama sudah ada")
		}
	}

	if strings.EqualFold(os.Getenv("APP_DEBUG"), "true") {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
}
