package helper

import (
	"errors"
	"fmt"
	"testing"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func asFiberError(t *testing.T, err error) *fiber.Error {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "harus *fiber.Error, dapat %T", err)
	return fe
}

func TestTranslateDBError_Nil(t *testing.T) {
	assert.NoError(t, TranslateDBError(nil))
}

func TestTranslateDBError_PassThroughFiberError(t *testing.T) {
	orig := fiber.NewError(fiber.StatusConflict, "Cart is empty")
	assert.Same(t, orig, TranslateDBError(orig).(*fiber.Error))
}

func TestTranslateDBError_RecordNotFound(t *testing.T) {
	fe := asFiberError(t, TranslateDBError(gorm.ErrRecordNotFound))
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestTranslateDBError_PostgresStockCheck(t *testing.T) {
	err := fmt.Errorf("exec: %w", &pgconn.PgError{
		Code:           "23514",
		ConstraintName: "books_book_quantity_in_stock_check",
	})
	fe := asFiberError(t, TranslateDBError(err))
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
	assert.Equal(t, "Cannot update book: quantity cannot be negative", fe.Message)
}

func TestTranslateDBError_PostgresUnique(t *testing.T) {
	fe := asFiberError(t, TranslateDBError(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}

func TestTranslateDBError_MySQLStockCheck(t *testing.T) {
	err := &gomysql.MySQLError{Number: 3819, Message: "Check constraint 'books_chk_stock' is violated."}
	fe := asFiberError(t, TranslateDBError(err))
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
}

func TestTranslateDBError_MySQLDupEntry(t *testing.T) {
	err := &gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	fe := asFiberError(t, TranslateDBError(err))
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}

func TestTranslateDBError_UnknownHidesCause(t *testing.T) {
	t.Setenv("APP_DEBUG", "false")
	fe := asFiberError(t, TranslateDBError(errors.New("pq: connection refused")))
	assert.Equal(t, fiber.StatusInternalServerError, fe.Code)
	assert.Equal(t, "Internal server error", fe.Message)
}

func TestTranslateDBError_DebugShowsCause(t *testing.T) {
	t.Setenv("APP_DEBUG", "true")
	fe := asFiberError(t, TranslateDBError(errors.New("pq: connection refused")))
	assert.Equal(t, fiber.StatusInternalServerError, fe.Code)
	assert.Contains(t, fe.Message, "connection refused")
}
