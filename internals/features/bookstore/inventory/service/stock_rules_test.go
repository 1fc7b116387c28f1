package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestValidateSellStock_RequiresQuantity(t *testing.T) {
	err := ValidateSellStock(12, 10, nil)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestValidateSellStock_RejectsNegative(t *testing.T) {
	err := ValidateSellStock(12, 10, intPtr(-1))
	require.Error(t, err)
	fe := err.(*fiber.Error)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestValidateSellStock_ManualIncreaseForbidden(t *testing.T) {
	err := ValidateSellStock(12, 10, intPtr(15))
	require.Error(t, err)
	fe := err.(*fiber.Error)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
	assert.Contains(t, fe.Message, "You can't add quantity manually")
}

func TestValidateSellStock_FrozenBelowThreshold(t *testing.T) {
	// stok 9, threshold 10: sudah di bawah threshold, segala penjualan manual
	// dibekukan sampai order penerbit dikonfirmasi
	err := ValidateSellStock(9, 10, intPtr(5))
	require.Error(t, err)
	fe := err.(*fiber.Error)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
	assert.Contains(t, fe.Message, "less than threshold")
}

func TestValidateSellStock_NoChange(t *testing.T) {
	err := ValidateSellStock(12, 10, intPtr(12))
	require.Error(t, err)
	fe := err.(*fiber.Error)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "No change detected in quantity", fe.Message)
}

func TestValidateSellStock_ValidDecrease(t *testing.T) {
	// stok 12, threshold 10, turun ke 9: valid (reorder urusan caller)
	assert.NoError(t, ValidateSellStock(12, 10, intPtr(9)))
	assert.NoError(t, ValidateSellStock(12, 10, intPtr(0)))
}

func TestValidateSellStock_CheckOrderFirstFailureWins(t *testing.T) {
	// increase + sudah di bawah threshold: cek "manual increase" menang
	err := ValidateSellStock(5, 10, intPtr(8))
	require.Error(t, err)
	fe := err.(*fiber.Error)
	assert.Contains(t, fe.Message, "You can't add quantity manually")
}

func TestReorderNeeded(t *testing.T) {
	assert.True(t, ReorderNeeded(9, 10))
	assert.False(t, ReorderNeeded(10, 10))
	assert.False(t, ReorderNeeded(11, 10))
	assert.True(t, ReorderNeeded(0, 1))
}
