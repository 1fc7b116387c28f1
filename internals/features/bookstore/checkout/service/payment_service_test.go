package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuhnValid(t *testing.T) {
	assert.True(t, LuhnValid("4111111111111111"))
	assert.True(t, LuhnValid("4012888888881881"))
	assert.False(t, LuhnValid("4111111111111112"))
	assert.False(t, LuhnValid("4111111111111110"))
}

func TestValidateCardNumber(t *testing.T) {
	num, err := ValidateCardNumber("4111 1111 1111 1111")
	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", num)

	num, err = ValidateCardNumber("4012-8888-8888-1881")
	require.NoError(t, err)
	assert.Equal(t, "4012888888881881", num)
}

func TestValidateCardNumber_Rejections(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"too short", "411111111111111"},
		{"too long", "41111111111111111"},
		{"non numeric", "41111111111111ab"},
		{"not visa", "5500005555555559"},
		{"bad checksum", "4111111111111112"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateCardNumber(tc.raw)
			require.Error(t, err)
			fe, ok := err.(*fiber.Error)
			require.True(t, ok)
			assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		})
	}
}

func TestValidateCardExpiry(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	m, y, err := ValidateCardExpiry("09/26", now) // berlaku sampai akhir bulan
	require.NoError(t, err)
	assert.Equal(t, 9, m)
	assert.Equal(t, 2026, y)

	_, _, err = ValidateCardExpiry("08/26", now) // satu bulan lewat
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")

	_, _, err = ValidateCardExpiry("12/30", now)
	require.NoError(t, err)

	_, _, err = ValidateCardExpiry("01/37", now) // > 10 tahun ke depan
	require.Error(t, err)
}

func TestValidateCardExpiry_Format(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{"13/30", "00/30", "1/30", "01-30", "0130", "ab/cd", ""} {
		_, _, err := ValidateCardExpiry(raw, now)
		require.Error(t, err, "expiry %q harus ditolak", raw)
	}
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "**** **** **** 1111", MaskCardNumber("4111111111111111"))
}

func TestNormalizeCardNumber(t *testing.T) {
	assert.Equal(t, "4111111111111111", NormalizeCardNumber("  4111 1111-1111 1111 "))
}
