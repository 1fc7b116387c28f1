// file: internals/features/bookstore/checkout/service/payment_service.go
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Validasi kartu dilakukan lokal (tanpa gateway): format Visa 16 digit,
// checksum Luhn, dan tanggal kedaluwarsa MM/YY.

// NormalizeCardNumber membuang spasi dan tanda hubung.
func NormalizeCardNumber(raw string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// LuhnValid menghitung checksum mod-10.
func LuhnValid(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ValidateCardNumber: 16 digit, prefix Visa (4), lolos Luhn.
func ValidateCardNumber(raw string) (string, error) {
	number := NormalizeCardNumber(raw)
	if len(number) != 16 || !isAllDigits(number) {
		return "", fiber.NewError(fiber.StatusBadRequest, "Card number must be 16 digits")
	}
	if number[0] != '4' {
		return "", fiber.NewError(fiber.StatusBadRequest, "Only Visa cards are accepted")
	}
	if !LuhnValid(number) {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid card number")
	}
	return number, nil
}

// ValidateCardExpiry menerima format MM/YY. Kartu berlaku sampai akhir
// bulan kedaluwarsanya; tanggal lebih dari 10 tahun ke depan ditolak.
func ValidateCardExpiry(expiry string, now time.Time) (month, year int, err error) {
	expiry = strings.TrimSpace(expiry)
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 ||
		!isAllDigits(parts[0]) || !isAllDigits(parts[1]) {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid expiry date format. Use MM/YY")
	}

	month = int(parts[0][0]-'0')*10 + int(parts[0][1]-'0')
	year = 2000 + int(parts[1][0]-'0')*10 + int(parts[1][1]-'0')
	if month < 1 || month > 12 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid expiry date format. Use MM/YY")
	}

	// awal bulan berikutnya = momen pertama kartu tidak berlaku
	endOfMonth := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	if !now.Before(endOfMonth) {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Card is expired")
	}
	if year > now.UTC().Year()+10 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Card expiry date is too far in the future")
	}
	return month, year, nil
}

// MaskCardNumber menyisakan 4 digit terakhir.
func MaskCardNumber(number string) string {
	if len(number) < 4 {
		return number
	}
	return fmt.Sprintf("**** **** **** %s", number[len(number)-4:])
}
