// internals/features/bookstore/inventory/service/stock_rules.go
package service

import "github.com/gofiber/fiber/v2"

// ValidateSellStock memeriksa prasyarat "sell stock" manual oleh admin.
// Urutan cek penting (first failure wins):
//  1. quantity wajib dikirim
//  2. quantity harus >= 0
//  3. menaikkan stok manual dilarang — stok hanya naik via konfirmasi order
//  4. stok yang sudah di bawah threshold dibekukan sampai order dikonfirmasi
//  5. harus ada perubahan nyata
//
// (Cek "buku ada" dilakukan caller saat mengunci baris.)
func ValidateSellStock(current, threshold int, newQuantity *int) error {
	if newQuantity == nil {
		return fiber.NewError(fiber.StatusBadRequest, "quantity_in_stock is required")
	}
	if *newQuantity < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Quantity must be zero or a positive number")
	}
	if *newQuantity > current {
		return fiber.NewError(fiber.StatusForbidden,
			"You can't add quantity manually. You must wait for the publisher order and confirm it when it arrives.")
	}
	if current < threshold {
		return fiber.NewError(fiber.StatusForbidden,
			"Quantity in stock is less than threshold...Publisher order is waiting for confirmation")
	}
	if *newQuantity == current {
		return fiber.NewError(fiber.StatusBadRequest, "No change detected in quantity")
	}
	return nil
}

// ReorderNeeded: order restock dibuat untuk SETIAP pengurangan yang berakhir
// di bawah threshold (menyeberang ataupun sudah di bawah). Tidak ada dedup
// terhadap order Pending yang sudah ada — lihat catatan di DESIGN.md.
func ReorderNeeded(newStock, threshold int) bool {
	return newStock < threshold
}
