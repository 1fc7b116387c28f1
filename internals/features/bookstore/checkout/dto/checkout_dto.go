// file: internals/features/bookstore/checkout/dto/checkout_dto.go
package dto

import "time"

// ===== Request =====

type CheckoutRequest struct {
	CardNumber string `json:"card_number" validate:"required"`
	CardExpiry string `json:"card_expiry" validate:"required"` // format MM/YY
}

// ===== Response =====

type CheckoutItemResponse struct {
	ISBN     string  `json:"isbn"`
	Title    string  `json:"title"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

type CheckoutResponse struct {
	SaleID     string                 `json:"sale_id"`
	TotalPrice float64                `json:"total_price"`
	CardLast4  string                 `json:"card_last4"`
	SaleDate   time.Time              `json:"sale_date"`
	Items      []CheckoutItemResponse `json:"items"`
}

type SaleHistoryResponse struct {
	SaleID     string    `json:"sale_id"`
	TotalPrice float64   `json:"total_price"`
	SaleDate   time.Time `json:"sale_date"`
	ItemCount  int       `json:"item_count"`
}
