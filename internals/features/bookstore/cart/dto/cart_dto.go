// file: internals/features/bookstore/cart/dto/cart_dto.go
package dto

// ===== Request =====

type AddToCartRequest struct {
	ISBN     string `json:"isbn" validate:"required,len=13,numeric"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// ===== Response =====

type CartLineResponse struct {
	ISBN      string  `json:"isbn"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
	InStock   int     `json:"in_stock"`
	Available bool    `json:"available"`
}

type CartResponse struct {
	Items      []CartLineResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	TotalPrice float64            `json:"total_price"`
}
