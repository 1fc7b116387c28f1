// internals/features/bookstore/inventory/dto/inventory_dto.go
package dto

import "time"

/* =========================
   REQUEST
   ========================= */

// NewQuantity pointer supaya "tidak dikirim" bisa dibedakan dari 0;
// urutan validasi bisnis ada di service (first failure wins).
type SellStockRequest struct {
	NewQuantity *int `json:"quantity_in_stock"`
}

/* =========================
   RESPONSE
   ========================= */

type SellStockResponse struct {
	ISBN             string `json:"isbn"`
	PreviousQuantity int    `json:"previous_quantity"`
	NewQuantity      int    `json:"new_quantity"`
	Threshold        int    `json:"threshold"`
	ReorderTriggered bool   `json:"reorder_triggered"`
}

type PendingOrderResponse struct {
	OrderID   int64     `json:"order_id"`
	ISBN      string    `json:"isbn"`
	BookTitle string    `json:"book_title"`
	Quantity  int       `json:"quantity_ordered"`
	OrderDate time.Time `json:"order_date"`
}

// Rekap order penerbit per buku, dipecah per status.
type BookOrderStatsResponse struct {
	ISBN                 string `json:"isbn"`
	Title                string `json:"title"`
	TotalOrders          int64  `json:"total_orders"`
	TotalQuantityOrdered int64  `json:"total_quantity_ordered"`
	ConfirmedOrders      int64  `json:"confirmed_orders"`
	PendingOrders        int64  `json:"pending_orders"`
}
