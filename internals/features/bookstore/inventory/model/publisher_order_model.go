// file: internals/features/bookstore/inventory/model/publisher_order_model.go
package model

import "time"

const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Confirmed"
)

// PublisherOrderModel: permintaan restock ke penerbit.
// Lifecycle: Pending → Confirmed (terminal). Status hanya boleh diubah
// lewat konfirmasi order — tidak ada writer lain.
type PublisherOrderModel struct {
	OrderID            int64      `gorm:"primaryKey;autoIncrement;column:order_id" json:"order_id"`
	OrderISBN          string     `gorm:"type:varchar(13);not null;column:order_isbn" json:"order_isbn"`
	OrderQuantity      int        `gorm:"not null;column:order_quantity" json:"order_quantity"`
	OrderStatus        string     `gorm:"type:varchar(10);not null;default:Pending;column:order_status" json:"order_status"`
	OrderDate          time.Time  `gorm:"type:timestamptz;not null;default:now();column:order_date" json:"order_date"`
	OrderConfirmedDate *time.Time `gorm:"column:order_confirmed_date" json:"order_confirmed_date,omitempty"`
}

func (PublisherOrderModel) TableName() string { return "publisher_orders" }
