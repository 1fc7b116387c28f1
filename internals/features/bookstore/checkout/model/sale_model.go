// file: internals/features/bookstore/checkout/model/sale_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SaleModel struct {
	SaleID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid();column:sale_id" json:"sale_id"`
	SaleUserID      uuid.UUID      `gorm:"type:uuid;not null;column:sale_user_id" json:"sale_user_id"`
	SaleTotalPrice  float64        `gorm:"type:numeric(12,2);not null;column:sale_total_price" json:"sale_total_price"`
	SalePaymentMeta datatypes.JSON `gorm:"column:sale_payment_meta" json:"sale_payment_meta,omitempty"`
	SaleDate        time.Time      `gorm:"not null;autoCreateTime;column:sale_date" json:"sale_date"`
}

func (SaleModel) TableName() string { return "sales" }

type SaleItemModel struct {
	SaleID           uuid.UUID `gorm:"type:uuid;primaryKey;column:sale_id" json:"sale_id"`
	SaleItemISBN     string    `gorm:"type:varchar(13);primaryKey;column:sale_item_isbn" json:"sale_item_isbn"`
	SaleItemQuantity int       `gorm:"not null;column:sale_item_quantity" json:"sale_item_quantity"`
	SaleItemPrice    float64   `gorm:"type:numeric(10,2);not null;column:sale_item_price" json:"sale_item_price"`
}

func (SaleItemModel) TableName() string { return "sale_items" }
