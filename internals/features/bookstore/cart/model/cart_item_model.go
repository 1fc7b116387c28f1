// file: internals/features/bookstore/cart/model/cart_item_model.go
package model

import "github.com/google/uuid"

type CartItemModel struct {
	CartUserID   uuid.UUID `gorm:"type:uuid;primaryKey;column:cart_user_id" json:"cart_user_id"`
	CartISBN     string    `gorm:"type:varchar(13);primaryKey;column:cart_isbn" json:"cart_isbn"`
	CartQuantity int       `gorm:"not null;column:cart_quantity" json:"cart_quantity"`
}

func (CartItemModel) TableName() string { return "shopping_cart" }
