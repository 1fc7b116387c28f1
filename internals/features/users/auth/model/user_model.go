// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName      string    `gorm:"type:varchar(60);not null;unique;column:user_name" json:"user_name"`
	UserPassword  string    `gorm:"type:text;not null;column:user_password" json:"-"`
	UserFirstName string    `gorm:"type:varchar(80);not null;column:user_first_name" json:"user_first_name"`
	UserLastName  string    `gorm:"type:varchar(80);not null;column:user_last_name" json:"user_last_name"`
	UserEmail     string    `gorm:"type:varchar(160);not null;unique;column:user_email" json:"user_email"`
	UserRole      string    `gorm:"type:varchar(20);not null;default:customer;column:user_role" json:"user_role"`
	UserIsActive  bool      `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`
	UserCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:user_updated_at" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

// Profil khusus customer (admin tidak punya baris di sini).
type CustomerProfileModel struct {
	CustomerProfileUserID          uuid.UUID `gorm:"type:uuid;primaryKey;column:customer_profile_user_id" json:"customer_profile_user_id"`
	CustomerProfilePhone           *string   `gorm:"type:varchar(30);column:customer_profile_phone" json:"customer_profile_phone,omitempty"`
	CustomerProfileShippingAddress *string   `gorm:"type:text;column:customer_profile_shipping_address" json:"customer_profile_shipping_address,omitempty"`
}

func (CustomerProfileModel) TableName() string { return "customer_profiles" }
