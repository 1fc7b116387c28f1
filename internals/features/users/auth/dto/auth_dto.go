// file: internals/features/users/auth/dto/auth_dto.go
package dto

/* =========================
   REQUEST
   ========================= */

type RegisterRequest struct {
	UserName  string  `json:"user_name"  validate:"required,min=3,max=60,alphanum"`
	Password  string  `json:"password"   validate:"required,min=8"`
	FirstName string  `json:"first_name" validate:"required,min=1,max=80"`
	LastName  string  `json:"last_name"  validate:"required,min=1,max=80"`
	Email     string  `json:"email"      validate:"required,email"`
	Phone     *string `json:"phone,omitempty"   validate:"omitempty,min=6,max=30"`
	Address   *string `json:"address,omitempty" validate:"omitempty,max=500"`
}

type LoginRequest struct {
	// boleh user_name atau email
	Identifier string `json:"identifier" validate:"required,min=3"`
	Password   string `json:"password"   validate:"required"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=80"`
	LastName  *string `json:"last_name,omitempty"  validate:"omitempty,min=1,max=80"`
	Email     *string `json:"email,omitempty"      validate:"omitempty,email"`
	Password  *string `json:"password,omitempty"   validate:"omitempty,min=8"`
	Phone     *string `json:"phone,omitempty"      validate:"omitempty,min=6,max=30"`
	Address   *string `json:"address,omitempty"    validate:"omitempty,max=500"`
}

/* =========================
   RESPONSE
   ========================= */

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}
