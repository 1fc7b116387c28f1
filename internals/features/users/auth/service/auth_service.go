// internals/features/users/auth/service/auth_service.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"bookstore_backend/internals/constants"
	authDTO "bookstore_backend/internals/features/users/auth/dto"
	authModel "bookstore_backend/internals/features/users/auth/model"
	helper "bookstore_backend/internals/helpers"
)

// ========================== REGISTER ==========================
// Customer baru: baris users + customer_profiles dalam satu transaksi.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	// Hash di luar transaksi (bcrypt itu mahal)
	hashed, err := HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := authModel.UserModel{
		UserName:      strings.TrimSpace(req.UserName),
		UserPassword:  hashed,
		UserFirstName: strings.TrimSpace(req.FirstName),
		UserLastName:  strings.TrimSpace(req.LastName),
		UserEmail:     strings.ToLower(strings.TrimSpace(req.Email)),
		UserRole:      constants.RoleCustomer,
		UserIsActive:  true,
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := authModel.CustomerProfileModel{
			CustomerProfileUserID:          user.UserID,
			CustomerProfilePhone:           req.Phone,
			CustomerProfileShippingAddress: req.Address,
		}
		return tx.Create(&profile).Error
	}); err != nil {
		fe := helper.TranslateDBError(err)
		if fiberErr, ok := fe.(*fiber.Error); ok && fiberErr.Code == fiber.StatusConflict {
			return helper.JsonError(c, fiber.StatusConflict, "Username atau email sudah terdaftar")
		}
		return helper.FromFiberError(c, fe)
	}

	return helper.JsonCreated(c, "Customer registered successfully", toUserResponse(user))
}

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	ident := strings.TrimSpace(req.Identifier)
	var user authModel.UserModel
	if err := db.
		Where("user_name = ? OR user_email = ?", ident, strings.ToLower(ident)).
		First(&user).Error; err != nil {
		// pesan sengaja sama dengan password salah (jangan bocorkan user ada/tidak)
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := CheckPasswordHash(user.UserPassword, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	access, err := IssueTokens(db, c, user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", authDTO.LoginResponse{
		AccessToken: access,
		User:        toUserResponse(user),
	})
}

// ========================== LOGOUT ==========================
// Logout mem-blacklist access token, mencabut refresh token,
// dan MENGOSONGKAN cart customer (aturan bisnis toko).
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rawToken, _ := c.Locals("raw_token").(string)
	if rawToken != "" {
		expiredAt := tokenExpiry(rawToken)
		if err := db.Create(&authModel.TokenBlacklist{
			Token:     rawToken,
			ExpiredAt: expiredAt,
		}).Error; err != nil {
			// token sudah pernah di-blacklist → tetap lanjut
			if fe, ok := helper.TranslateDBError(err).(*fiber.Error); !ok || fe.Code != fiber.StatusConflict {
				return helper.FromFiberError(c, helper.TranslateDBError(err))
			}
		}
	}

	if err := RevokeRefreshTokens(db, userID); err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}

	// cart dikosongkan saat logout
	if err := db.Exec("DELETE FROM shopping_cart WHERE cart_user_id = ?", userID).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}

	c.ClearCookie("refresh_token")
	return helper.JsonOK(c, "Logged out and cart cleared", nil)
}

// ========================== UPDATE PROFILE ==========================
func UpdateProfile(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req authDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	userUpdates := map[string]interface{}{}
	if req.FirstName != nil {
		userUpdates["user_first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		userUpdates["user_last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		userUpdates["user_email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil {
		hashed, err := HashPassword(*req.Password)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		userUpdates["user_password"] = hashed
	}

	profileUpdates := map[string]interface{}{}
	if req.Phone != nil {
		profileUpdates["customer_profile_phone"] = *req.Phone
	}
	if req.Address != nil {
		profileUpdates["customer_profile_shipping_address"] = *req.Address
	}

	if len(userUpdates) == 0 && len(profileUpdates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if len(userUpdates) > 0 {
			userUpdates["user_updated_at"] = time.Now().UTC()
			res := tx.Model(&authModel.UserModel{}).
				Where("user_id = ?", userID).
				Updates(userUpdates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fiber.NewError(fiber.StatusNotFound, "User not found")
			}
		}
		if len(profileUpdates) > 0 {
			if err := tx.Model(&authModel.CustomerProfileModel{}).
				Where("customer_profile_user_id = ?", userID).
				Updates(profileUpdates).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}

	return helper.JsonUpdated(c, "Profile updated successfully", nil)
}

/* =========================
   Util kecil
   ========================= */

func toUserResponse(u authModel.UserModel) authDTO.UserResponse {
	return authDTO.UserResponse{
		UserID:    u.UserID.String(),
		UserName:  u.UserName,
		FirstName: u.UserFirstName,
		LastName:  u.UserLastName,
		Email:     u.UserEmail,
		Role:      u.UserRole,
	}
}

// tokenExpiry baca exp dari token tanpa verifikasi (untuk TTL blacklist saja).
func tokenExpiry(raw string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(raw, claims); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			return time.Unix(int64(expFloat), 0)
		}
	}
	return time.Now().Add(24 * time.Hour)
}
