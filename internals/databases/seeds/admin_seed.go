// file: internals/databases/seeds/admin_seed.go
package seeds

import (
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"bookstore_backend/internals/constants"
	authModel "bookstore_backend/internals/features/users/auth/model"
	authService "bookstore_backend/internals/features/users/auth/service"
)

// EnsureAdminUser membuat (atau mereset password) satu akun admin toko
// dari env. Hanya jalan kalau SEED_ADMIN=true; dipanggil saat startup.
func EnsureAdminUser(db *gorm.DB) {
	if os.Getenv("SEED_ADMIN") != "true" {
		return
	}

	username := os.Getenv("ADMIN_USERNAME")
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || email == "" || password == "" {
		log.Println("⚠️ SEED_ADMIN=true tapi ADMIN_USERNAME/ADMIN_EMAIL/ADMIN_PASSWORD belum lengkap, skip")
		return
	}

	hashed, err := authService.HashPassword(password)
	if err != nil {
		log.Printf("❌ Gagal hash password admin: %v", err)
		return
	}

	var existing authModel.UserModel
	err = db.Where("user_name = ? OR user_email = ?", username, email).First(&existing).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"user_password": hashed,
			"user_role":     constants.RoleAdmin,
			"user_is_active": true,
		}
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			log.Printf("❌ Gagal reset admin %s: %v", username, err)
			return
		}
		log.Printf("✅ Admin %s di-reset", username)
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin := authModel.UserModel{
			UserName:      username,
			UserEmail:     email,
			UserPassword:  hashed,
			UserFirstName: "Store",
			UserLastName:  "Admin",
			UserRole:      constants.RoleAdmin,
			UserIsActive:  true,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("❌ Gagal membuat admin %s: %v", username, err)
			return
		}
		log.Printf("✅ Admin %s dibuat", username)
	default:
		log.Printf("❌ Gagal cek admin: %v", err)
	}
}
