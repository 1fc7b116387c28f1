package constants

import "fmt"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess    = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyCustomersCanAccess = "❌ Hanya customer yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorCustomer(feature string) string {
	return fmt.Sprintf(ErrOnlyCustomersCanAccess, feature)
}

var AllRoles = []string{
	RoleCustomer,
	RoleAdmin,
}
