package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	PermissionPaymentWrite    = "payment:write"
	PermissionTransactionRead = "transaction:read"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID      uint     `json:"user_id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case "admin", "checkout":
		return []string{PermissionPaymentWrite, PermissionTransactionRead}
	case "support":
		return []string{PermissionTransactionRead}
	default:
		return []string{}
	}
}
