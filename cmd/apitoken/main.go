// Command apitoken issues a bearer token for the /api routes, for a
// checkout front-end or a back-office tool.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"paygate/internal/config"
	"paygate/internal/models"
	"paygate/internal/utils"
)

func main() {
	config.LoadEnv()

	userID := flag.Uint("user", 1, "user id stored in the token")
	email := flag.String("email", "", "email stored in the token")
	role := flag.String("role", "checkout", "role: admin, checkout or support")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	permissions := models.GetDefaultPermissions(*role)
	if len(permissions) == 0 {
		log.Fatalf("Role %q grants no permission", *role)
	}

	token, err := utils.GenerateToken(&models.UserClaims{
		UserID:      *userID,
		Email:       *email,
		Role:        *role,
		Permissions: permissions,
	}, config.GetEnv("JWT_SECRET", ""), *ttl)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Println(token)
}
