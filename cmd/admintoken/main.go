// Command admintoken mints a signed admin bearer token for gallery
// moderation endpoints. Run it on the host that holds ADMIN_JWT_SECRET.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/rajendra-kc/scamlens/internal/config"
	"github.com/rajendra-kc/scamlens/internal/pkg/token"
)

func main() {
	cfg := config.Load()

	ttl := time.Duration(cfg.AdminTokenHours) * time.Hour

	signed, err := token.GenerateAdminToken(cfg.AdminJWTSecret, ttl)
	if err != nil {
		log.Fatal("Failed to generate token:", err)
	}

	fmt.Println(signed)
}
