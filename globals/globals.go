package globals

import (
	"context"
	"os"

	"github.com/joho/godotenv"
)

var (
	JwtSecret []byte

	// RazorpaySecret signs gateway callbacks; must match the dashboard key secret.
	RazorpaySecret []byte
)

func init() {
	// Load .env before reading secrets; main loads it again for its own keys,
	// which is harmless.
	_ = godotenv.Load()

	JwtSecret = []byte(getenv("JWT_SECRET", "change_me"))
	RazorpaySecret = []byte(os.Getenv("RAZORPAY_KEY_SECRET"))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"

var Ctx = context.Background()
