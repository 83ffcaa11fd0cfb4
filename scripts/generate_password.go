package main

import (
	"fmt"
	"log"
	"os"

	"github.com/romawatches/storefront/internal/config"
	"github.com/romawatches/storefront/internal/pkg/auth"
)

// Prints a bcrypt hash for seeding or resetting an account password by hand
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/generate_password.go <password>")
	}

	password := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	passwords := auth.NewPasswordManager(cfg)

	hash, err := passwords.HashPassword(password)
	if err != nil {
		log.Fatal("Error generating hash:", err)
	}

	fmt.Printf("Password: %s\n", password)
	fmt.Printf("Hash: %s\n", hash)
	fmt.Printf("Cost: %d\n", cfg.Security.BcryptCost)

	if err := passwords.VerifyPassword(password, hash); err != nil {
		log.Fatal("Hash verification failed:", err)
	}

	fmt.Println("✅ Hash verified successfully!")
}
