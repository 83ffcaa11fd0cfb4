// cmd/mailtest/main.go
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/romawatches/storefront/internal/config"
	"github.com/romawatches/storefront/internal/pkg/email"
	"github.com/romawatches/storefront/internal/pkg/logger"
)

// Sends one test email through the configured provider
func main() {
	to := flag.String("to", "", "recipient address")
	flag.Parse()

	if *to == "" {
		log.Fatal("Usage: go run ./cmd/mailtest -to <address>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	emailService := email.NewEmailService(cfg, logger.New(cfg))
	if !emailService.Enabled() {
		log.Fatal("EMAIL_PROVIDER is not set")
	}

	if cfg.Email.Provider == "smtp" {
		if err := emailService.TestSMTPConnection(); err != nil {
			log.Fatalf("SMTP failed: %v", err)
		}
		log.Println("✅ SMTP connection OK")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	testEmail := &email.Email{
		To:          []string{*to},
		Subject:     "Test email from " + cfg.App.Name,
		HTMLContent: "<h1>Success!</h1><p>Order emails are configured correctly.</p>",
		Type:        email.EmailTypeTest,
	}

	if err := emailService.SendEmail(ctx, testEmail); err != nil {
		log.Fatalf("Send failed: %v", err)
	}

	log.Println("✅ Email sent successfully!")
}
