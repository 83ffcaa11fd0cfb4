// internal/domain/checkout/payment.go
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/romawatches/storefront/internal/config"
	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/shopspring/decimal"
)

// PaymentInstructions tells the customer how to pay a bank transfer order
type PaymentInstructions struct {
	QRCodeURL     string          `json:"qrCodeUrl"`
	AccountNumber string          `json:"accountNumber"`
	AccountHolder string          `json:"accountHolder"`
	BankCode      string          `json:"bankCode"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}

// NewPaymentInstructions builds the transfer details for o from the bank configuration
func NewPaymentInstructions(cfg config.CheckoutConfig, o *order.Order) *PaymentInstructions {
	description := strings.TrimSpace(cfg.TransferDescription + " " + o.Reference())
	accountNumber := cfg.BankAccountDisplay
	if accountNumber == "" {
		accountNumber = cfg.BankAccountNumber
	}

	return &PaymentInstructions{
		QRCodeURL:     QRCodeURL(cfg.QRBaseURL, cfg.BankAccountNumber, cfg.BankCode, o.TotalAmount, description),
		AccountNumber: accountNumber,
		AccountHolder: cfg.BankAccountHolder,
		BankCode:      cfg.BankCode,
		Amount:        o.TotalAmount,
		Description:   description,
	}
}

// QRCodeURL returns the VietQR image URL for a transfer. The amount is rounded to whole dong.
func QRCodeURL(baseURL, account, bank string, amount decimal.Decimal, description string) string {
	return fmt.Sprintf("%s?acc=%s&bank=%s&amount=%s&des=%s",
		baseURL,
		escape(account),
		escape(bank),
		amount.StringFixed(0),
		escape(description),
	)
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// SuccessMessage returns the confirmation text shown after placing an order
func SuccessMessage(method order.PaymentMethod) string {
	switch method {
	case order.PaymentMethodBankTransfer:
		return "Order created. Please complete the bank transfer and confirm your payment."
	case order.PaymentMethodInStore:
		return "Order placed successfully. Please pay when you collect it in store."
	default:
		return "Order placed successfully. Please pay the courier on delivery."
	}
}
