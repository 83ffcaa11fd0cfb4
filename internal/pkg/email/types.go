// internal/pkg/email/types.go
package email

import (
	"time"
)

// EmailType represents the type of email being sent
type EmailType string

const (
	EmailTypeOrderConfirmation EmailType = "order_confirmation"
	EmailTypeOrderStatusUpdate EmailType = "order_status_update"
	EmailTypeTest              EmailType = "test"
)

// Email represents an email message
type Email struct {
	To          []string  `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"html_content"`
	Type        EmailType `json:"type"`
}

// EmailTemplateData contains common data for all email templates
type EmailTemplateData struct {
	SiteName  string
	SiteURL   string
	UserName  string
	UserEmail string
	Year      int
}

// OrderConfirmationData contains data for order confirmation email
type OrderConfirmationData struct {
	EmailTemplateData
	OrderNumber   string
	OrderDate     string
	OrderURL      string
	StatusLabel   string
	PaymentMethod string
	Items         []OrderItem
	Subtotal      string
	ShippingFee   string
	OrderTotal    string
	Shipping      Address
	Transfer      *TransferDetails
}

// OrderItem represents an item in the order
type OrderItem struct {
	Name     string
	Brand    string
	Quantity int
	Price    string
	Total    string
}

// Address is where the order is delivered
type Address struct {
	FullName string
	Phone    string
	Address  string
	Ward     string
	Province string
}

// TransferDetails are the bank transfer instructions of an unpaid order
type TransferDetails struct {
	QRCodeURL     string
	AccountNumber string
	AccountHolder string
	BankCode      string
	Amount        string
	Description   string
}

// OrderStatusUpdateData contains data for order status updates
type OrderStatusUpdateData struct {
	EmailTemplateData
	OrderNumber    string
	PreviousStatus string
	Status         string
	StatusMessage  string
	OrderURL       string
}

// GetBaseTemplateData returns common template data
func GetBaseTemplateData(siteName, siteURL, userName, userEmail string) EmailTemplateData {
	return EmailTemplateData{
		SiteName:  siteName,
		SiteURL:   siteURL,
		UserName:  userName,
		UserEmail: userEmail,
		Year:      time.Now().Year(),
	}
}
