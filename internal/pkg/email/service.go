// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/romawatches/storefront/internal/config"
	"github.com/sirupsen/logrus"
)

// EmailService renders and sends customer emails
type EmailService struct {
	config    *config.Config
	templates *template.Template
	logger    *logrus.Logger

	// transport replaces the configured provider when set
	transport func(email *Email) error
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config, logger *logrus.Logger) *EmailService {
	return &EmailService{
		config:    cfg,
		templates: emailTemplates,
		logger:    logger,
	}
}

// Enabled reports whether an email provider is configured
func (s *EmailService) Enabled() bool {
	return s.transport != nil || s.config.Email.Provider != ""
}

// SendEmail sends an email using the configured provider
func (s *EmailService) SendEmail(ctx context.Context, email *Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(email.To) == 0 {
		return fmt.Errorf("email %q has no recipients", email.Subject)
	}

	if s.transport != nil {
		return s.transport(email)
	}

	switch s.config.Email.Provider {
	case "smtp":
		return s.sendSMTPEmail(email)
	case "log":
		s.logger.WithFields(logrus.Fields{
			"to":      strings.Join(email.To, ", "),
			"subject": email.Subject,
			"type":    email.Type,
		}).Info("Email not sent, log provider configured")
		return nil
	default:
		return fmt.Errorf("unsupported email provider: %q", s.config.Email.Provider)
	}
}

// SendOrderConfirmationEmail sends order confirmation email
func (s *EmailService) SendOrderConfirmationEmail(ctx context.Context, data OrderConfirmationData) error {
	data.EmailTemplateData = s.baseData(data.UserName, data.UserEmail)

	htmlContent, err := s.renderTemplate("order_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render order confirmation template: %w", err)
	}

	return s.SendEmail(ctx, &Email{
		To:          []string{data.UserEmail},
		Subject:     fmt.Sprintf("Order Confirmation - %s", data.OrderNumber),
		HTMLContent: htmlContent,
		Type:        EmailTypeOrderConfirmation,
	})
}

// SendOrderStatusUpdateEmail sends order status update notification
func (s *EmailService) SendOrderStatusUpdateEmail(ctx context.Context, data OrderStatusUpdateData) error {
	data.EmailTemplateData = s.baseData(data.UserName, data.UserEmail)

	htmlContent, err := s.renderTemplate("order_status_update", data)
	if err != nil {
		return fmt.Errorf("failed to render order status update template: %w", err)
	}

	return s.SendEmail(ctx, &Email{
		To:          []string{data.UserEmail},
		Subject:     fmt.Sprintf("Order Update - %s", data.OrderNumber),
		HTMLContent: htmlContent,
		Type:        EmailTypeOrderStatusUpdate,
	})
}

func (s *EmailService) baseData(userName, userEmail string) EmailTemplateData {
	return GetBaseTemplateData(s.config.Email.FromName, s.config.Email.BaseURL, userName, userEmail)
}

// renderTemplate renders an email template with data
func (s *EmailService) renderTemplate(templateName string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return buf.String(), nil
}

var emailTemplates = template.Must(template.New("email").Parse(layoutHTML + orderConfirmationHTML + orderStatusUpdateHTML))

const layoutHTML = `
{{define "header"}}<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.SiteName}}</title>
</head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f4f4f4;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 20px; border-radius: 8px;">
        <h1 style="color: #333;">{{.SiteName}}</h1>
        <p>Xin chào {{.UserName}},</p>
{{end}}
{{define "footer"}}
        <p>Trân trọng,<br>{{.SiteName}}</p>
        <hr>
        <p style="font-size: 12px; color: #666;">&copy; {{.Year}} {{.SiteName}} &middot; <a href="{{.SiteURL}}">{{.SiteURL}}</a></p>
    </div>
</body>
</html>{{end}}
`

const orderConfirmationHTML = `
{{define "order_confirmation"}}{{template "header" .EmailTemplateData}}
        <p>Cảm ơn bạn đã đặt hàng. Đơn hàng <strong>{{.OrderNumber}}</strong> ngày {{.OrderDate}} đã được ghi nhận.</p>
        <p><strong>Trạng thái:</strong> {{.StatusLabel}}<br><strong>Thanh toán:</strong> {{.PaymentMethod}}</p>
        <table style="width: 100%; border-collapse: collapse;">
            <tr><th align="left">Sản phẩm</th><th>SL</th><th align="right">Đơn giá</th><th align="right">Thành tiền</th></tr>
            {{range .Items}}<tr><td>{{.Brand}} {{.Name}}</td><td align="center">{{.Quantity}}</td><td align="right">{{.Price}}</td><td align="right">{{.Total}}</td></tr>
            {{end}}
        </table>
        <p>Tạm tính: {{.Subtotal}}<br>Phí vận chuyển: {{.ShippingFee}}<br><strong>Tổng cộng: {{.OrderTotal}}</strong></p>
        <p><strong>Giao tới:</strong> {{.Shipping.FullName}}, {{.Shipping.Phone}}<br>{{.Shipping.Address}}, {{.Shipping.Ward}}, {{.Shipping.Province}}</p>
        {{with .Transfer}}
        <h3>Thông tin chuyển khoản</h3>
        <p>Ngân hàng: {{.BankCode}}<br>Số tài khoản: {{.AccountNumber}}<br>Chủ tài khoản: {{.AccountHolder}}<br>Số tiền: {{.Amount}}<br>Nội dung: {{.Description}}</p>
        <p><img src="{{.QRCodeURL}}" alt="QR" width="240"></p>
        {{end}}
        <p><a href="{{.OrderURL}}">Xem đơn hàng</a></p>
{{template "footer" .EmailTemplateData}}{{end}}
`

const orderStatusUpdateHTML = `
{{define "order_status_update"}}{{template "header" .EmailTemplateData}}
        <p>Đơn hàng <strong>{{.OrderNumber}}</strong> đã chuyển từ "{{.PreviousStatus}}" sang "<strong>{{.Status}}</strong>".</p>
        <p>{{.StatusMessage}}</p>
        <p><a href="{{.OrderURL}}">Xem đơn hàng</a></p>
{{template "footer" .EmailTemplateData}}{{end}}
`
