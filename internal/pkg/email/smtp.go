// internal/pkg/email/smtp.go
package email

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
	"time"
)

// sendSMTPEmail sends email using SMTP
func (s *EmailService) sendSMTPEmail(email *Email) error {
	cfg := s.config.Email
	if cfg.SMTPHost == "" {
		return fmt.Errorf("SMTP configuration incomplete: missing host")
	}

	from := cfg.FromEmail
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", cfg.FromName), cfg.FromEmail)
	}

	headers := [][2]string{
		{"From", from},
		{"To", strings.Join(email.To, ", ")},
		{"Subject", mime.QEncoding.Encode("utf-8", email.Subject)},
		{"Date", time.Now().Format(time.RFC1123Z)},
		{"MIME-Version", "1.0"},
		{"Content-Type", `text/html; charset="utf-8"`},
	}
	if cfg.ReplyTo != "" {
		headers = append(headers, [2]string{"Reply-To", cfg.ReplyTo})
	}

	var msg bytes.Buffer
	for _, h := range headers {
		fmt.Fprintf(&msg, "%s: %s\r\n", h[0], h[1])
	}
	msg.WriteString("\r\n")
	msg.WriteString(email.HTMLContent)

	serverAddr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)

	if cfg.SMTPUseTLS {
		return s.sendSMTPWithTLS(serverAddr, s.smtpAuth(), cfg.FromEmail, email.To, msg.Bytes())
	}
	if err := smtp.SendMail(serverAddr, s.smtpAuth(), cfg.FromEmail, email.To, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *EmailService) smtpAuth() smtp.Auth {
	cfg := s.config.Email
	if cfg.SMTPUsername == "" {
		return nil
	}
	return smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
}

// sendSMTPWithTLS sends email over an implicit TLS connection (port 465)
func (s *EmailService) sendSMTPWithTLS(serverAddr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	client, err := s.dialTLS(serverAddr)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", addr, err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to send DATA command: %w", err)
	}
	if _, err := writer.Write(msg); err != nil {
		return fmt.Errorf("failed to write email content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish email content: %w", err)
	}

	return client.Quit()
}

func (s *EmailService) dialTLS(serverAddr string) (*smtp.Client, error) {
	conn, err := tls.Dial("tcp", serverAddr, &tls.Config{ServerName: s.config.Email.SMTPHost})
	if err != nil {
		return nil, fmt.Errorf("failed to create TLS connection: %w", err)
	}

	client, err := smtp.NewClient(conn, s.config.Email.SMTPHost)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return client, nil
}

// TestSMTPConnection connects and authenticates without sending anything
func (s *EmailService) TestSMTPConnection() error {
	cfg := s.config.Email
	serverAddr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)

	var (
		client *smtp.Client
		err    error
	)
	if cfg.SMTPUseTLS {
		client, err = s.dialTLS(serverAddr)
	} else {
		client, err = smtp.Dial(serverAddr)
		if err == nil {
			if ok, _ := client.Extension("STARTTLS"); ok {
				err = client.StartTLS(&tls.Config{ServerName: cfg.SMTPHost})
			}
		}
	}
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server %s: %w", serverAddr, err)
	}
	defer client.Close()

	if auth := s.smtpAuth(); auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	return client.Quit()
}
