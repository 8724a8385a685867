package services

import (
	"fmt"
	"log"

	"acta_flow_app_go/config"

	"github.com/resend/resend-go/v2"
)

// Email represents a transactional email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// SendEmail sends an email through Resend. In test mode the message is
// logged instead of sent so development never emails real addresses.
func SendEmail(cfg *config.Config, email *Email) error {
	if cfg.EmailTestMode {
		log.Printf("[EMAIL TEST MODE] To: %v | Subject: %s", email.To, email.Subject)
		log.Printf("[EMAIL TEST MODE] Body: %s", email.TextBody)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("email not configured: missing Resend API key")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if _, err := client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// BuildDocumentReadyEmail builds the notification sent when a generated
// document is ready for download
func BuildDocumentReadyEmail(toEmail, documentName, downloadURL string) *Email {
	text := fmt.Sprintf(
		"Su documento \"%s\" ha sido generado y está listo para descargar.\n\nDescargar: %s\n\nEl enlace expira en 24 horas.",
		documentName, downloadURL,
	)
	html := fmt.Sprintf(
		`<p>Su documento <strong>%s</strong> ha sido generado y está listo para descargar.</p><p><a href="%s">Descargar documento</a></p><p>El enlace expira en 24 horas.</p>`,
		documentName, downloadURL,
	)

	return &Email{
		To:       []string{toEmail},
		Subject:  fmt.Sprintf("Documento listo: %s", documentName),
		HTMLBody: html,
		TextBody: text,
	}
}

// BuildWelcomeEmail builds the email sent to a new tenant owner
func BuildWelcomeEmail(toEmail, tenantName, appURL string) *Email {
	text := fmt.Sprintf(
		"Bienvenido a la plataforma.\n\nSu oficina \"%s\" ha sido creada. Acceda en %s para comenzar a generar actos legales.",
		tenantName, appURL,
	)
	html := fmt.Sprintf(
		`<p>Bienvenido a la plataforma.</p><p>Su oficina <strong>%s</strong> ha sido creada. <a href="%s">Acceda aquí</a> para comenzar a generar actos legales.</p>`,
		tenantName, appURL,
	)

	return &Email{
		To:       []string{toEmail},
		Subject:  fmt.Sprintf("Bienvenido: %s", tenantName),
		HTMLBody: html,
		TextBody: text,
	}
}
