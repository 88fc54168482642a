package email

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"github.com/beamx-labs/validator-engine/internal/config"
)

// Mailer sends result emails over SMTP. When no SMTP host is
// configured every send becomes a logged no-op so the rest of the
// flow keeps working in development.
type Mailer struct {
	cfg config.EmailConfig
}

// NewMailer creates a mailer from SMTP configuration.
func NewMailer(cfg config.EmailConfig) *Mailer {
	if !cfg.Enabled() {
		slog.Warn("Email service not configured - emails will be skipped")
	}
	return &Mailer{cfg: cfg}
}

// Enabled reports whether emails will actually be delivered.
func (m *Mailer) Enabled() bool {
	return m.cfg.Enabled()
}

// Send delivers an HTML email, optionally with a PDF attachment.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string, attachment []byte, attachmentName string) error {
	if !m.cfg.Enabled() {
		slog.Info("Skipping email, service not configured",
			"to", to,
			"subject", subject)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if len(attachment) > 0 {
		if attachmentName == "" {
			attachmentName = "report.pdf"
		}
		msg.AttachReader(attachmentName, bytes.NewReader(attachment))
	}

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password))
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.Info("Email sent", "to", to, "subject", subject)
	return nil
}
