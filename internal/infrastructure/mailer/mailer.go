package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/stockplus/stockplus-server/internal/config"
)

// SMTPMailer delivers transactional mail over SMTP.
type SMTPMailer struct {
	dialer    *gomail.Dialer
	from      string
	clientURL string
	logger    *zap.Logger
}

// NewSMTPMailer creates a new SMTP mailer instance
func NewSMTPMailer(cfg *config.SMTPConfig, clientURL string, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:      cfg.From,
		clientURL: clientURL,
		logger:    logger,
	}
}

// SendInvitation mails a collaborator invitation with its validation link.
func (m *SMTPMailer) SendInvitation(email, posName, token string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.from, "StockPlus"))
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", fmt.Sprintf("You have been invited to join %s", posName))
	msg.SetBody("text/html", m.invitationHTML(posName, token))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send invitation email: %w", err)
	}

	m.logger.Info("Invitation email sent", zap.String("to", email))
	return nil
}

// invitationHTML renders the invitation body with inline styles for client
// compatibility.
func (m *SMTPMailer) invitationHTML(posName, token string) string {
	link := fmt.Sprintf("%s/invitations/validate?token=%s", m.clientURL, token)
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; color: #333333; margin: 0; padding: 24px;">
  <h2 style="color: #1a73e8;">Join %s on StockPlus</h2>
  <p>You have been invited to collaborate on the point of sale <strong>%s</strong>.</p>
  <p>
    <a href="%s" style="display: inline-block; padding: 12px 24px; background-color: #1a73e8; color: #ffffff; text-decoration: none; border-radius: 4px;">
      Accept invitation
    </a>
  </p>
  <p style="font-size: 12px; color: #888888;">If the button does not work, copy this link into your browser:<br>%s</p>
</body>
</html>`, posName, posName, link, link)
}
