package contact

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/binaamart/storefront/internal/models"
)

// Mailer forwards contact messages to the sales inbox over SMTP. A zero
// Mailer (no server configured) forwards nothing.
type Mailer struct {
	Server   string
	Port     string
	User     string
	Password string
	From     string
	To       string
}

func (m Mailer) Enabled() bool {
	return m.Server != "" && m.From != "" && m.To != ""
}

// Send forwards one message. Plain connection when no credentials are set,
// otherwise PLAIN auth against the configured server.
func (m Mailer) Send(msg models.ContactMessage) error {
	if !m.Enabled() {
		return nil
	}

	subject := fmt.Sprintf("Contact form: %s", msg.Subject)
	body := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s",
		msg.Name, msg.Email, msg.Phone, msg.Body)
	mail := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.From, m.To, subject, body)

	addr := m.Server + ":" + m.Port
	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Password, m.Server)
	}

	to := strings.Split(m.To, ",")
	if err := smtp.SendMail(addr, auth, m.From, to, []byte(mail)); err != nil {
		return fmt.Errorf("failed to send contact mail: %w", err)
	}
	return nil
}
