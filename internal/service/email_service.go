package service

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/irku/blog-backend/internal/domain"
)

type emailService struct {
	dialer  *gomail.Dialer
	from    string
	to      string
	appName string
}

// NewEmailService creates an EmailSender that delivers contact submissions
// over SMTP to the configured site-owner address.
func NewEmailService(host string, port int, username, password, from, to, appName string) domain.EmailSender {
	return &emailService{
		dialer:  gomail.NewDialer(host, port, username, password),
		from:    from,
		to:      to,
		appName: appName,
	}
}

// SendContactEmail dispatches a single contact submission. Reply-To is set
// to the visitor's address so the owner can answer directly.
func (s *emailService) SendContactEmail(msg *domain.ContactMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", "[Contact] "+msg.Subject)
	m.SetBody("text/plain", buildContactBody(s.appName, msg))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}

func buildContactBody(appName string, msg *domain.ContactMessage) string {
	newsletter := "No"
	if msg.Newsletter {
		newsletter = "Yes"
	}
	return fmt.Sprintf(
		"You received a new contact form submission from %s\n\n"+
			"Name: %s %s\n"+
			"Email: %s\n"+
			"Subject: %s\n"+
			"Subscribed to newsletter: %s\n\n"+
			"Message:\n%s\n",
		appName, msg.FirstName, msg.LastName, msg.Email, msg.Subject, newsletter, msg.Message,
	)
}
