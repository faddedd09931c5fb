package domain

// ContactMessage is a contact form submission. It is handed to the mail
// dispatcher once and never persisted.
type ContactMessage struct {
	FirstName  string
	LastName   string
	Email      string
	Subject    string
	Message    string
	Newsletter bool
}

// EmailSender dispatches contact submissions to the site owner.
type EmailSender interface {
	SendContactEmail(msg *ContactMessage) error
}
