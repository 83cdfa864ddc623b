// Package mailer sends the transactional email around contact form
// submissions: an operator notification and a submitter acknowledgment.
package mailer

import "context"

// Message is one outbound transactional email.
type Message struct {
	ToEmail string
	ToName  string
	Subject string
	HTML    string
}

// Mailer delivers messages through the email provider.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Submission carries the contact form fields the email bodies render.
type Submission struct {
	Name           string
	Email          string
	Phone          string
	Message        string
	CompanyName    string
	CompanyWebsite string
}
