package mailer

import (
	"bytes"
	"fmt"
	"html"
	"log"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var messagePolicy = bluemonday.UGCPolicy()

// renderMessageHTML turns the free-text submitter message into HTML safe
// to embed in an email body. Markdown is rendered and the result is
// sanitized; a render failure falls back to the escaped raw text.
func renderMessageHTML(message string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(message), &buf); err != nil {
		log.Printf("mailer: markdown render failed: %v", err)
		return html.EscapeString(message)
	}
	return messagePolicy.Sanitize(buf.String())
}

// Notification builds the operator-facing email for a new submission.
func Notification(operatorEmail string, sub Submission) Message {
	body := fmt.Sprintf(`
        <h2>New Contact Form Message</h2>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <p><strong>Company Name:</strong> %s</p>
        <p><strong>Company Website:</strong> %s</p>
        <p><strong>Message:</strong></p>
        %s`,
		html.EscapeString(sub.Name),
		html.EscapeString(sub.Email),
		html.EscapeString(sub.Phone),
		html.EscapeString(orNA(sub.CompanyName)),
		html.EscapeString(orNA(sub.CompanyWebsite)),
		renderMessageHTML(sub.Message),
	)

	return Message{
		ToEmail: operatorEmail,
		Subject: fmt.Sprintf("New Contact Form Submission - %s", sub.Name),
		HTML:    body,
	}
}

// Acknowledgment builds the auto-reply sent back to the submitter.
func Acknowledgment(senderName string, sub Submission) Message {
	body := fmt.Sprintf(`
        <h3>Hello %s,</h3>
        <p>Thank you for reaching out!</p>
        <p>I&rsquo;ve received your message and will get back to you shortly.</p>
        <br/>
        <p>Best Regards,</p>
        <strong>%s</strong>`,
		html.EscapeString(sub.Name),
		html.EscapeString(senderName),
	)

	return Message{
		ToEmail: sub.Email,
		ToName:  sub.Name,
		Subject: "Thank you for contacting me!",
		HTML:    body,
	}
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
