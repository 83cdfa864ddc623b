package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Brevo sends transactional email through the Brevo (ex Sendinblue) API.
type Brevo struct {
	APIKey      string
	SenderEmail string
	SenderName  string
	BaseURL     string
	httpDo      *http.Client
}

// NewBrevo builds a Brevo client sending from the given address.
func NewBrevo(apiKey, senderEmail, senderName string) *Brevo {
	return &Brevo{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
		BaseURL:     "https://api.brevo.com/v3",
		httpDo: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type brevoParty struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoSendRequest struct {
	Sender      brevoParty   `json:"sender"`
	To          []brevoParty `json:"to"`
	Subject     string       `json:"subject"`
	HTMLContent string       `json:"htmlContent"`
}

// Send delivers one message. Non-2xx provider responses surface as errors
// with the provider payload attached.
func (b *Brevo) Send(ctx context.Context, msg Message) error {
	if b.APIKey == "" {
		return errors.New("brevo api key is empty")
	}

	reqBody := brevoSendRequest{
		Sender:      brevoParty{Email: b.SenderEmail, Name: b.SenderName},
		To:          []brevoParty{{Email: msg.ToEmail, Name: msg.ToName}},
		Subject:     msg.Subject,
		HTMLContent: msg.HTML,
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/smtp/email", b.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", b.APIKey)

	resp, err := b.httpDo.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]interface{}
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return fmt.Errorf("brevo http %d: %v", resp.StatusCode, errMap)
	}

	return nil
}
