// Package mail sends transactional email through the Resend API.
package mail

import (
	"context"
	"fmt"
	"html"

	"github.com/resend/resend-go/v2"
)

// Config holds the mail API credentials and sender address.
type Config struct {
	APIKey string
	From   string
}

type Mailer struct {
	client *resend.Client
	from   string
}

func New(cfg Config) *Mailer {
	return &Mailer{
		client: resend.NewClient(cfg.APIKey),
		from:   cfg.From,
	}
}

// SendWelcome mails a registration confirmation. Callers treat failures as
// non-fatal; registration has already committed by the time this runs.
func (m *Mailer) SendWelcome(_ context.Context, email, name string) error {
	safeName := html.EscapeString(name)

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email},
		Subject: "Welcome to Roomly",
		Html: fmt.Sprintf(
			`<h1>Hi %s,</h1><p>Your account is ready. Browse the catalog, build moodboards, and save your favourites.</p>`,
			safeName,
		),
	}

	_, err := m.client.Emails.Send(params)
	return err
}
