package email

import (
	"context"

	"github.com/docsense/docsense/internal/config"
	ierr "github.com/docsense/docsense/internal/errors"
	"github.com/resend/resend-go/v2"
)

// Client wraps the resend API client. When email is disabled (local
// development, tests) the client is constructed without an API key and every
// send is skipped upstream via IsEnabled.
type Client struct {
	resend      *resend.Client
	enabled     bool
	fromAddress string
}

// NewClient creates a new email client from configuration.
func NewClient(cfg config.EmailConfig) *Client {
	c := &Client{
		enabled:     cfg.Enabled && cfg.APIKey != "",
		fromAddress: cfg.FromAddress,
	}
	if c.enabled {
		c.resend = resend.NewClient(cfg.APIKey)
	}
	return c
}

// IsEnabled reports whether the client can actually send email.
func (c *Client) IsEnabled() bool {
	return c.enabled
}

// GetFromAddress returns the configured sender address.
func (c *Client) GetFromAddress() string {
	return c.fromAddress
}

// SendEmail sends a single email and returns the provider message ID.
func (c *Client) SendEmail(ctx context.Context, from, to, subject, html, text string) (string, error) {
	if !c.enabled {
		return "", ierr.NewError("email client is disabled").
			WithHint("Email sending is not configured").
			Mark(ierr.ErrInvalidOperation)
	}

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	}

	sent, err := c.resend.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", ierr.WithError(err).
			WithMessage("resend send failed").
			WithHint("Failed to send email").
			Mark(ierr.ErrSystem)
	}
	return sent.Id, nil
}
