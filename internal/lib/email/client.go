// Package email sends internal notification emails.
//
// It uses Resend (resend-go) as the provider and renders HTML bodies from
// templates embedded in the binary, so deployments never depend on a
// templates directory being present on disk.
package email

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/gracelogistics/backend/internal/config"
)

// Client wraps the Resend client and the notification addressing config.
type Client struct {
	client *resend.Client
	cfg    *config.EmailConfig
	logger *zerolog.Logger
}

// NewClient creates an email Client. Callers must only construct one when
// email is configured (config.EmailConfig.Enabled).
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return &Client{
		client: resend.NewClient(cfg.Email.ResendAPIKey),
		cfg:    cfg.Email,
		logger: logger,
	}
}

// from builds the sender identity, falling back to Resend's shared
// onboarding address when no verified sender is configured.
func (c *Client) from() string {
	if c.cfg.From != "" {
		return c.cfg.From
	}
	return fmt.Sprintf("%s <%s>", "Grace Logistics", "onboarding@resend.dev")
}

// send renders the named embedded template with data and sends it to the
// configured notification inbox.
func (c *Client) send(ctx context.Context, subject string, templateName Template, data map[string]string) error {
	tmpl := templates.Lookup(string(templateName) + ".html")
	if tmpl == nil {
		return errors.Errorf("unknown email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return errors.Wrapf(err, "failed to execute email template %s", templateName)
	}

	params := &resend.SendEmailRequest{
		From:    c.from(),
		To:      []string{c.cfg.NotifyTo},
		Subject: subject,
		Html:    body.String(),
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
