// Package mailer sends transactional email through the Mailjet v3.1 send API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultEndpoint is the Mailjet v3.1 send endpoint.
const DefaultEndpoint = "https://api.mailjet.com/v3.1/send"

// DefaultTimeout bounds the outbound send call. Email is best-effort and must
// never block the state change it announces for long.
const DefaultTimeout = 10 * time.Second

// Config holds Mailjet API credentials and sender identity.
type Config struct {
	APIKey    string
	APISecret string
	FromEmail string
	FromName  string
	Endpoint  string        // defaults to DefaultEndpoint
	Timeout   time.Duration // defaults to DefaultTimeout
}

// Result reports the outcome of a single send attempt. Err is a diagnostic
// string suitable for logging and a soft user-facing warning.
type Result struct {
	Sent bool
	Err  string
}

// StatusUpdate carries everything needed to build a status-change email.
type StatusUpdate struct {
	RecipientEmail string
	RecipientName  string
	JobTitle       string
	CompanyName    string
	NewStatus      string
}

// Mailer defines the interface for notification sending
type Mailer interface {
	SendStatusUpdate(ctx context.Context, update StatusUpdate) Result
}

// mailjet message payload structures
type mjAddress struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

type mjMessage struct {
	From     mjAddress   `json:"From"`
	To       []mjAddress `json:"To"`
	Subject  string      `json:"Subject"`
	TextPart string      `json:"TextPart"`
	HTMLPart string      `json:"HTMLPart"`
}

type mjPayload struct {
	Messages []mjMessage `json:"Messages"`
}

// MailjetMailer implements Mailer against the Mailjet REST API.
type MailjetMailer struct {
	config Config
	client *http.Client
	logger zerolog.Logger
}

// NewMailjetMailer creates a new MailjetMailer
func NewMailjetMailer(config Config, logger zerolog.Logger) *MailjetMailer {
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &MailjetMailer{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

// Configured reports whether API credentials and a sender are present.
func (m *MailjetMailer) Configured() bool {
	return m.config.APIKey != "" && m.config.APISecret != "" && m.config.FromEmail != ""
}

// SendStatusUpdate posts a status-change notification. It never panics past
// its boundary: any transport error or non-2xx response is folded into the
// returned Result.
func (m *MailjetMailer) SendStatusUpdate(ctx context.Context, update StatusUpdate) Result {
	if !m.Configured() {
		err := "mailjet credentials or sender not configured"
		m.logger.Warn().
			Str("toEmail", update.RecipientEmail).
			Msg("Mail credentials not configured - status notification not sent")
		return Result{Sent: false, Err: err}
	}

	subject := fmt.Sprintf("Application Update - %s at %s", update.JobTitle, update.CompanyName)
	textBody := fmt.Sprintf("Your application status for %s at %s is now: %s",
		update.JobTitle, update.CompanyName, update.NewStatus)
	htmlBody := m.buildHTMLBody(update)

	payload := mjPayload{
		Messages: []mjMessage{
			{
				From:     mjAddress{Email: m.config.FromEmail, Name: m.config.FromName},
				To:       []mjAddress{{Email: update.RecipientEmail, Name: update.RecipientName}},
				Subject:  subject,
				TextPart: textBody,
				HTMLPart: htmlBody,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Sent: false, Err: fmt.Sprintf("failed to encode mail payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{Sent: false, Err: fmt.Sprintf("failed to build mail request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(m.config.APIKey, m.config.APISecret)

	resp, err := m.client.Do(req)
	if err != nil {
		m.logger.Error().Err(err).Str("toEmail", update.RecipientEmail).Msg("Mailjet request failed")
		return Result{Sent: false, Err: fmt.Sprintf("mailjet request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		diag := fmt.Sprintf("mailjet error (%d): %s", resp.StatusCode, string(respBody))
		m.logger.Error().
			Int("status", resp.StatusCode).
			Str("toEmail", update.RecipientEmail).
			Msg("Mailjet rejected status notification")
		return Result{Sent: false, Err: diag}
	}

	m.logger.Info().
		Str("toEmail", update.RecipientEmail).
		Str("newStatus", update.NewStatus).
		Msg("Status notification sent")
	return Result{Sent: true}
}

func (m *MailjetMailer) buildHTMLBody(update StatusUpdate) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; line-height:1.5; color:#333;">
			<p>Dear %s,</p>

			<p>We are writing to inform you that the status of your application for the position of
			<strong>%s</strong> at <strong>%s</strong> has been updated to:</p>

			<p style="font-size:18px; font-weight:600; color:#0b6efd;">%s</p>

			<p>Please log in to your placement dashboard to view additional details and next steps.</p>

			<hr>
			<p style="font-size:13px; color:#666;">
				This email was sent by the Placement Cell. If you believe you received this in error, please contact the placement cell administrator.
			</p>

			<p>Best regards,<br>Placement Cell Team</p>
		</div>
	`, update.RecipientName, update.JobTitle, update.CompanyName, update.NewStatus)
}
