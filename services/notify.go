package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hitekgroup/hitek-site-backend/config"
)

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

const resendEndpoint = "https://api.resend.com/emails"

// SendEmail sends an email using the Resend API
// Parameters:
//   - subject: The email subject line
//   - body: The email body (plain text)
//   - recipients: A list of recipient email addresses
//
// Requires environment variables:
//   - RESEND_API_KEY: Your Resend API key
//   - RESEND_FROM_EMAIL: The sender email address (e.g., "Hitek Ops <[email protected]>")
func SendEmail(subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	cfg := config.New()
	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	if apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY is not set")
	}
	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "Hitek Backend <[email protected]>")

	payload := ResendEmailRequest{
		From:    fromEmail,
		To:      recipients,
		Subject: subject,
		Text:    body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		var resendErr ResendErrorResponse
		if json.Unmarshal(respBody, &resendErr) == nil && resendErr.Message != "" {
			return fmt.Errorf("resend API returned %d: %s", resp.StatusCode, resendErr.Message)
		}
		return fmt.Errorf("resend API returned %d", resp.StatusCode)
	}

	var result ResendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err == nil {
		log.Debug().Str("emailID", result.ID).Msg("Email sent via Resend")
	}

	return nil
}

// NotifyError forwards an unexpected server error to the ops mailbox. Fire and
// forget: notification failures are logged, never propagated to the request
// path that triggered them.
func NotifyError(errMsg string) {
	cfg := config.New()
	recipient := config.GetString(cfg, "ERROR_NOTIFICATION_EMAIL", "")
	if recipient == "" {
		return
	}

	subject := "[hitek-site-backend] unexpected server error"
	body := fmt.Sprintf("An unexpected error occurred at %s:\n\n%s\n",
		time.Now().UTC().Format(time.RFC3339), errMsg)

	if err := SendEmail(subject, body, []string{recipient}); err != nil {
		log.Error().Err(err).Msg("Error sending error notification email")
	}
}
