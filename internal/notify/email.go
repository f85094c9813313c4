package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/logger"
)

const resendAPI = "https://api.resend.com/emails"
const defaultFrom = "Lakhna Restaurant <noreply@lakhnarestaurant.com>"

type resendEmail struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
	Text    string `json:"text,omitempty"`
}

// EmailSender is the mail-transport contract.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, html string) error
}

// ResendClient sends mail through the Resend HTTP API.
// When RESEND_API_KEY is unset it logs a mock email instead, so local
// development works without a mail account.
type ResendClient struct {
	apiKey string
	from   string
	http   *http.Client
}

func NewResendClient() *ResendClient {
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = defaultFrom
	}

	return &ResendClient{
		apiKey: os.Getenv("RESEND_API_KEY"),
		from:   from,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *ResendClient) SendEmail(ctx context.Context, to, subject, html string) error {
	if c.apiKey == "" {
		logger.Log.Warn("missing RESEND_API_KEY, mock email triggered",
			"to", to, "subject", subject)
		return nil
	}

	payload := resendEmail{
		From:    c.from,
		To:      to,
		Subject: subject,
		Html:    html,
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendAPI, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("resend api error: %s", resp.Status)
	}

	logger.Log.Info("email sent", "to", to, "subject", subject)
	return nil
}
