package outbox

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "PENDING"
	StatusSending = "SENDING"
	StatusSent    = "SENT"
	StatusFailed  = "FAILED"
)

const (
	ChannelEmail    = "EMAIL"
	ChannelWhatsApp = "WHATSAPP"
)

// MaxAttempts bounds delivery retries before a message is marked FAILED.
const MaxAttempts = 5

// Message is one queued notification. Rows are written in the same
// transaction as the state change that triggered them, so delivery is
// observable and retryable instead of fire-and-forget.
type Message struct {
	ID        string     `json:"id"`
	Channel   string     `json:"channel"`
	Recipient string     `json:"recipient"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	Status    string     `json:"status"`
	Attempts  int        `json:"attempts"`
	LastError *string    `json:"lastError,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
}

func NewMessage(channel, recipient, subject, body string) *Message {
	return &Message{
		ID:        uuid.New().String(),
		Channel:   channel,
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
}
