package notify

import (
	"context"

	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/outbox"
)

// EmailChannel adapts an EmailSender to the outbox worker.
type EmailChannel struct {
	client EmailSender
}

func NewEmailChannel(client EmailSender) *EmailChannel {
	return &EmailChannel{client: client}
}

func (c *EmailChannel) Send(ctx context.Context, m *outbox.Message) error {
	return c.client.SendEmail(ctx, m.Recipient, m.Subject, m.Body)
}

// WhatsAppChannel adapts the WhatsApp text logger to the outbox worker.
type WhatsAppChannel struct {
	logger *WhatsAppLogger
}

func NewWhatsAppChannel(logger *WhatsAppLogger) *WhatsAppChannel {
	return &WhatsAppChannel{logger: logger}
}

func (c *WhatsAppChannel) Send(ctx context.Context, m *outbox.Message) error {
	return c.logger.SendText(ctx, m.Recipient, m.Body)
}
