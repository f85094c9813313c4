package notify

import (
	"context"

	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/logger"
)

// WhatsAppLogger formats the business-facing WhatsApp message and writes it
// to the log. There is no WhatsApp API integration; staff copy the text.
type WhatsAppLogger struct{}

func NewWhatsAppLogger() *WhatsAppLogger {
	return &WhatsAppLogger{}
}

func (w *WhatsAppLogger) SendText(ctx context.Context, to, text string) error {
	logger.Log.Info("whatsapp message", "to", to, "text", text)
	return nil
}
