package notifications

import (
	"context"

	"matchly_backend/internal/email"
	"matchly_backend/internal/logger"
)

// DirectDispatcher отправляет письмо в фоновой горутине, минуя брокер.
// Используется, когда RabbitMQ не сконфигурирован (локальная разработка).
type DirectDispatcher struct {
	sender email.Sender
}

func NewDirectDispatcher(sender email.Sender) *DirectDispatcher {
	return &DirectDispatcher{sender: sender}
}

func (d *DirectDispatcher) NotifyMatch(ctx context.Context, toEmail, matchName string) error {
	go func() {
		msg := email.NewMatchEmail(toEmail, matchName)
		if err := d.sender.Send(msg); err != nil {
			logger.Error("failed to send match email", "error", err, "to", toEmail)
		}
	}()
	return nil
}
