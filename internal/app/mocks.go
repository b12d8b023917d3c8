package app

import (
	"matchly_backend/internal/email"
	"matchly_backend/internal/logger"
)

// MockEmailSender логирует письма вместо отправки.
// Используется в окружениях без настроенного SMTP.
type MockEmailSender struct{}

func (m *MockEmailSender) Send(msg *email.Email) error {
	logger.Info("[MOCK EMAIL]", "to", msg.To, "subject", msg.Subject, "body", msg.Body)
	return nil
}

func (m *MockEmailSender) Close() error {
	return nil
}
