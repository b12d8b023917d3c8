package notifications

import (
	"encoding/json"

	"matchly_backend/internal/email"
	"matchly_backend/internal/logger"
	"matchly_backend/pkg/mq"
)

// MailWorker - потребитель очереди: рендерит и отправляет письма о парах.
// Сбои доставки логируются и не влияют на обработку HTTP-запросов.
type MailWorker struct {
	mqClient *mq.RabbitMQ
	sender   email.Sender
	queue    string
}

func NewMailWorker(mqClient *mq.RabbitMQ, sender email.Sender, queue string) *MailWorker {
	return &MailWorker{
		mqClient: mqClient,
		sender:   sender,
		queue:    queue,
	}
}

// Start подписывается на очередь. Обработка идет в фоне до закрытия канала.
func (w *MailWorker) Start() error {
	return w.mqClient.Consume(w.queue, w.handle)
}

func (w *MailWorker) handle(body []byte) {
	var event MatchEvent
	if err := json.Unmarshal(body, &event); err != nil {
		logger.Error("mail worker: malformed match event", "error", err)
		return
	}

	msg := email.NewMatchEmail(event.ToEmail, event.MatchName)
	if err := w.sender.Send(msg); err != nil {
		logger.Error("mail worker: failed to send match email", "error", err, "to", event.ToEmail)
		return
	}

	logger.Info("mail worker: match email sent", "to", event.ToEmail)
}
