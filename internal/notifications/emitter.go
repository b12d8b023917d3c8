package notifications

import (
	"context"
	"encoding/json"

	"matchly_backend/internal/logger"
	"matchly_backend/pkg/mq"
)

// Emitter публикует события о паре в RabbitMQ.
type Emitter struct {
	mqClient *mq.RabbitMQ
	exchange string
}

func NewEmitter(mqClient *mq.RabbitMQ, exchange string) *Emitter {
	return &Emitter{mqClient: mqClient, exchange: exchange}
}

// NotifyMatch публикует событие для почтового воркера.
// Ошибка публикации логируется и возвращается, но вызывающая сторона
// не обязана ее поднимать до HTTP-клиента.
func (e *Emitter) NotifyMatch(ctx context.Context, toEmail, matchName string) error {
	payload := MatchEvent{
		ToEmail:   toEmail,
		MatchName: matchName,
	}

	eventBytes, err := json.Marshal(payload)
	if err != nil {
		logger.CtxWithError(ctx, "failed to marshal match event", err)
		return err
	}

	if err := e.mqClient.Publish(e.exchange, mq.RoutingKeyMatchCreated, eventBytes); err != nil {
		logger.CtxWithError(ctx, "failed to publish match event", err, "to", toEmail)
		return err
	}

	logger.CtxDebug(ctx, "match event published", "to", toEmail)
	return nil
}
