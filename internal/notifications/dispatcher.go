package notifications

import "context"

// MatchEvent - полезная нагрузка уведомления о паре.
// ToEmail - адресат, MatchName - имя второго участника пары.
type MatchEvent struct {
	ToEmail   string `json:"to_email"`
	MatchName string `json:"match_name"`
}

// Dispatcher - граница внешнего коллаборатора (очередь задач + почта).
// Вызов fire-and-forget: ядро не ждет доставки и не наблюдает ее исход.
type Dispatcher interface {
	NotifyMatch(ctx context.Context, toEmail, matchName string) error
}
