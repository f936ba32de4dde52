// Package notifications реализует асинхронную отправку почтовых уведомлений.
// Send лишь кладёт сообщение в Redis-стрим и сразу возвращается: запрос
// не ждёт доставки, ошибки доставки не доходят до пользователя.
package notifications

import (
	"context"
	"strings"

	go_redis "github.com/redis/go-redis/v9"

	"table-booking-backend/internal/common/logger"
)

// Dispatcher принимает уведомление на отправку без ожидания доставки
type Dispatcher interface {
	Send(ctx context.Context, subject, body string, recipients []string)
}

// streamClient покрывает используемую часть клиента Redis
type streamClient interface {
	XAdd(ctx context.Context, a *go_redis.XAddArgs) *go_redis.StringCmd
}

type Service struct {
	rdb    streamClient
	stream string
	from   string
}

func NewService(rdb streamClient, stream, from string) *Service {
	return &Service{rdb: rdb, stream: stream, from: from}
}

// Send ставит письмо в очередь отправки. Ошибка постановки логируется и
// не возвращается: создание бронирования не должно зависеть от почты.
func (s *Service) Send(ctx context.Context, subject, body string, recipients []string) {
	if len(recipients) == 0 {
		return
	}

	err := s.rdb.XAdd(ctx, &go_redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]interface{}{
			"from":       s.from,
			"subject":    subject,
			"body":       body,
			"recipients": strings.Join(recipients, ","),
		},
	}).Err()

	if err != nil {
		logger.Error().
			Err(err).
			Str("subject", subject).
			Int("recipients", len(recipients)).
			Msg("Failed to enqueue mail notification")
		return
	}

	logger.Debug().
		Str("subject", subject).
		Int("recipients", len(recipients)).
		Msg("Mail notification enqueued")
}
