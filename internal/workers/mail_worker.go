package workers

import (
	"context"
	"log"
	"strings"
	"time"

	go_redis "github.com/redis/go-redis/v9"

	"table-booking-backend/internal/platform/redis"
)

const consumerGroup = "mail_consumers"
const consumerName = "mail_worker_1"

// Mail — одно письмо, разобранное из сообщения стрима
type Mail struct {
	From       string
	Subject    string
	Body       string
	Recipients []string
}

// Sender доставляет письмо наружу. Конкретный транспорт (SMTP, внешний
// API) подключается в main; LogSender используется как заглушка по умолчанию.
type Sender interface {
	Deliver(ctx context.Context, mail *Mail) error
}

// LogSender пишет письмо в лог вместо реальной отправки
type LogSender struct{}

func (LogSender) Deliver(_ context.Context, mail *Mail) error {
	log.Printf("mail to %s: %s", strings.Join(mail.Recipients, ", "), mail.Subject)
	return nil
}

type MailWorker struct {
	rdb    *redis.Client
	sender Sender
	stream string
}

func NewMailWorker(rdb *redis.Client, sender Sender, stream string) *MailWorker {
	return &MailWorker{
		rdb:    rdb,
		sender: sender,
		stream: stream,
	}
}

// Start слушает стрим исходящей почты до отмены контекста.
func (w *MailWorker) Start(ctx context.Context) {
	// Ensure consumer group exists
	err := w.rdb.XGroupCreateMkStream(ctx, w.stream, consumerGroup, "$").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		log.Printf("Error creating consumer group: %v", err)
	}

	log.Println("Starting mail worker...")

	for {
		select {
		case <-ctx.Done():
			log.Println("Stopping mail worker...")
			return
		default:
			entries, err := w.rdb.XReadGroup(ctx, &go_redis.XReadGroupArgs{
				Group:    consumerGroup,
				Consumer: consumerName,
				Streams:  []string{w.stream, ">"},
				Count:    1,
				Block:    5 * time.Second,
			}).Result()

			if err != nil {
				if err.Error() != "redis: nil" { // timeout/no messages
					log.Printf("Error reading from stream: %v", err)
					time.Sleep(1 * time.Second) // backoff on error
				}
				continue
			}

			for _, stream := range entries {
				for _, msg := range stream.Messages {
					w.processMessage(ctx, msg.Values)
					w.rdb.XAck(ctx, w.stream, consumerGroup, msg.ID)
				}
			}
		}
	}
}

func (w *MailWorker) processMessage(ctx context.Context, values map[string]interface{}) {
	mail, ok := parseMail(values)
	if !ok {
		log.Printf("Invalid mail message: %v", values)
		return
	}

	if err := w.sender.Deliver(ctx, mail); err != nil {
		log.Printf("Error delivering mail %q to %d recipients: %v",
			mail.Subject, len(mail.Recipients), err)
	}
}

// parseMail восстанавливает письмо из полей сообщения стрима.
// Сообщение без получателей считается некорректным.
func parseMail(values map[string]interface{}) (*Mail, bool) {
	subject, ok := values["subject"].(string)
	if !ok {
		return nil, false
	}
	body, ok := values["body"].(string)
	if !ok {
		return nil, false
	}
	rawRecipients, ok := values["recipients"].(string)
	if !ok || rawRecipients == "" {
		return nil, false
	}
	from, _ := values["from"].(string)

	var recipients []string
	for _, r := range strings.Split(rawRecipients, ",") {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	if len(recipients) == 0 {
		return nil, false
	}

	return &Mail{
		From:       from,
		Subject:    subject,
		Body:       body,
		Recipients: recipients,
	}, true
}
