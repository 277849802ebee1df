package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

// Publisher публикует события бронирований и платежей в канал Redis.
// Доставка best-effort: подписчиков может не быть, сообщения не сохраняются.
type Publisher struct {
	client  RedisPublisher
	channel string
	log     Logger
}

// NewPublisher создает новый издатель событий
func NewPublisher(client RedisPublisher, channel string, log Logger) *Publisher {
	return &Publisher{
		client:  client,
		channel: channel,
		log:     log,
	}
}

// Publish сериализует событие в JSON и отправляет его в канал
func (p *Publisher) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(NewMessage(event))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeEvent, err)
	}

	receivers, err := p.client.Publish(ctx, p.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("%w: channel=%s, type=%s: %v", ErrPublish, p.channel, event.Type, err)
	}

	p.log.Info("Published event type=%s booking=%d to %s, receivers=%d",
		event.Type, event.BookingID, p.channel, receivers)
	return nil
}

// NoopPublisher используется, когда канал уведомлений выключен в конфигурации
type NoopPublisher struct{}

// Publish ничего не делает
func (NoopPublisher) Publish(context.Context, domain.Event) error {
	return nil
}
