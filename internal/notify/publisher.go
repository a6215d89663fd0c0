package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Типы уведомлений
const (
	TypeContactSubmitted    = "contact_submitted"
	TypeSubscriberAdded     = "subscriber_added"
	TypeNewsletterRequested = "newsletter_requested"
)

// Notification сообщение, публикуемое в канал Redis
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// Publisher публикует уведомления сайта через Redis pub/sub
type Publisher struct {
	client  *goredis.Client
	channel string
	now     func() time.Time
}

// NewPublisher создает новый publisher
func NewPublisher(client *goredis.Client, channel string) *Publisher {
	return &Publisher{
		client:  client,
		channel: channel,
		now:     time.Now,
	}
}

// Publish публикует уведомление указанного типа
func (p *Publisher) Publish(ctx context.Context, notificationType string, payload any) error {
	n := Notification{
		ID:        uuid.New().String(),
		Type:      notificationType,
		Timestamp: p.now().UTC(),
		Payload:   payload,
	}

	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}
