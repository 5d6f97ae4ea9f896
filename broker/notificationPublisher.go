package broker

import (
	"context"
	"encoding/json"

	"eadcourse/config"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationCommand is the outbound "you are subscribed" event
type NotificationCommand struct {
	Title   string    `json:"title"`
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
}

// NotificationPublisher hands a notification command to the broker.
// Delivery is best effort: callers log failures and move on, they never
// fail the request that triggered the notification.
type NotificationPublisher interface {
	PublishNotificationCommand(cmd NotificationCommand) error
}

// Notifications is the process-wide publisher. It stays nil when the
// broker is disabled; call sites must treat nil as "skip and log".
var Notifications NotificationPublisher

// PublishNotificationCommand publishes the command as a persistent JSON
// message. No confirm is awaited beyond the channel hand-off.
func (c *Client) PublishNotificationCommand(cmd NotificationCommand) error {
	body, err := json.Marshal(cmd)
	if err != nil {
		return err
	}

	return c.pubCh.PublishWithContext(
		context.Background(),
		config.AppConfig.NotificationExchange,
		config.AppConfig.NotificationRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
