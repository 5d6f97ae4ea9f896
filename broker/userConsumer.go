package broker

import (
	"encoding/json"

	"eadcourse/config"
	"eadcourse/logger"
	"eadcourse/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Action types on the user event stream
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// UserEvent is the payload of the authuser service's fan-out lifecycle
// events
type UserEvent struct {
	UserID     uuid.UUID `json:"userId"`
	FullName   string    `json:"fullName"`
	UserType   string    `json:"userType"`
	UserStatus string    `json:"userStatus"`
	ActionType string    `json:"actionType"`
}

// HandleUserEvent applies one lifecycle event to the local user
// projection. CREATE upserts by userId, so redelivering the same event
// leaves a single row with the latest field values. Other action types
// are accepted and ignored.
func HandleUserEvent(db *gorm.DB, event UserEvent) error {
	switch event.ActionType {
	case ActionCreate:
		user := models.User{
			UserID:     event.UserID,
			FullName:   event.FullName,
			UserType:   event.UserType,
			UserStatus: event.UserStatus,
		}
		return db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"full_name", "user_type", "user_status"}),
		}).Create(&user).Error
	default:
		logger.Log.Info("Ignoring user event",
			zap.String("actionType", event.ActionType),
			zap.String("userId", event.UserID.String()))
		return nil
	}
}

// StartUserEventConsumer declares the durable queue, binds it to the
// fan-out user event exchange and consumes deliveries on a background
// goroutine. Malformed payloads are acked and dropped; storage failures
// are requeued.
func (c *Client) StartUserEventConsumer(db *gorm.DB) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return err
	}

	err = ch.ExchangeDeclare(
		config.AppConfig.UserEventExchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	queue, err := ch.QueueDeclare(
		config.AppConfig.UserEventQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	if err := ch.QueueBind(queue.Name, "", config.AppConfig.UserEventExchange, false, nil); err != nil {
		return err
	}

	deliveries, err := ch.Consume(queue.Name, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for d := range deliveries {
			var event UserEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				logger.Log.Error("Discarding malformed user event", zap.Error(err))
				d.Ack(false)
				continue
			}

			if err := HandleUserEvent(db, event); err != nil {
				logger.Log.Error("Failed to apply user event",
					zap.String("userId", event.UserID.String()),
					zap.Error(err))
				d.Nack(false, true)
				continue
			}

			logger.Log.Info("User event applied",
				zap.String("actionType", event.ActionType),
				zap.String("userId", event.UserID.String()))
			d.Ack(false)
		}
		logger.Log.Warn("User event consumer stopped")
	}()

	return nil
}
