package broker

import (
	"eadcourse/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Client wraps the AMQP connection. Publishing and consuming run on
// separate channels of the same connection.
type Client struct {
	conn  *amqp.Connection
	pubCh *amqp.Channel
}

// Connect dials the broker and declares the outbound notification
// exchange
func Connect(url string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	pubCh, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = pubCh.ExchangeDeclare(
		config.AppConfig.NotificationExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		pubCh.Close()
		conn.Close()
		return nil, err
	}

	return &Client{conn: conn, pubCh: pubCh}, nil
}

func (c *Client) Close() {
	if c.pubCh != nil {
		c.pubCh.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
