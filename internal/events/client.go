// Package events carries month changes over AMQP so pool-fund snapshots can
// be refreshed outside the request path.
package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/loqeyusa/housingsupport/internal/finance"
)

const publishTimeout = 5 * time.Second

// channel is the part of *amqp091.Channel the client uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error)
	Close() error
}

type Client struct {
	conn     *amqp091.Connection
	channel  channel
	exchange string
	queue    string
	now      func() time.Time
	log      *slog.Logger
}

func NewClient(url, exchange, queue string) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dialing amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening channel: %w", err)
	}

	c, err := newClient(ch, exchange, queue)
	if err != nil {
		conn.Close()
		return nil, err
	}

	c.conn = conn

	return c, nil
}

func newClient(ch channel, exchange, queue string) (*Client, error) {
	c := &Client{channel: ch, exchange: exchange, queue: queue, now: time.Now, log: slog.Default()}

	if err := c.setup(); err != nil {
		ch.Close()
		return nil, fmt.Errorf("setting up exchange and queue: %w", err)
	}

	return c, nil
}

func (c *Client) setup() error {
	if err := c.channel.ExchangeDeclare(c.exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declaring exchange: %w", err)
	}

	if _, err := c.channel.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declaring queue: %w", err)
	}

	// Direct exchange: the queue name doubles as the routing key.
	if err := c.channel.QueueBind(c.queue, c.queue, c.exchange, false, nil); err != nil {
		return fmt.Errorf("binding queue: %w", err)
	}

	return nil
}

func (c *Client) WithLogger(log *slog.Logger) *Client {
	c.log = log
	return c
}

// MonthChanged publishes a persistent MonthChanged message for m.
func (c *Client) MonthChanged(ctx context.Context, m *finance.ClientMonth) error {
	body, err := NewMonthChanged(m, c.now()).Encode()
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(ctx, c.exchange, c.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    c.now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publishing message: %w", err)
	}

	c.log.DebugContext(ctx, "published month change",
		"client_month_id", m.ID,
		"period", m.Period.String(),
		"exchange", c.exchange)

	return nil
}

// Handler processes one message. A returned error requeues the delivery.
type Handler func(ctx context.Context, msg *MonthChanged) error

var ErrDeliveriesClosed = errors.New("delivery channel closed")

// Consume delivers messages to handle until ctx is done. Malformed messages
// are dropped; handler failures are requeued.
func (c *Client) Consume(ctx context.Context, handle Handler) error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("starting consumer: %w", err)
	}

	c.log.InfoContext(ctx, "consuming month changes", "queue", c.queue)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return ErrDeliveriesClosed
			}

			c.dispatch(ctx, d, handle)
		}
	}
}

func (c *Client) dispatch(ctx context.Context, d amqp091.Delivery, handle Handler) {
	msg, err := DecodeMonthChanged(d.Body)
	if err != nil {
		c.log.ErrorContext(ctx, "failed to decode message", "error", err)

		if err := d.Nack(false, false); err != nil {
			c.log.ErrorContext(ctx, "failed to nack message", "error", err)
		}

		return
	}

	if err := handle(ctx, msg); err != nil {
		c.log.ErrorContext(ctx, "failed to handle month change",
			"error", err,
			"client_month_id", msg.ClientMonthID)

		if err := d.Nack(false, true); err != nil {
			c.log.ErrorContext(ctx, "failed to nack message", "error", err)
		}

		return
	}

	if err := d.Ack(false); err != nil {
		c.log.ErrorContext(ctx, "failed to ack message", "error", err)
	}
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}

	if c.conn != nil {
		return c.conn.Close()
	}

	return nil
}
