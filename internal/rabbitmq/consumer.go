package rabbitmq

import (
	"context"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/hduce/appointment-notify/internal/config"
)

// Action is the handler's verdict on a delivery.
type Action int

const (
	// ActionAck acknowledges the message as processed (or as a permanent
	// no-op: unknown event types and invalid payloads are consumed, since
	// redelivery can never make them valid).
	ActionAck Action = iota

	// ActionDrop rejects the message without requeue. Used for bodies that
	// cannot be decoded at all, so poison messages never loop.
	ActionDrop

	// ActionRequeue rejects the message with requeue so the broker
	// redelivers it. Used for transient failures such as a database outage.
	ActionRequeue
)

// Handler processes a raw message body and returns the ack verdict.
type Handler interface {
	Handle(ctx context.Context, body []byte) Action
}

// Consumer is the long-running background worker of the notification
// service. It connects, declares the topology, consumes with prefetch=1
// and manual acknowledgments, and reconnects with a fixed delay whenever
// the connection drops. Unacknowledged in-flight messages are redelivered
// by the broker after a reconnect.
type Consumer struct {
	cfg      config.RabbitMQ
	strategy retry.Strategy
	handler  Handler
}

// NewConsumer creates a consumer bound to the given handler.
func NewConsumer(cfg config.RabbitMQ, strategy retry.Strategy, handler Handler) *Consumer {
	return &Consumer{cfg: cfg, strategy: strategy, handler: handler}
}

// Run drives the connect/consume/reconnect lifecycle until ctx is
// cancelled. It never returns an error: broker outages are absorbed by the
// fixed reconnect delay so the service keeps serving HTTP meanwhile.
func (c *Consumer) Run(ctx context.Context) {
	delay := c.cfg.ReconnectDelay
	if delay <= 0 {
		delay = 5 * time.Second
	}

	for {
		err := c.consume(ctx)

		if ctx.Err() != nil {
			zlog.Logger.Info().Msg("consumer stopped")
			return
		}

		zlog.Logger.Error().Err(err).Msgf("consumer disconnected, reconnecting in %s", delay)

		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("consumer stopped")
			return
		case <-time.After(delay):
		}
	}
}

// consume runs one connection lifecycle: connect, declare, consume until
// the channel closes or ctx is cancelled.
func (c *Consumer) consume(ctx context.Context) error {
	conn, err := dial(c.cfg, c.strategy)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := DeclareTopology(ch, c.cfg); err != nil {
		return err
	}

	// prefetch=1: strict single-in-flight processing. The broker will not
	// push a second message until the first is acknowledged, which keeps
	// processing ordered and gives natural backpressure.
	if err := ch.Qos(1, 0, false); err != nil {
		return err
	}

	deliveries, err := ch.Consume(c.cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	zlog.Logger.Info().
		Str("queue", c.cfg.Queue).
		Str("exchange", c.cfg.Exchange).
		Msg("consumer connected, waiting for messages")

	return c.loop(ctx, deliveries)
}

// loop processes deliveries one at a time until ctx is cancelled or the
// channel closes. Every delivery gets a verdict; a dropped message never
// stops the loop.
func (c *Consumer) loop(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}

			c.dispatch(ctx, d)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, d amqp.Delivery) {
	switch c.handler.Handle(ctx, d.Body) {
	case ActionAck:
		if err := d.Ack(false); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to ack message")
		}
	case ActionDrop:
		if err := d.Nack(false, false); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to drop message")
		}
	case ActionRequeue:
		if err := d.Nack(false, true); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to requeue message")
		}
	}
}
