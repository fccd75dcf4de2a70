package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/hduce/appointment-notify/internal/config"
	"github.com/hduce/appointment-notify/internal/event"
)

// publishChannel is the subset of an AMQP channel used for publishing.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// Publisher publishes appointment events to the broker with persistent
// delivery. It owns its connection and channel; callers must not share it
// across goroutines without the internal lock it already provides.
//
// Publishing has no side effects beyond the broker write. A returned error
// means the caller should take the HTTP fallback path; it must never fail
// the appointment write itself.
type Publisher struct {
	cfg      config.RabbitMQ
	strategy retry.Strategy

	mu   sync.Mutex
	conn *amqp.Connection
	ch   publishChannel
}

// NewPublisher creates a publisher. No connection is made until the first
// Publish call, so broker downtime never blocks service startup.
func NewPublisher(cfg config.RabbitMQ, strategy retry.Strategy) *Publisher {
	return &Publisher{cfg: cfg, strategy: strategy}
}

// Publish wraps the payload in an event envelope and publishes it with a
// persistent delivery mode and an application/json content type.
func (p *Publisher) Publish(ctx context.Context, t event.Type, payload any) error {
	env, err := event.NewEnvelope(t, payload)
	if err != nil {
		return err
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(); err != nil {
		return err
	}

	err = p.ch.PublishWithContext(ctx, p.cfg.Exchange, p.cfg.RoutingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		// Drop the broken connection so the next call redials.
		p.closeLocked()
		return fmt.Errorf("publish %s: %w", t, err)
	}

	zlog.Logger.Info().
		Str("event_type", string(t)).
		Str("routing_key", p.cfg.RoutingKey).
		Msg("event published")

	return nil
}

// ensureChannel dials the broker and declares the topology if the
// publisher is not currently connected. Must be called with mu held.
func (p *Publisher) ensureChannel() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}

	p.closeLocked()

	conn, err := dial(p.cfg, p.strategy)
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	if err := DeclareTopology(ch, p.cfg); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	p.conn = conn
	p.ch = ch

	return nil
}

// Close releases the broker connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
	return nil
}

func (p *Publisher) closeLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// dial connects to the broker, retrying per the configured strategy.
func dial(cfg config.RabbitMQ, strategy retry.Strategy) (*amqp.Connection, error) {
	amqpCfg := amqp.Config{
		Vhost:     cfg.VHost,
		Heartbeat: cfg.Heartbeat,
		Dial:      amqp.DefaultDial(cfg.DialTimeout),
	}

	if strategy.Attempts < 1 {
		strategy.Attempts = 1
	}

	var conn *amqp.Connection
	err := retry.Do(func() error {
		var dialErr error
		conn, dialErr = amqp.DialConfig(cfg.URL(), amqpCfg)
		if dialErr != nil {
			zlog.Logger.Warn().Err(dialErr).Msg("rabbitmq dial failed")
		}
		return dialErr
	}, strategy)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	return conn, nil
}
