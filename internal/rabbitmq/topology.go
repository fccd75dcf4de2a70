// Package rabbitmq implements the broker side of the appointment event
// pipeline: durable topology declaration, the appointment event publisher
// and the notification consumer.
package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hduce/appointment-notify/internal/config"
)

// Declarer is the subset of an AMQP channel used for topology declaration.
type Declarer interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
}

// DeclareTopology declares the direct exchange, the durable queue and the
// binding between them. Declaration is idempotent: re-declaring with the
// same parameters is a no-op on the broker, and conflicting parameters
// surface as a channel error the operator must resolve.
func DeclareTopology(ch Declarer, cfg config.RabbitMQ) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %q: %w", cfg.Exchange, err)
	}

	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %q: %w", cfg.Queue, err)
	}

	if err := ch.QueueBind(cfg.Queue, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %q to exchange %q: %w", cfg.Queue, cfg.Exchange, err)
	}

	return nil
}
