package rabbitmq

import (
	"context"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/hduce/appointment-notify/internal/config"
)

type ackRecord struct {
	op      string
	requeue bool
}

type fakeAcknowledger struct {
	records []ackRecord
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.records = append(f.records, ackRecord{op: "ack"})
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	f.records = append(f.records, ackRecord{op: "nack", requeue: requeue})
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	f.records = append(f.records, ackRecord{op: "reject", requeue: requeue})
	return nil
}

type verdictHandler struct {
	action Action
	bodies [][]byte
}

func (h *verdictHandler) Handle(_ context.Context, body []byte) Action {
	h.bodies = append(h.bodies, body)
	return h.action
}

type scriptedHandler struct {
	verdicts []Action
	bodies   [][]byte
}

func (h *scriptedHandler) Handle(_ context.Context, body []byte) Action {
	h.bodies = append(h.bodies, body)
	v := h.verdicts[0]
	h.verdicts = h.verdicts[1:]
	return v
}

// A poison message is dropped and the loop moves on to the next delivery
// instead of stalling the queue.
func TestConsumer_Loop_PoisonDoesNotBlock(t *testing.T) {
	handler := &scriptedHandler{verdicts: []Action{ActionDrop, ActionAck}}
	c := NewConsumer(config.RabbitMQ{}, retry.Strategy{}, handler)

	poisonAck := &fakeAcknowledger{}
	validAck := &fakeAcknowledger{}

	poison := []byte("{{{ not json")
	valid := []byte(`{"event_type":"APPOINTMENT_CREATED","data":{"appointment_id":42}}`)

	deliveries := make(chan amqp.Delivery, 2)
	deliveries <- amqp.Delivery{Acknowledger: poisonAck, Body: poison}
	deliveries <- amqp.Delivery{Acknowledger: validAck, Body: valid}
	close(deliveries)

	err := c.loop(context.Background(), deliveries)
	require.Error(t, err) // closed channel ends the connection lifecycle

	require.Equal(t, [][]byte{poison, valid}, handler.bodies)
	assert.Equal(t, []ackRecord{{op: "nack", requeue: false}}, poisonAck.records)
	assert.Equal(t, []ackRecord{{op: "ack"}}, validAck.records)
}

func TestConsumer_Loop_ContextCanceled(t *testing.T) {
	handler := &scriptedHandler{}
	c := NewConsumer(config.RabbitMQ{}, retry.Strategy{}, handler)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.loop(ctx, make(chan amqp.Delivery))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, handler.bodies)
}

func TestConsumer_Dispatch(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   ackRecord
	}{
		{"ack on success", ActionAck, ackRecord{op: "ack"}},
		{"drop without requeue", ActionDrop, ackRecord{op: "nack", requeue: false}},
		{"requeue on transient failure", ActionRequeue, ackRecord{op: "nack", requeue: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := &verdictHandler{action: tt.action}
			c := NewConsumer(config.RabbitMQ{}, retry.Strategy{}, handler)

			acker := &fakeAcknowledger{}
			d := amqp.Delivery{Acknowledger: acker, Body: []byte(`{"event_type":"APPOINTMENT_CREATED"}`)}

			c.dispatch(context.Background(), d)

			assert.Equal(t, [][]byte{d.Body}, handler.bodies)
			assert.Equal(t, []ackRecord{tt.want}, acker.records)
		})
	}
}
