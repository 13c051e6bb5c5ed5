package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AllTypes lists every event the hall services emit.
var AllTypes = []EventType{
	EventSeatRequested,
	EventSeatAssigned,
	EventPaymentConfirmed,
	EventComplaintSubmitted,
	EventComplaintResolved,
	EventNoticePosted,
}

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// amqpSession is one live connection with its publishing channel.
type amqpSession struct {
	ch     publisher
	conn   io.Closer
	closed <-chan *amqp.Error
}

func (s *amqpSession) alive() bool {
	if s == nil {
		return false
	}
	select {
	case <-s.closed:
		return false
	default:
		return true
	}
}

func (s *amqpSession) close() {
	if s != nil && s.conn != nil {
		_ = s.conn.Close()
	}
}

// AMQPForwarder copies dispatched events onto a durable RabbitMQ queue. A
// dropped connection is redialed on the next event.
type AMQPForwarder struct {
	mu      sync.Mutex
	dial    func() (*amqpSession, error)
	session *amqpSession
	queue   string
	logger  *zap.Logger
}

// NewAMQPForwarder dials the broker and declares queue.
func NewAMQPForwarder(url, queue string, logger *zap.Logger) (*AMQPForwarder, error) {
	f := &AMQPForwarder{
		dial:   func() (*amqpSession, error) { return dialAMQP(url, queue) },
		queue:  queue,
		logger: logger,
	}
	session, err := f.dial()
	if err != nil {
		return nil, err
	}
	f.session = session
	return f, nil
}

func dialAMQP(url, queue string) (*amqpSession, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp queue declare: %w", err)
	}
	closed := conn.NotifyClose(make(chan *amqp.Error, 1))
	return &amqpSession{ch: ch, conn: conn, closed: closed}, nil
}

// Register subscribes the forwarder to every hall event.
func (f *AMQPForwarder) Register(d Dispatcher) {
	for _, t := range AllTypes {
		d.Subscribe(t, f.forward)
	}
}

func (f *AMQPForwarder) forward(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         string(event.Type),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.session.alive() {
		f.session.close()
		f.session = nil
		session, err := f.dial()
		if err != nil {
			return fmt.Errorf("amqp reconnect: %w", err)
		}
		f.logger.Info("amqp reconnected", zap.String("queue", f.queue))
		f.session = session
	}
	if err := f.session.ch.PublishWithContext(ctx, "", f.queue, false, false, msg); err != nil {
		// Force a redial on the next event.
		f.session.close()
		f.session = nil
		return fmt.Errorf("amqp publish: %w", err)
	}
	f.logger.Debug("event forwarded", zap.String("event_id", event.ID), zap.String("queue", f.queue))
	return nil
}

// Close releases the broker connection.
func (f *AMQPForwarder) Close() {
	if f == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session.close()
	f.session = nil
}
