package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturePublisher struct {
	keys []string
	msgs []amqp.Publishing
	err  error
}

func (p *capturePublisher) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if p.err != nil {
		return p.err
	}
	p.keys = append(p.keys, key)
	p.msgs = append(p.msgs, msg)
	return nil
}

type closeCounter struct{ n int }

func (c *closeCounter) Close() error {
	c.n++
	return nil
}

// scriptedDialer hands out the prepared sessions in order.
type scriptedDialer struct {
	sessions []*amqpSession
	calls    int
}

func (d *scriptedDialer) dial() (*amqpSession, error) {
	if d.calls >= len(d.sessions) {
		d.calls++
		return nil, errors.New("broker unreachable")
	}
	s := d.sessions[d.calls]
	d.calls++
	return s, nil
}

func newSession(pub publisher) (*amqpSession, chan *amqp.Error, *closeCounter) {
	closed := make(chan *amqp.Error, 1)
	conn := &closeCounter{}
	return &amqpSession{ch: pub, conn: conn, closed: closed}, closed, conn
}

func TestForwarderPublishesEveryEventType(t *testing.T) {
	pub := &capturePublisher{}
	session, _, _ := newSession(pub)
	fwd := &AMQPForwarder{session: session, queue: "hall.activity", logger: zap.NewNop()}
	d := NewInMemoryDispatcher(zap.NewNop())
	fwd.Register(d)

	for _, et := range AllTypes {
		require.NoError(t, d.Publish(context.Background(), Event{Type: et, SubjectID: "x"}))
	}

	require.Len(t, pub.msgs, len(AllTypes))
	for i, msg := range pub.msgs {
		assert.Equal(t, "hall.activity", pub.keys[i])
		assert.Equal(t, "application/json", msg.ContentType)
		assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
		assert.Equal(t, string(AllTypes[i]), msg.Type)

		var decoded Event
		require.NoError(t, json.Unmarshal(msg.Body, &decoded))
		assert.Equal(t, AllTypes[i], decoded.Type)
		assert.Equal(t, msg.MessageId, decoded.ID)
	}
}

func TestForwarderRedialsAfterBrokerClose(t *testing.T) {
	first, second := &capturePublisher{}, &capturePublisher{}
	s1, closed1, conn1 := newSession(first)
	s2, _, _ := newSession(second)
	dialer := &scriptedDialer{sessions: []*amqpSession{s2}}
	fwd := &AMQPForwarder{dial: dialer.dial, session: s1, queue: "q", logger: zap.NewNop()}
	ctx := context.Background()

	require.NoError(t, fwd.forward(ctx, Event{ID: "e1", Type: EventNoticePosted}))
	closed1 <- amqp.ErrClosed
	require.NoError(t, fwd.forward(ctx, Event{ID: "e2", Type: EventNoticePosted}))

	require.Len(t, first.msgs, 1)
	require.Len(t, second.msgs, 1)
	assert.Equal(t, "e2", second.msgs[0].MessageId)
	assert.Equal(t, 1, dialer.calls)
	assert.Equal(t, 1, conn1.n)
}

func TestForwarderRedialsAfterPublishFailure(t *testing.T) {
	broken := &capturePublisher{err: errors.New("channel closed")}
	healthy := &capturePublisher{}
	s1, _, conn1 := newSession(broken)
	s2, _, _ := newSession(healthy)
	dialer := &scriptedDialer{sessions: []*amqpSession{s2}}
	fwd := &AMQPForwarder{dial: dialer.dial, session: s1, queue: "q", logger: zap.NewNop()}
	ctx := context.Background()

	err := fwd.forward(ctx, Event{ID: "e1", Type: EventSeatAssigned})
	assert.ErrorContains(t, err, "amqp publish")
	assert.Equal(t, 1, conn1.n)

	require.NoError(t, fwd.forward(ctx, Event{ID: "e2", Type: EventSeatAssigned}))
	require.Len(t, healthy.msgs, 1)
}

func TestForwarderReportsFailedRedial(t *testing.T) {
	dialer := &scriptedDialer{}
	fwd := &AMQPForwarder{dial: dialer.dial, queue: "q", logger: zap.NewNop()}

	err := fwd.forward(context.Background(), Event{Type: EventNoticePosted})
	assert.ErrorContains(t, err, "amqp reconnect")

	// Still retries on the next event.
	_ = fwd.forward(context.Background(), Event{Type: EventNoticePosted})
	assert.Equal(t, 2, dialer.calls)
}
