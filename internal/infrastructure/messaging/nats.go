package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"

	"github.com/johnquangdev/notulensi/internal/domain/repositories"
)

// SubjectPrefix is prepended to the event type to form the NATS subject
const SubjectPrefix = "notulensi.meetings."

// Subject returns the subject a meeting event is published on
func Subject(t repositories.MeetingEventType) string {
	return SubjectPrefix + string(t)
}

// Client holds a NATS connection
type Client struct {
	Conn *nats.Conn
}

// Connect dials NATS, retrying with exponential backoff until timeout
func Connect(url string, timeout time.Duration) (*Client, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxElapsedTime = timeout

	var conn *nats.Conn
	err := backoff.Retry(func() error {
		c, err := nats.Connect(url, nats.Name("notulensi-api"))
		if err != nil {
			return err
		}
		conn = c
		return nil
	}, b)
	if err != nil {
		return nil, fmt.Errorf("connect nats timeout after %s: %w", timeout, err)
	}
	return &Client{Conn: conn}, nil
}

// Close drains and closes the connection
func (c *Client) Close() {
	if c == nil || c.Conn == nil {
		return
	}
	_ = c.Conn.Drain()
	c.Conn.Close()
}

// Conn is the subset of *nats.Conn the publisher needs
type Conn interface {
	Publish(subject string, data []byte) error
}

// Publisher sends meeting events as JSON over core NATS
type Publisher struct {
	conn Conn
}

// NewPublisher creates a publisher on an open connection
func NewPublisher(conn Conn) *Publisher {
	return &Publisher{conn: conn}
}

// Publish implements repositories.EventPublisher
func (p *Publisher) Publish(_ context.Context, event repositories.MeetingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal meeting event: %w", err)
	}
	if err := p.conn.Publish(Subject(event.Type), payload); err != nil {
		return fmt.Errorf("publish %s: %w", Subject(event.Type), err)
	}
	return nil
}

// NoopPublisher discards events. Used when no broker is configured.
type NoopPublisher struct{}

// Publish implements repositories.EventPublisher
func (NoopPublisher) Publish(context.Context, repositories.MeetingEvent) error { return nil }
