// Package audit publishes one event per completed API call to NATS.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/paykit/internal/constants"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

// ErrNoPublisher is returned when an Auditor is built without a publisher.
var ErrNoPublisher = errors.New("audit publisher is required")

// Publisher sends a message to a subject. *nats.Conn satisfies it.
type Publisher interface {
	Publish(subj string, data []byte) error
}

// Event is the JSON payload published for each call.
type Event struct {
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	Code       string    `json:"code,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	Timestamp  time.Time `json:"timestamp"`
}

// Auditor turns call outcomes into events on one subject.
type Auditor struct {
	publisher Publisher
	subject   string
	now       func() time.Time
}

// NewAuditor creates an auditor. An empty subject uses the default.
func NewAuditor(publisher Publisher, subject string) (*Auditor, error) {
	if publisher == nil {
		return nil, ErrNoPublisher
	}

	if subject == "" {
		subject = constants.DefaultAuditSubject
	}

	return &Auditor{publisher: publisher, subject: subject, now: time.Now}, nil
}

// Subject returns the subject events are published on.
func (a *Auditor) Subject() string {
	return a.subject
}

// NewEvent builds the event for one call.
func (a *Auditor) NewEvent(req *paykit.Request, resp *paykit.Response) Event {
	event := Event{
		Method:     req.Method,
		Path:       req.Path,
		StatusCode: resp.StatusCode,
		DurationMS: resp.Duration.Milliseconds(),
		Timestamp:  a.now().UTC(),
	}

	if resp.Error != nil {
		event.Code = string(resp.Error.Code())
	}

	return event
}

// ResponseInterceptor publishes an event after every call. A publish failure
// is reported to the chain, which logs it without changing the call outcome.
func (a *Auditor) ResponseInterceptor() paykit.ResponseInterceptor {
	return func(ctx context.Context, req *paykit.Request, resp *paykit.Response) error {
		data, err := json.Marshal(a.NewEvent(req, resp))
		if err != nil {
			return fmt.Errorf("encoding audit event: %w", err)
		}

		err = a.publisher.Publish(a.subject, data)
		if err != nil {
			return fmt.Errorf("publishing audit event to %s: %w", a.subject, err)
		}

		return nil
	}
}

// Connection is a NATS connection used for auditing.
type Connection struct {
	conn *nats.Conn
}

// Connect dials the NATS server at url.
func Connect(url string) (*Connection, error) {
	conn, err := nats.Connect(url,
		nats.Name("paykit/"+constants.Version),
		nats.Timeout(constants.AuditFlushTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}

	return &Connection{conn: conn}, nil
}

// Publish implements Publisher.
func (c *Connection) Publish(subj string, data []byte) error {
	err := c.conn.Publish(subj, data)
	if err != nil {
		return fmt.Errorf("nats publish: %w", err)
	}

	return nil
}

// Close flushes pending events and closes the connection.
func (c *Connection) Close() error {
	defer c.conn.Close()

	err := c.conn.FlushTimeout(constants.AuditFlushTimeout)
	if err != nil {
		return fmt.Errorf("flushing audit events: %w", err)
	}

	return nil
}
