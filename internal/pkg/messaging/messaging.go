package messaging

import (
	"context"
	"io"
	"time"
)

// Messaging is a broker-agnostic client that can publish and consume messages.
//
// Implementations wrap Kafka, NATS, NSQ, or Google Pub/Sub. Business code
// depends on this interface so the broker can be swapped through
// configuration alone.
type Messaging interface {
	io.Closer

	Publisher
	Consumer
}

// Publisher publishes messages to a destination (topic/subject).
type Publisher interface {
	Publish(ctx context.Context, destination string, msg OutgoingMessage) error
}

// Consumer consumes messages from a source (topic/subject/subscription).
type Consumer interface {
	// Consume blocks until ctx is canceled or the consumer stops.
	Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error
}

// Handler processes a received message.
//
// When the handler returns nil the message is acknowledged; a non-nil error
// requests redelivery on brokers that support it.
type Handler func(ctx context.Context, msg Message) error

// OutgoingMessage is a broker-agnostic message to be published.
type OutgoingMessage struct {
	// Body is the message payload.
	Body []byte
	// Key is used by Kafka for partitioning; other brokers ignore it.
	Key []byte
}

// Message is a broker-agnostic received message.
type Message interface {
	// Body returns the message payload.
	Body() []byte
	// ID returns the broker message ID, when the broker assigns one.
	ID() string
	// Source returns the topic, subject, or subscription the message came from.
	Source() string
	// Timestamp returns the broker timestamp or the receive time.
	Timestamp() time.Time

	// Ack acknowledges successful processing.
	Ack(ctx context.Context) error
	// Nack requests redelivery; brokers without a negative ack treat this as
	// leaving the message uncommitted.
	Nack(ctx context.Context) error
}
