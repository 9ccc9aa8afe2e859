// Package messaging provides a broker-agnostic API for publishing and
// consuming event messages.
//
// Four backends are supported: Kafka, NATS, NSQ, and Google Pub/Sub. The
// active backend is selected by driver name through NewFromDriver, so the
// notification pipeline does not change when the broker does.
package messaging
