package notify

import (
	"context"

	"flightdesk/pkg/logger"
	"flightdesk/pkg/metrics"
)

// Producer is the slice of the Kafka producer the notifier needs.
type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Notifier is the single emission point services call after a successful
// mutation. It pushes the event to connected clients via the hub and then
// publishes it to the notifications topic for the worker. Both legs are
// best-effort: failures are logged and never returned.
type Notifier struct {
	hub      *Hub
	producer Producer
	topic    string
	log      logger.Logger
	metrics  *metrics.Metrics
}

type NotifierOption func(*Notifier)

func WithProducer(producer Producer, topic string) NotifierOption {
	return func(n *Notifier) {
		n.producer = producer
		n.topic = topic
	}
}

func WithMetrics(m *metrics.Metrics) NotifierOption {
	return func(n *Notifier) {
		n.metrics = m
	}
}

func NewNotifier(hub *Hub, log logger.Logger, opts ...NotifierOption) *Notifier {
	n := &Notifier{hub: hub, log: log}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Notifier) Emit(ctx context.Context, name string, payload interface{}) {
	ev := Event{Name: name, Payload: payload}

	n.hub.Broadcast(ev)
	if n.metrics != nil {
		n.metrics.EventsBroadcast.WithLabelValues(name).Inc()
	}

	if n.producer == nil || n.topic == "" {
		return
	}
	if err := n.producer.Publish(ctx, n.topic, name, ev); err != nil {
		n.log.Warn("publish notification failed", "event", name, "error", err)
		return
	}
	if n.metrics != nil {
		n.metrics.EventsPublished.Inc()
	}
}
