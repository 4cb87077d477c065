package activity

import (
	"context"
	"encoding/json"
	"time"

	"market-intel-srv/pkg/kafka"
	"market-intel-srv/pkg/log"
)

type kafkaEmitter struct {
	producer kafka.IProducer
	l        log.Logger
}

// NewKafkaEmitter creates an Emitter backed by a Kafka producer.
func NewKafkaEmitter(producer kafka.IProducer, l log.Logger) Emitter {
	return &kafkaEmitter{
		producer: producer,
		l:        l,
	}
}

func (e *kafkaEmitter) Emit(ctx context.Context, ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		e.l.Warnf(ctx, "activity.Emit: failed to marshal event: %v", err)
		return
	}

	if err := e.producer.Publish([]byte(ev.UserID), payload); err != nil {
		e.l.Warnf(ctx, "activity.Emit: failed to publish event %s: %v", ev.Type, err)
	}
}

type noopEmitter struct{}

// NewNoop returns an Emitter that discards all events. Useful in tests
// and when Kafka is not configured.
func NewNoop() Emitter {
	return noopEmitter{}
}

func (noopEmitter) Emit(ctx context.Context, ev Event) {}
