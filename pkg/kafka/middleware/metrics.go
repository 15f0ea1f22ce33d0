package kafka_middleware

import (
	"context"
	"time"

	"cemdon/pkg/kafka"
	"cemdon/pkg/metrics"
)

// MetricsProducerMiddleware records publish counts and latency per topic.
func MetricsProducerMiddleware(m *metrics.EventMetrics) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()
		err := next(ctx, msg)
		m.ObservePublish(msg.Topic, err, time.Since(start).Seconds())
		return err
	}
}
