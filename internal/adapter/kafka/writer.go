// Package kafka publishes severe affected-area alerts for downstream
// responder tooling. Optional: the feed works standalone without a broker.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/relief-analyzer-service/internal/config"
	"github.com/couchcryptid/relief-analyzer-service/internal/domain"
)

// Writer produces affected-area alert messages to the alert topic.
// It implements report.AlertPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured alert topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaAlertTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishAlerts serializes and publishes the records in a single
// WriteMessages call, keyed by location name so per-location ordering holds.
func (w *Writer) PublishAlerts(ctx context.Context, records []domain.AffectedAreaRecord) error {
	if len(records) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(records))
	for i := range records {
		msg, err := serializeToMessage(records[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals an affected-area record into a Kafka message.
func serializeToMessage(record domain.AffectedAreaRecord) (kafkago.Message, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize affected area: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(record.Location),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "severity", Value: []byte(record.Assessment.Severity)},
			{Key: "event_time", Value: []byte(record.TriggeringEvent.OccurredAt.Format(time.RFC3339))},
		},
	}, nil
}
