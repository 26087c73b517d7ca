// Package eventpublisher publishes ledger events to downstream consumers.
package eventpublisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// EventTransactionPosted is the event name of TransactionPosted.
const EventTransactionPosted = "transaction.posted"

// TransactionPosted is emitted after a transaction has been recorded on a ledger.
type TransactionPosted struct {
	Event       string             `json:"event"`
	Transaction domain.Transaction `json:"transaction"`
	PublishedAt time.Time          `json:"published_at"`
}

// Nop discards all events.
type Nop struct{}

// Publish does nothing.
func (Nop) Publish(context.Context, domain.Transaction) error { return nil }

// Close does nothing.
func (Nop) Close() error { return nil }

// Kafka publishes events to a Kafka topic keyed by ledger id,
// so events of one ledger land on one partition in posting order.
type Kafka struct {
	writer *kafka.Writer
}

// NewKafka returns an asynchronous Kafka publisher. Delivery failures are reported to logger.
func NewKafka(brokers []string, topic string, logger zerolog.Logger) *Kafka {
	return &Kafka{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					logger.Error().Err(err).Int("messages", len(messages)).Msg("cannot deliver ledger events")
				}
			},
		},
	}
}

// Publish enqueues a TransactionPosted event for tx.
func (k *Kafka) Publish(ctx context.Context, tx domain.Transaction) error {
	msg, err := transactionPostedMessage(tx, time.Now().UTC())
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(ctx, msg)
}

// Close flushes pending events and closes the writer.
func (k *Kafka) Close() error {
	return k.writer.Close()
}

func transactionPostedMessage(tx domain.Transaction, now time.Time) (kafka.Message, error) {
	data, err := json.Marshal(TransactionPosted{
		Event:       EventTransactionPosted,
		Transaction: tx,
		PublishedAt: now,
	})
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(tx.LedgerID.String()),
		Value: data,
		Time:  now,
	}, nil
}
