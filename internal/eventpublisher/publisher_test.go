package eventpublisher

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/test"
)

func TestNop(t *testing.T) {
	t.Parallel()

	var p Nop

	require.NoError(t, p.Publish(context.Background(), domain.Transaction{}))
	require.NoError(t, p.Close())
}

func TestTransactionPostedMessage(t *testing.T) {
	t.Parallel()

	l := test.RandomLedger(t, uuid.New(), 0)

	tx, err := l.Deposit(test.RandomAmount(t, 1, 1000))
	require.NoError(t, err)

	now := time.Now().UTC()

	msg, err := transactionPostedMessage(tx, now)
	require.NoError(t, err)
	require.Equal(t, l.ID().String(), string(msg.Key))
	require.Equal(t, now, msg.Time)

	var got TransactionPosted
	require.NoError(t, json.Unmarshal(msg.Value, &got))

	want := TransactionPosted{
		Event:       EventTransactionPosted,
		Transaction: tx,
		PublishedAt: now,
	}

	opts := []cmp.Option{
		cmp.AllowUnexported(domain.Money{}),
		cmpopts.EquateApproxTime(time.Microsecond),
	}
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("TransactionPosted mismatch (-want +got):\n%s", diff)
	}
}

func TestNewKafka(t *testing.T) {
	t.Parallel()

	k := NewKafka([]string{"localhost:9092"}, "ledger.transactions", zerolog.Nop())

	require.Equal(t, "ledger.transactions", k.writer.Topic)
	require.True(t, k.writer.Async)
	require.Equal(t, "localhost:9092", k.writer.Addr.String())
}

func TestTransactionPostedRejectsNegativeAmount(t *testing.T) {
	t.Parallel()

	data := []byte(`{"event":"transaction.posted","transaction":{"id":"` + uuid.NewString() +
		`","ledger_id":"` + uuid.NewString() + `","type":"DEPOSIT","amount":-5,"occurred_at":"2024-01-01T00:00:00Z"}}`)

	var got TransactionPosted
	require.ErrorIs(t, json.Unmarshal(data, &got), domain.ErrInvalidAmount)
}
