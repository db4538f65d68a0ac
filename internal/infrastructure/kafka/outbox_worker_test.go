package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/eastlane-store/go-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any)        {}
func (noopLogger) Infof(string, ...any)         {}
func (noopLogger) Warnf(string, ...any)         {}
func (noopLogger) Errorf(error, string, ...any) {}

// fakeOutboxRepo отдаёт батчи по одному и запоминает обработанные id.
type fakeOutboxRepo struct {
	batches   [][]*usecase.OutboxEvent
	claimErr  error
	processed []int64
}

func (f *fakeOutboxRepo) Create(_ context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(context.Context, int) ([]*usecase.OutboxEvent, error) {
	if f.claimErr != nil {
		return nil, f.claimErr
	}
	if len(f.batches) == 0 {
		return nil, nil
	}
	batch := f.batches[0]
	f.batches = f.batches[1:]
	return batch, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(_ context.Context, id int64) error {
	f.processed = append(f.processed, id)
	return nil
}

type fakeProducer struct {
	failFor map[int64]error
	written []*usecase.WriteRawMessageReq
}

func (f *fakeProducer) WriteRawMessage(_ context.Context, req *usecase.WriteRawMessageReq) error {
	if err, ok := f.failFor[req.OrderID]; ok {
		return err
	}
	f.written = append(f.written, req)
	return nil
}

func event(id, orderID int64) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{ID: id, EventID: "evt", OrderID: orderID, Payload: []byte(`{}`)}
}

func TestProcessBatch_EmptyOutboxStopsDrain(t *testing.T) {
	repo := &fakeOutboxRepo{}
	w := NewOutboxWorker(repo, noopLogger{}, &fakeProducer{}, "")

	hasMore, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.False(t, hasMore)
}

func TestProcessBatch_PublishesAndMarksProcessed(t *testing.T) {
	repo := &fakeOutboxRepo{batches: [][]*usecase.OutboxEvent{
		{event(1, 100), event(2, 101)},
	}}
	producer := &fakeProducer{}
	w := NewOutboxWorker(repo, noopLogger{}, producer, "")

	hasMore, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.True(t, hasMore)

	require.Len(t, producer.written, 2)
	assert.Equal(t, int64(100), producer.written[0].OrderID)
	assert.Equal(t, []int64{1, 2}, repo.processed)
}

// Недоставленное событие остаётся pending, остальные из батча проходят.
func TestProcessBatch_FailedEventStaysPending(t *testing.T) {
	repo := &fakeOutboxRepo{batches: [][]*usecase.OutboxEvent{
		{event(1, 100), event(2, 101)},
	}}
	producer := &fakeProducer{failFor: map[int64]error{100: errors.New("broker not available")}}
	w := NewOutboxWorker(repo, noopLogger{}, producer, "")

	hasMore, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.True(t, hasMore)
	assert.Equal(t, []int64{2}, repo.processed)
}

func TestProcessBatch_ClaimErrorPropagates(t *testing.T) {
	repo := &fakeOutboxRepo{claimErr: assert.AnError}
	w := NewOutboxWorker(repo, noopLogger{}, &fakeProducer{}, "")

	_, err := w.processBatch(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(errors.New("dial tcp: connection refused")))
	assert.True(t, isRetryableError(errors.New("read: i/o timeout")))
	assert.False(t, isRetryableError(errors.New("unknown topic or partition")))
	assert.False(t, isRetryableError(nil))
}
