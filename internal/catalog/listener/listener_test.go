package listener

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
)

type queueReader struct {
	mu   sync.Mutex
	msgs []kafka.Message
	errs []error
}

func (q *queueReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	q.mu.Lock()
	if len(q.errs) > 0 {
		err := q.errs[0]
		q.errs = q.errs[1:]
		q.mu.Unlock()
		return kafka.Message{}, err
	}
	if len(q.msgs) > 0 {
		msg := q.msgs[0]
		q.msgs = q.msgs[1:]
		q.mu.Unlock()
		return msg, nil
	}
	q.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

type reloadCounter struct {
	catalog.UseCase
	mu      sync.Mutex
	reloads int
}

func (r *reloadCounter) Reload(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reloads++
	return nil
}

func (r *reloadCounter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reloads
}

func TestListenerReloadsOnCatalogUpdated(t *testing.T) {
	reader := &queueReader{
		errs: []error{errors.New("broker hiccup")},
		msgs: []kafka.Message{
			{Value: []byte(`{"event_id":"e1","event_type":"PriceChanged"}`)},
			{Value: []byte(`not json`)},
			{Value: []byte(`{"event_id":"e2","event_type":"CatalogUpdated"}`)},
		},
	}
	uc := &reloadCounter{}
	l := NewCatalogListener(reader, uc, zap.NewNop())
	l.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return uc.count() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
	require.Equal(t, 1, uc.count())
}
