package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

type recordingProducer struct {
	key, value []byte
	err        error
}

func (r *recordingProducer) Publish(_ context.Context, key, value []byte) error {
	r.key, r.value = key, value
	return r.err
}

func TestKafkaPublisherEncodesEvent(t *testing.T) {
	prod := &recordingProducer{}
	p := NewKafkaPublisher(prod, zap.NewNop())

	err := p.PublishAddToCart(context.Background(), model.AddToCartEvent{
		EventID:   "ev-1",
		EventType: model.EventTypeAddToCart,
		Title:     "Tee",
		Price:     19.5,
		Currency:  "USD",
		Size:      "M",
	})
	require.NoError(t, err)
	require.Equal(t, "ev-1", string(prod.key))

	var got map[string]any
	require.NoError(t, json.Unmarshal(prod.value, &got))
	require.Equal(t, "Tee", got["title"])
	require.Equal(t, "M", got["size"])
	require.NotContains(t, got, "color")
	require.NotContains(t, got, "product")
}

func TestKafkaPublisherReturnsProducerError(t *testing.T) {
	p := NewKafkaPublisher(&recordingProducer{err: errors.New("no leader")}, zap.NewNop())
	require.Error(t, p.PublishAddToCart(context.Background(), model.AddToCartEvent{EventID: "x"}))
}

func TestLogPublisher(t *testing.T) {
	id := "1-m"
	err := NewLogPublisher(zap.NewNop()).PublishAddToCart(context.Background(), model.AddToCartEvent{
		EventID:           "ev-2",
		Product:           &model.EnrichedItem{CatalogItem: model.CatalogItem{ID: "1"}},
		SelectedVariantID: &id,
	})
	require.NoError(t, err)
}
