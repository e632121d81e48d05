package publisher

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/logger"
)

type Producer interface {
	Publish(ctx context.Context, key, value []byte) error
}

// KafkaPublisher writes add-to-cart events keyed by event id.
type KafkaPublisher struct {
	producer Producer
	logger   logger.ZapLogger
}

func NewKafkaPublisher(producer Producer, log logger.ZapLogger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, logger: log}
}

func (p *KafkaPublisher) PublishAddToCart(ctx context.Context, event model.AddToCartEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := p.producer.Publish(ctx, []byte(event.EventID), value); err != nil {
		p.logger.Error("failed to publish add-to-cart event", zap.String("event_id", event.EventID), zap.Error(err))
		return err
	}
	return nil
}

// LogPublisher only logs events. Used when no broker is configured.
type LogPublisher struct {
	logger logger.ZapLogger
}

func NewLogPublisher(log logger.ZapLogger) *LogPublisher {
	return &LogPublisher{logger: log}
}

func (p *LogPublisher) PublishAddToCart(_ context.Context, event model.AddToCartEvent) error {
	fields := []zap.Field{
		zap.String("event_id", event.EventID),
		zap.String("size", event.Size),
		zap.String("color", event.Color),
	}
	if event.Product != nil {
		fields = append(fields, zap.String("product_id", event.Product.ID.String()))
	}
	if event.SelectedVariantID != nil {
		fields = append(fields, zap.String("variant_id", *event.SelectedVariantID))
	}
	p.logger.Info("add-to-cart", fields...)
	return nil
}
