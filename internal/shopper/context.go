package shopper

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"
)

const DefaultCurrency = "USD"

type ctxKey int

const (
	localeKey ctxKey = iota
	currencyKey
)

func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey, locale)
}

func WithCurrency(ctx context.Context, currency string) context.Context {
	return context.WithValue(ctx, currencyKey, currency)
}

// GetLocale returns the shopper's preferred languages, from the context
// first and then from the x-locale metadata header.
func GetLocale(ctx context.Context) string {
	if val, ok := ctx.Value(localeKey).(string); ok && val != "" {
		return val
	}
	return fromMetadata(ctx, "x-locale")
}

// GetCurrency returns the display currency, defaulting to USD.
func GetCurrency(ctx context.Context) string {
	if val, ok := ctx.Value(currencyKey).(string); ok && val != "" {
		return val
	}
	if val := fromMetadata(ctx, "x-currency"); val != "" {
		return strings.ToUpper(val)
	}
	return DefaultCurrency
}

func fromMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if val := md.Get(key); len(val) > 0 {
		return strings.TrimSpace(val[0])
	}
	return ""
}
