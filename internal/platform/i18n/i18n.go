// Package i18n localizes the storefront's shopper-facing strings.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const (
	MsgAddToCart     = "card.add_to_cart"
	MsgAdded         = "card.added"
	MsgOutOfStock    = "card.out_of_stock"
	MsgSelectVariant = "card.select_variant"
)

//go:embed locales/*.json
var locales embed.FS

type Translator struct {
	bundle *goi18n.Bundle
}

// New loads every embedded locale file. English is the fallback language.
func New() (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.json")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		data, err := locales.ReadFile(f)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, path.Base(f)); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
	}
	return &Translator{bundle: bundle}, nil
}

// Localizer returns a localizer for the given Accept-Language style tags.
func (t *Translator) Localizer(langs ...string) *Localizer {
	return &Localizer{l: goi18n.NewLocalizer(t.bundle, langs...)}
}

type Localizer struct {
	l *goi18n.Localizer
}

// T localizes id, returning id itself when no translation exists.
func (l *Localizer) T(id string, data map[string]any) string {
	msg, err := l.l.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
