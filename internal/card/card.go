// Package card holds the per-product purchase widget state: the current
// selection, the resolved availability and the add-to-cart gate. One Card
// is constructed for each product shown.
package card

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fekuna/omnipos-storefront-service/internal/availability"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

const (
	DefaultCurrency = "USD"
	DefaultPulse    = 1100 * time.Millisecond
)

// Emitter receives add-to-cart events from a card.
type Emitter interface {
	EmitAddToCart(ctx context.Context, event model.AddToCartEvent) error
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(ctx context.Context, event model.AddToCartEvent) error

func (f EmitterFunc) EmitAddToCart(ctx context.Context, event model.AddToCartEvent) error {
	return f(ctx, event)
}

// State is the rendered view of a card. Available, AriaDisabled and
// OutOfStockVisible are always derived from the same resolution.
type State struct {
	Available         bool            `json:"available"`
	AriaDisabled      bool            `json:"ariaDisabled"`
	OutOfStockVisible bool            `json:"outOfStockVisible"`
	ButtonLabel       string          `json:"buttonLabel"`
	JustAdded         bool            `json:"justAdded"`
	Selection         model.Selection `json:"selection"`
}

type kind int

const (
	kindCombination kind = iota
	kindVariant
)

// ComboProps describe a card that selects size and color independently
// and resolves against a combination map.
type ComboProps struct {
	Title        string
	Price        float64
	Currency     string
	Sizes        []string
	Colors       []string
	Availability availability.Map
	InitialSize  string
	InitialColor string
}

type Option func(*Card)

func WithEmitter(e Emitter) Option {
	return func(c *Card) { c.emitter = e }
}

func WithLabels(l Labels) Option {
	return func(c *Card) { c.labels = l }
}

// WithPulse sets how long the "added" confirmation stays on.
func WithPulse(d time.Duration) Option {
	return func(c *Card) { c.pulse = d }
}

type Card struct {
	mu sync.Mutex

	kind     kind
	title    string
	price    float64
	currency string

	sizes  []string
	colors []string
	combos availability.Map

	item *model.EnrichedItem

	sel       model.Selection
	available bool

	justAdded  bool
	pulse      time.Duration
	pulseTimer *time.Timer

	emitter Emitter
	labels  Labels
	now     func() time.Time
}

func newCard(k kind, opts []Option) *Card {
	c := &Card{
		kind:   k,
		pulse:  DefaultPulse,
		labels: DefaultLabels(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewComboCard builds a combination-map card. The initial selection is
// the given initial size/color, else the first entry of each axis.
func NewComboCard(props ComboProps, opts ...Option) *Card {
	c := newCard(kindCombination, opts)
	c.title = props.Title
	c.price = props.Price
	c.currency = props.Currency
	if c.currency == "" {
		c.currency = DefaultCurrency
	}
	c.sizes = append([]string(nil), props.Sizes...)
	c.colors = append([]string(nil), props.Colors...)
	c.combos = props.Availability

	c.sel.Size = firstNonEmpty(props.InitialSize, first(c.sizes))
	c.sel.Color = firstNonEmpty(props.InitialColor, first(c.colors))
	c.resolve()
	return c
}

// NewVariantCard builds a card over an enriched item's variant list,
// starting on the item's default variant.
func NewVariantCard(item *model.EnrichedItem, opts ...Option) *Card {
	c := newCard(kindVariant, opts)
	c.item = item
	if item != nil {
		c.title = item.Title
		c.price = item.Price
		if item.DefaultVariantID != nil {
			c.sel.VariantID = *item.DefaultVariantID
		}
	}
	c.currency = DefaultCurrency
	c.resolve()
	return c
}

// resolve recomputes availability from the current selection. Callers
// hold c.mu or own c exclusively.
func (c *Card) resolve() {
	switch c.kind {
	case kindVariant:
		c.available = availability.ResolveVariant(c.item, c.sel.VariantID)
	default:
		c.available = availability.ResolveCombination(c.sel, c.combos)
	}
}

func (c *Card) SelectSize(size string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.Size = size
	c.resolve()
	return c.stateLocked()
}

func (c *Card) SelectColor(color string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.Color = color
	c.resolve()
	return c.stateLocked()
}

func (c *Card) SelectVariant(id string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.VariantID = id
	c.resolve()
	return c.stateLocked()
}

// Apply sets every non-empty field of sel and re-resolves once.
func (c *Card) Apply(sel model.Selection) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if sel.Size != "" {
		c.sel.Size = sel.Size
	}
	if sel.Color != "" {
		c.sel.Color = sel.Color
	}
	if sel.VariantID != "" {
		c.sel.VariantID = sel.VariantID
	}
	c.resolve()
	return c.stateLocked()
}

func (c *Card) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Card) stateLocked() State {
	label := c.labels.AddToCart
	switch {
	case !c.available && c.kind == kindVariant:
		label = c.labels.OutOfStock
	case c.justAdded:
		label = c.labels.Added
	}
	return State{
		Available:         c.available,
		AriaDisabled:      !c.available,
		OutOfStockVisible: !c.available,
		ButtonLabel:       label,
		JustAdded:         c.justAdded,
		Selection:         c.sel,
	}
}

// AddToCart emits an add-to-cart event for the current selection. While the
// selection is unavailable it emits nothing and returns a nil event.
func (c *Card) AddToCart(ctx context.Context) (*model.AddToCartEvent, error) {
	c.mu.Lock()
	if !c.available {
		c.mu.Unlock()
		return nil, nil
	}
	event := c.eventLocked()
	emitter := c.emitter
	c.mu.Unlock()

	if emitter != nil {
		if err := emitter.EmitAddToCart(ctx, event); err != nil {
			return nil, err
		}
	}

	c.mu.Lock()
	c.startPulseLocked()
	c.mu.Unlock()
	return &event, nil
}

func (c *Card) eventLocked() model.AddToCartEvent {
	event := model.AddToCartEvent{
		EventID:   uuid.New().String(),
		EventType: model.EventTypeAddToCart,
		Timestamp: c.now().UTC(),
	}
	if c.kind == kindVariant {
		event.Product = c.item
		if v := c.item.FindVariant(c.sel.VariantID); v != nil {
			id := v.ID
			event.SelectedVariantID = &id
		}
		return event
	}
	event.Title = c.title
	event.Price = c.price
	event.Currency = c.currency
	event.Size = c.sel.Size
	event.Color = c.sel.Color
	return event
}

// startPulseLocked turns on the confirmation and re-arms its reset,
// superseding any reset still pending from an earlier click.
func (c *Card) startPulseLocked() {
	c.justAdded = true
	if c.pulseTimer != nil {
		c.pulseTimer.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(c.pulse, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.pulseTimer == timer {
			c.justAdded = false
			c.pulseTimer = nil
		}
	})
	c.pulseTimer = timer
}

// Close cancels a pending confirmation reset.
func (c *Card) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pulseTimer != nil {
		c.pulseTimer.Stop()
		c.pulseTimer = nil
	}
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
