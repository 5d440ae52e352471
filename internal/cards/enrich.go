package cards

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"zero-actions/internal/cache"
	"zero-actions/internal/extract"
	"zero-actions/internal/layout"
	"zero-actions/internal/models"
)

// Chip geometry. Widths are estimated from label length because the server
// never measures text; clients that do measure pass their own charWidth.
const (
	DefaultCharWidth      = 7.5
	DefaultContainerWidth = 360.0

	chipPadding  = 12.0
	chipHeight   = 28.0
	chipHSpacing = 8.0
	chipVSpacing = 8.0

	enrichTTL = 5 * time.Minute
)

var chipCaser = cases.Title(language.English)

// Chip is one laid-out action chip, positioned relative to the chip
// container's top-left corner.
type Chip struct {
	ActionID string  `json:"actionId"`
	Label    string  `json:"label"`
	Row      int     `json:"row"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// Enrichment is the derived, render-ready view of a card: extracted facts
// plus the flowed chip row. Width and Height bound the chip container.
type Enrichment struct {
	Facts  map[string]string `json:"facts,omitempty"`
	Chips  []Chip            `json:"chips,omitempty"`
	Width  float64           `json:"width"`
	Height float64           `json:"height"`
	Cached bool              `json:"cached"`
}

// Enricher computes enrichments and caches them per card and geometry.
// Fact extraction walks every ladder over the card text, so repeat renders
// of the same card at the same width should not pay for it twice.
type Enricher struct {
	cache     *cache.Cache[Enrichment]
	charWidth float64
}

// NewEnricher builds an enricher whose char-width estimate defaults to
// defaultCharWidth when a request does not report one. Non-positive values
// fall back to DefaultCharWidth.
func NewEnricher(defaultCharWidth float64) *Enricher {
	if defaultCharWidth <= 0 {
		defaultCharWidth = DefaultCharWidth
	}
	return &Enricher{cache: cache.New[Enrichment](), charWidth: defaultCharWidth}
}

// Enrich returns facts and chip layout for the card at the given container
// width. Non-positive dimensions fall back to the defaults.
func (e *Enricher) Enrich(card *models.EmailCard, width, charWidth float64) Enrichment {
	if width <= 0 {
		width = DefaultContainerWidth
	}
	if charWidth <= 0 {
		charWidth = e.charWidth
	}

	// charWidth is part of the key: the same card at the same width lays
	// out differently under a different font estimate
	key := fmt.Sprintf("%s:%.0f:%.1f", card.ID, width, charWidth)
	if hit, ok := e.cache.Get(key); ok {
		hit.Cached = true
		return hit
	}

	enrichment := buildEnrichment(card, width, charWidth)
	e.cache.Set(key, enrichment, enrichTTL)
	return enrichment
}

func buildEnrichment(card *models.EmailCard, width, charWidth float64) Enrichment {
	labels := make([]string, len(card.SuggestedActions))
	sizes := make([]layout.Size, len(card.SuggestedActions))
	for i, action := range card.SuggestedActions {
		labels[i] = chipLabel(action)
		sizes[i] = layout.Size{Width: chipWidth(labels[i], charWidth), Height: chipHeight}
	}

	flow := layout.Flow(width, chipHSpacing, chipVSpacing, sizes)
	chips := make([]Chip, 0, len(flow.Placements))
	for _, p := range flow.Placements {
		chips = append(chips, Chip{
			ActionID: card.SuggestedActions[p.Index].ID,
			Label:    labels[p.Index],
			Row:      p.Row,
			X:        p.X,
			Y:        p.Y,
			Width:    p.Size.Width,
			Height:   p.Size.Height,
		})
	}

	return Enrichment{
		Facts:  extract.Facts(card.Text()),
		Chips:  chips,
		Width:  flow.Size.Width,
		Height: flow.Size.Height,
	}
}

func chipWidth(label string, charWidth float64) float64 {
	return 2*chipPadding + charWidth*float64(utf8.RuneCountInString(label))
}

func chipLabel(action models.EmailAction) string {
	if action.DisplayName != "" {
		return action.DisplayName
	}
	return chipCaser.String(strings.ReplaceAll(string(action.Type), "_", " "))
}
