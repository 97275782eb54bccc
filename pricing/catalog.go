package pricing

import (
	_ "embed"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// NoCardID is the "no card" option shown next to the real tiers.
const NoCardID = "none"

//go:embed club_cards.yaml
var defaultCatalog []byte

var (
	ErrUnknownCard    = errors.New("unknown club card")
	ErrInvalidCatalog = errors.New("invalid club card catalog")
)

type LocalizedText struct {
	FR string `json:"fr" yaml:"fr"`
	EN string `json:"en" yaml:"en"`
}

// In returns the text for lang, falling back to French.
func (t LocalizedText) In(lang string) string {
	if lang == "en" && t.EN != "" {
		return t.EN
	}
	return t.FR
}

type DiscountCard struct {
	ID              string          `json:"id"`
	Name            LocalizedText   `json:"name"`
	TermMonths      int             `json:"termMonths"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent int             `json:"discountPercent"`
}

type cardFile struct {
	Cards []struct {
		ID              string        `yaml:"id"`
		Name            LocalizedText `yaml:"name"`
		TermMonths      int           `yaml:"term_months"`
		UnitPrice       float64       `yaml:"unit_price"`
		DiscountPercent int           `yaml:"discount_percent"`
	} `yaml:"cards"`
}

// Catalog is the ordered, read-only list of club card tiers.
type Catalog struct {
	cards []DiscountCard
	byID  map[string]int
}

// DefaultCatalog returns the embedded tiers. It panics only if the embedded
// file is broken, which the package tests guard against.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog reads tiers from a YAML file. An empty path yields the embedded default.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return ParseCatalog(defaultCatalog)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read club card catalog %s", path)
	}
	c, err := ParseCatalog(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "load club card catalog %s", path)
	}
	return c, nil
}

func ParseCatalog(raw []byte) (*Catalog, error) {
	var f cardFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, "decode club card yaml")
	}

	c := &Catalog{byID: make(map[string]int, len(f.Cards))}
	for i, entry := range f.Cards {
		id := strings.TrimSpace(entry.ID)
		switch {
		case id == "" || id == NoCardID:
			return nil, errors.Wrapf(ErrInvalidCatalog, "card #%d: id %q is reserved or empty", i, id)
		case entry.TermMonths <= 0:
			return nil, errors.Wrapf(ErrInvalidCatalog, "card %s: term_months must be positive", id)
		case entry.UnitPrice < 0:
			return nil, errors.Wrapf(ErrInvalidCatalog, "card %s: unit_price is negative", id)
		case entry.DiscountPercent < 0 || entry.DiscountPercent > 100:
			return nil, errors.Wrapf(ErrInvalidCatalog, "card %s: discount_percent out of [0,100]", id)
		}
		if _, dup := c.byID[id]; dup {
			return nil, errors.Wrapf(ErrInvalidCatalog, "duplicate card id %s", id)
		}

		c.byID[id] = len(c.cards)
		c.cards = append(c.cards, DiscountCard{
			ID:              id,
			Name:            entry.Name,
			TermMonths:      entry.TermMonths,
			UnitPrice:       decimal.NewFromFloat(entry.UnitPrice),
			DiscountPercent: entry.DiscountPercent,
		})
	}
	if len(c.cards) == 0 {
		return nil, errors.Wrap(ErrInvalidCatalog, "no cards")
	}
	return c, nil
}

// Cards returns a copy of the tiers in display order.
func (c *Catalog) Cards() []DiscountCard {
	out := make([]DiscountCard, len(c.cards))
	copy(out, c.cards)
	return out
}

// Lookup resolves a card id. The empty id and NoCardID resolve to (nil, nil).
func (c *Catalog) Lookup(id string) (*DiscountCard, error) {
	id = strings.TrimSpace(id)
	if id == "" || id == NoCardID {
		return nil, nil
	}
	i, ok := c.byID[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCard, "id %s", id)
	}
	card := c.cards[i]
	return &card, nil
}
