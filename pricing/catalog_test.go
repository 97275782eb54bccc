package pricing

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cards := DefaultCatalog().Cards()
	require.Len(t, cards, 3)

	want := []struct {
		id      string
		term    int
		price   int64
		percent int
	}{
		{"12months", 12, 90, 10},
		{"24months", 24, 150, 15},
		{"36months", 36, 140, 20},
	}
	for i, w := range want {
		assert.Equal(t, w.id, cards[i].ID)
		assert.Equal(t, w.term, cards[i].TermMonths)
		assert.True(t, decimal.NewFromInt(w.price).Equal(cards[i].UnitPrice))
		assert.Equal(t, w.percent, cards[i].DiscountPercent)
		assert.NotEmpty(t, cards[i].Name.FR)
		assert.NotEmpty(t, cards[i].Name.EN)
	}
}

func TestCatalogLookup(t *testing.T) {
	c := DefaultCatalog()

	for _, id := range []string{"", NoCardID, "  none "} {
		got, err := c.Lookup(id)
		assert.NoError(t, err)
		assert.Nil(t, got)
	}

	_, err := c.Lookup("48months")
	assert.True(t, errors.Is(err, ErrUnknownCard))

	got, err := c.Lookup("24months")
	require.NoError(t, err)
	got.DiscountPercent = 99
	again, _ := c.Lookup("24months")
	assert.Equal(t, 15, again.DiscountPercent)
}

func TestParseCatalogRejectsBadEntries(t *testing.T) {
	tests := map[string]string{
		"empty":     "cards: []",
		"reserved":  "cards: [{id: none, term_months: 12, unit_price: 1, discount_percent: 1}]",
		"term":      "cards: [{id: a, term_months: 0, unit_price: 1, discount_percent: 1}]",
		"price":     "cards: [{id: a, term_months: 12, unit_price: -1, discount_percent: 1}]",
		"percent":   "cards: [{id: a, term_months: 12, unit_price: 1, discount_percent: 101}]",
		"duplicate": "cards: [{id: a, term_months: 12, unit_price: 1, discount_percent: 1}, {id: a, term_months: 24, unit_price: 1, discount_percent: 1}]",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(raw))
			assert.True(t, errors.Is(err, ErrInvalidCatalog), "got %v", err)
		})
	}

	_, err := ParseCatalog([]byte("cards: ["))
	assert.Error(t, err)
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.yaml")
	raw := `cards:
  - id: summer
    term_months: 6
    unit_price: 49.5
    discount_percent: 5
    name: {fr: Été, en: Summer}
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	got, err := c.Lookup("summer")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("49.5").Equal(got.UnitPrice))
	assert.Equal(t, "Summer", got.Name.In("en"))
	assert.Equal(t, "Été", got.Name.In("de"))

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	def, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Len(t, def.Cards(), 3)
}
