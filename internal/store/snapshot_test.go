package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProducts(t *testing.T) {
	saved, err := json.Marshal([]Product{{ID: "9", SKU: "GML-X-1", Name: "معطف", Price: 700, Category: "بدل", Image: "i"}})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		products := decodeProducts(saved)
		require.Len(t, products, 1)
		assert.Equal(t, "معطف", products[0].Name)
	})

	t.Run("absent slot falls back to seed data", func(t *testing.T) {
		assert.Equal(t, SeedProducts(), decodeProducts(nil))
	})

	t.Run("malformed slot falls back to seed data", func(t *testing.T) {
		assert.Equal(t, SeedProducts(), decodeProducts([]byte("{not json")))
	})
}

func TestDecodeCategories(t *testing.T) {
	assert.Equal(t, DefaultCategories(), decodeCategories(nil))
	assert.Equal(t, DefaultCategories(), decodeCategories([]byte("42")))
	assert.Equal(t, []string{"بدل"}, decodeCategories([]byte(`["بدل"]`)))
}

func TestDecodeConfig(t *testing.T) {
	t.Run("absent slot falls back to defaults", func(t *testing.T) {
		assert.Equal(t, DefaultConfig(), decodeConfig(nil))
	})

	t.Run("malformed slot falls back to defaults", func(t *testing.T) {
		assert.Equal(t, DefaultConfig(), decodeConfig([]byte("][")))
	})

	t.Run("partial snapshot is normalized field by field", func(t *testing.T) {
		cfg := decodeConfig([]byte(`{"heroTitle":"عنوان مخصص","heroAlignment":"diagonal","heroTitleSize":-3}`))

		def := DefaultConfig()
		assert.Equal(t, "عنوان مخصص", cfg.HeroTitle)
		assert.Equal(t, def.HeroAlignment, cfg.HeroAlignment, "unknown alignment resets to default")
		assert.Equal(t, def.HeroTitleSize, cfg.HeroTitleSize, "non-positive size resets to default")
		assert.Equal(t, def.ContactNumber, cfg.ContactNumber)
	})

	t.Run("valid snapshot survives normalization", func(t *testing.T) {
		custom := DefaultConfig()
		custom.HeroAlignment = AlignLeft
		custom.ContactNumber = "+20 100 000 000"
		raw, err := json.Marshal(custom)
		require.NoError(t, err)

		assert.Equal(t, custom, decodeConfig(raw))
	})
}
