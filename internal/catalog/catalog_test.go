package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Sizes, 4)
	assert.Len(t, c.Thicknesses, 3)
	assert.Len(t, c.Materials, 3)
	assert.Len(t, c.Colors, 4)
	assert.Len(t, c.CustomOptions, 4)

	assert.Equal(t, 7, c.Delivery.MinimumDays)
	assert.Equal(t, 14, c.Delivery.MaxSelectableDays)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Len(t, c.Sizes, 4)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/catalog.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sizes: []\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestOptionLookups(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	size, ok := c.SizeByID("medium")
	require.True(t, ok)
	assert.Equal(t, "中型 (30x40cm)", size.Name)
	assert.Equal(t, 0.8, size.Price)

	thickness, ok := c.ThicknessByID("thick")
	require.True(t, ok)
	assert.Equal(t, "厚型 (0.08mm)", thickness.Name)

	material, ok := c.MaterialByID("biodegradable")
	require.True(t, ok)
	assert.Equal(t, 0.3, material.Price)

	color, ok := c.ColorByID("transparent")
	require.True(t, ok)
	assert.Equal(t, "透明", color.Name)

	_, ok = c.SizeByID("giant")
	assert.False(t, ok)
}

func TestMinimumQuantity(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 1000, c.MinimumQuantity("small"))
	assert.Equal(t, 500, c.MinimumQuantity("medium"))
	assert.Equal(t, 200, c.MinimumQuantity("xlarge"))
	assert.Equal(t, 100, c.MinimumQuantity("unknown"))
}

func TestCustomOptions_QuoteMarker(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	var quoted, flat int
	for _, opt := range c.CustomOptions {
		if opt.PriceCalculation == PriceByQuote {
			quoted++
		} else {
			assert.Greater(t, opt.Price, 0.0, "flat-priced option %s", opt.ID)
			flat++
		}
	}
	assert.Equal(t, 2, quoted)
	assert.Equal(t, 2, flat)
}
