package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := Default()
	require.NoError(t, cat.Validate())
	assert.Len(t, cat.Categories, 10)
	assert.Equal(t, "hours", cat.Categories[0].Name)
	assert.Equal(t, DefaultHighThreshold, cat.HighThreshold)
	assert.Equal(t, DefaultLowThreshold, cat.LowThreshold)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)
	assert.Len(t, cat.Categories, 10)
	assert.Equal(t, DefaultFallbackResponse, cat.FallbackResponse)
}

func TestLoadFromFile(t *testing.T) {
	content := `
high_threshold: 0.9
low_threshold: 0.4
fallback_response: "Sorry, ask again."
categories:
  - name: billing
    keywords: [invoice, bill, charge]
    response: "Billing questions go to billing@example.com."
  - name: outage
    keywords: [down, outage]
    response: "Check status.example.com for incident updates."
`
	path := filepath.Join(t.TempDir(), "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cat.Categories, 2)
	assert.Equal(t, "billing", cat.Categories[0].Name)
	assert.Equal(t, []string{"down", "outage"}, cat.Categories[1].Keywords)
	assert.Equal(t, 0.9, cat.HighThreshold)
	assert.Equal(t, 0.4, cat.LowThreshold)
	assert.Equal(t, "Sorry, ask again.", cat.FallbackResponse)
}

func TestLoadFileKeepsDefaultThresholds(t *testing.T) {
	content := `
categories:
  - name: billing
    keywords: [invoice]
    response: "Billing questions go to billing@example.com."
`
	path := filepath.Join(t.TempDir(), "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultHighThreshold, cat.HighThreshold)
	assert.Equal(t, DefaultLowThreshold, cat.LowThreshold)
	assert.Equal(t, DefaultFallbackResponse, cat.FallbackResponse)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestEnvThresholdOverride(t *testing.T) {
	t.Setenv("FAQ_HIGH_THRESHOLD", "0.95")
	t.Setenv("FAQ_LOW_THRESHOLD", "0.25")

	cat, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.95, cat.HighThreshold)
	assert.Equal(t, 0.25, cat.LowThreshold)
}

func TestEnvThresholdInvalid(t *testing.T) {
	t.Setenv("FAQ_HIGH_THRESHOLD", "not-a-number")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Catalog {
		return &Catalog{
			Categories: []Category{
				{Name: "hours", Keywords: []string{"hours"}, Response: "9-6"},
			},
			HighThreshold:    0.8,
			LowThreshold:     0.5,
			FallbackResponse: "Sorry.",
		}
	}

	tests := []struct {
		name   string
		mutate func(*Catalog)
	}{
		{"no categories", func(c *Catalog) { c.Categories = nil }},
		{"empty name", func(c *Catalog) { c.Categories[0].Name = "" }},
		{"duplicate name", func(c *Catalog) {
			c.Categories = append(c.Categories, c.Categories[0])
		}},
		{"no keywords", func(c *Catalog) { c.Categories[0].Keywords = nil }},
		{"empty keyword", func(c *Catalog) { c.Categories[0].Keywords = []string{""} }},
		{"no response", func(c *Catalog) { c.Categories[0].Response = "" }},
		{"low above high", func(c *Catalog) { c.LowThreshold = 0.9 }},
		{"high above one", func(c *Catalog) { c.HighThreshold = 1.5 }},
		{"negative low", func(c *Catalog) { c.LowThreshold = -0.1 }},
		{"no fallback", func(c *Catalog) { c.FallbackResponse = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(c)
			assert.Error(t, c.Validate())
		})
	}

	assert.NoError(t, base().Validate())
}
