package catalog

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default confidence thresholds, overridable via FAQ_HIGH_THRESHOLD and
// FAQ_LOW_THRESHOLD or the catalog file.
const (
	DefaultHighThreshold = 0.80
	DefaultLowThreshold  = 0.55
)

// DefaultFallbackResponse is returned when no category clears the low threshold.
const DefaultFallbackResponse = "I didn't quite understand that. Please contact our support team for further assistance."

// Category is a named FAQ topic with its trigger keywords and canned response
type Category struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Response string   `yaml:"response" json:"response"`
}

// Catalog is the read-only set of FAQ categories plus the confidence
// thresholds. Declaration order matters: it is the final tie-break during
// matching, so categories are kept as an ordered slice.
type Catalog struct {
	Categories       []Category `yaml:"categories"`
	HighThreshold    float64    `yaml:"high_threshold"`
	LowThreshold     float64    `yaml:"low_threshold"`
	FallbackResponse string     `yaml:"fallback_response"`
}

// Default returns the built-in catalog of common customer support topics
func Default() *Catalog {
	return &Catalog{
		Categories: []Category{
			{
				Name:     "hours",
				Keywords: []string{"hours", "open", "close", "time", "available"},
				Response: "Our business hours are Monday-Friday, 9 AM - 6 PM EST. Weekends: Closed.",
			},
			{
				Name:     "shipping",
				Keywords: []string{"ship", "delivery", "deliver", "send", "arrive"},
				Response: "Standard shipping takes 5-7 business days. Express shipping available in 2-3 days.",
			},
			{
				Name:     "returns",
				Keywords: []string{"return", "refund", "exchange", "back"},
				Response: "We accept returns within 30 days of purchase. Item must be unused and in original packaging.",
			},
			{
				Name:     "payment",
				Keywords: []string{"pay", "card", "payment", "method", "accept"},
				Response: "We accept all major credit cards, PayPal, and Apple Pay.",
			},
			{
				Name:     "account",
				Keywords: []string{"account", "password", "login", "reset"},
				Response: "You can reset your password on the login page using 'Forgot Password' option.",
			},
			{
				Name:     "contact",
				Keywords: []string{"contact", "support", "help", "call", "email"},
				Response: "You can reach our support team at support@example.com or call 1-800-SUPPORT.",
			},
			{
				Name:     "tracking",
				Keywords: []string{"track", "order", "where", "status"},
				Response: "Enter your order number at checkout to track your shipment in real-time.",
			},
			{
				Name:     "price",
				Keywords: []string{"price", "cost", "cheap", "discount", "sale"},
				Response: "We offer competitive pricing and regular discounts. Subscribe to our newsletter for deals.",
			},
			{
				Name:     "products",
				Keywords: []string{"product", "item", "catalog", "recommend"},
				Response: "Browse our full catalog at our website or contact support for personalized recommendations.",
			},
			{
				Name:     "security",
				Keywords: []string{"secure", "safe", "encrypt", "privacy"},
				Response: "Your data is encrypted with 256-bit SSL security. We never share personal information.",
			},
		},
		HighThreshold:    DefaultHighThreshold,
		LowThreshold:     DefaultLowThreshold,
		FallbackResponse: DefaultFallbackResponse,
	}
}

// Load builds the catalog for this process. An empty path returns the
// built-in defaults. In both cases the FAQ_HIGH_THRESHOLD and
// FAQ_LOW_THRESHOLD environment variables override the thresholds, and the
// result is validated before use.
func Load(path string) (*Catalog, error) {
	cat := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
		}

		loaded := &Catalog{
			HighThreshold:    DefaultHighThreshold,
			LowThreshold:     DefaultLowThreshold,
			FallbackResponse: DefaultFallbackResponse,
		}
		if err := yaml.Unmarshal(data, loaded); err != nil {
			return nil, errors.Wrapf(err, "failed to parse catalog file %s", path)
		}
		cat = loaded
	}

	if err := applyEnvThresholds(cat); err != nil {
		return nil, err
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

func applyEnvThresholds(cat *Catalog) error {
	if v := os.Getenv("FAQ_HIGH_THRESHOLD"); v != "" {
		high, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrap(err, "invalid FAQ_HIGH_THRESHOLD")
		}
		cat.HighThreshold = high
	}
	if v := os.Getenv("FAQ_LOW_THRESHOLD"); v != "" {
		low, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrap(err, "invalid FAQ_LOW_THRESHOLD")
		}
		cat.LowThreshold = low
	}
	return nil
}

// Validate checks the catalog invariants: at least one category, unique
// non-empty names, non-empty keyword sets and responses, and ordered
// thresholds within [0, 1].
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return errors.New("catalog has no categories")
	}

	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return errors.New("catalog category with empty name")
		}
		if seen[cat.Name] {
			return errors.Errorf("duplicate catalog category %q", cat.Name)
		}
		seen[cat.Name] = true

		if len(cat.Keywords) == 0 {
			return errors.Errorf("category %q has no keywords", cat.Name)
		}
		for _, kw := range cat.Keywords {
			if kw == "" {
				return errors.Errorf("category %q has an empty keyword", cat.Name)
			}
		}
		if cat.Response == "" {
			return errors.Errorf("category %q has no response", cat.Name)
		}
	}

	if c.LowThreshold < 0 || c.HighThreshold > 1 || c.LowThreshold > c.HighThreshold {
		return errors.Errorf("invalid thresholds: low=%.2f high=%.2f (need 0 <= low <= high <= 1)",
			c.LowThreshold, c.HighThreshold)
	}
	if c.FallbackResponse == "" {
		return errors.New("catalog has no fallback response")
	}
	return nil
}
