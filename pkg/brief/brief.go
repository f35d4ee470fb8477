// Package brief loads and models declarative campaign briefs.
//
// A brief names the campaign, carries the brand palette and campaign-level
// messaging, and lists the products to produce creatives for. Briefs are
// written as JSON or TOML; the format is dispatched on file extension the
// same way for both.
package brief

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Shadid12/creatives-automation/pkg/errors"
)

// Defaults applied when a brief omits the corresponding field.
const (
	DefaultPrimaryColor   = "#111827"
	DefaultSecondaryColor = "#F97316"
	DefaultLocale         = "en-US"
)

// Messaging is campaign-level copy. It seeds per-product messaging and acts
// as the fallback whenever generation is unavailable or fails.
type Messaging struct {
	Headline     string `json:"headline" toml:"headline"`
	Description  string `json:"description" toml:"description"`
	CallToAction string `json:"call_to_action" toml:"call_to_action"`
}

// Product is one item of the campaign.
type Product struct {
	ID          string   `json:"id" toml:"id"`
	SKU         string   `json:"sku" toml:"sku"`
	Name        string   `json:"name" toml:"name"`
	Description string   `json:"description" toml:"description"`
	Tags        []string `json:"tags" toml:"tags"`
	// AssetPath points at a pre-provided base image, relative to the input
	// assets directory. Empty means the image is discovered by filename or
	// generated.
	AssetPath string `json:"asset_path" toml:"asset_path"`
}

// Key returns the product's identifier with the id → sku → name precedence.
func (p Product) Key() string {
	switch {
	case p.ID != "":
		return p.ID
	case p.SKU != "":
		return p.SKU
	default:
		return p.Name
	}
}

// Slug returns the filesystem-safe form of the product key.
func (p Product) Slug() string {
	return Slugify(p.Key())
}

// Brief is a parsed campaign brief.
type Brief struct {
	CampaignID     string            `json:"campaign_id" toml:"campaign_id"`
	CampaignName   string            `json:"campaign_name" toml:"campaign_name"`
	BrandName      string            `json:"brand_name" toml:"brand_name"`
	PrimaryColor   string            `json:"primary_color" toml:"primary_color"`
	SecondaryColor string            `json:"secondary_color" toml:"secondary_color"`
	Messaging      Messaging         `json:"messaging" toml:"messaging"`
	Products       []Product         `json:"products" toml:"products"`
	Locale         string            `json:"locale" toml:"locale"`
	Demographics   map[string]string `json:"demographics" toml:"demographics"`
	FontPath       string            `json:"font_path" toml:"font_path"`
}

// Load reads and decodes a brief file, applying defaults. Supported formats
// are JSON (.json) and TOML (.toml), dispatched on extension.
func Load(path string) (*Brief, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeBriefNotFound, err, "brief file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBrief, err, "read brief %s", path)
	}

	var b Brief
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBrief, err, "decode JSON brief %s", path)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &b); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBrief, err, "decode TOML brief %s", path)
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported brief format %q (want .json or .toml)", ext)
	}

	b.applyDefaults()
	if err := b.validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *Brief) applyDefaults() {
	if b.PrimaryColor == "" {
		b.PrimaryColor = DefaultPrimaryColor
	}
	if b.SecondaryColor == "" {
		b.SecondaryColor = DefaultSecondaryColor
	}
	if b.Locale == "" {
		b.Locale = DefaultLocale
	}
	// The campaign name is the headline of last resort.
	if b.Messaging.Headline == "" {
		b.Messaging.Headline = b.CampaignName
	}
}

func (b *Brief) validate() error {
	if err := errors.ValidateCampaignID(b.CampaignID); err != nil {
		return err
	}
	if b.CampaignName == "" {
		return errors.New(errors.ErrCodeInvalidBrief, "campaign_name is required")
	}
	for _, p := range b.Products {
		if p.Key() == "" {
			return errors.New(errors.ErrCodeInvalidBrief, "every product needs an id, sku or name")
		}
		if p.AssetPath != "" {
			if err := errors.ValidateAssetPath(p.AssetPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// Slugify lowercases text and collapses every non-alphanumeric run into a
// single dash. An all-symbol input slugs to "item" so callers always get a
// usable path component.
func Slugify(text string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('-')
		}
	}
	slug := sb.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "item"
	}
	return slug
}
