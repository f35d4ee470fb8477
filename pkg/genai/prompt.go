package genai

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Shadid12/creatives-automation/pkg/brief"
)

// ImagePrompt builds the image-generation prompt for one product, combining
// brand, product metadata and campaign demographics.
func ImagePrompt(b *brief.Brief, p brief.Product) string {
	name := p.Name
	if name == "" {
		name = "a product"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "High-quality advertising product photo for the brand %s. ", b.BrandName)
	fmt.Fprintf(&sb, "Product name: %s. ", name)
	fmt.Fprintf(&sb, "Product description: %s. ", p.Description)
	fmt.Fprintf(&sb, "Target demographic: %s. ", demographicsLine(b.Demographics))

	if len(p.Tags) > 0 {
		fmt.Fprintf(&sb, "Keywords and visual cues: %s. ", strings.Join(p.Tags, ", "))
	}

	sb.WriteString("Style: clean, modern commercial photography, well-lit, realistic, " +
		"studio-quality composition suitable for digital marketing creatives.")
	return sb.String()
}

// MessagingPrompt builds the copywriter prompt. The model is instructed to
// reply with a bare JSON object carrying headline, description and
// call_to_action.
func MessagingPrompt(b *brief.Brief, p brief.Product) string {
	var sb strings.Builder

	sb.WriteString("You are an expert marketing copywriter generating ad copy for a multi-asset campaign.\n")
	fmt.Fprintf(&sb, "- Write copy in locale: %s.\n", b.Locale)
	sb.WriteString("- Use natural, fluent language for that locale, appropriate for the target demographics.\n")
	sb.WriteString("- Keep the headline punchy (max ~8 words) and benefit-driven.\n")
	sb.WriteString("- Make the description a short, punchy sales pitch of 1-2 sentences that targets the given demographics and highlights product benefits.\n")
	sb.WriteString("- The call_to_action should be a short imperative phrase (e.g. 'Shop now').\n\n")

	sb.WriteString("Context:\n")
	fmt.Fprintf(&sb, "- Brand: %q\n", b.BrandName)
	fmt.Fprintf(&sb, "- Campaign: %q\n", b.CampaignName)
	fmt.Fprintf(&sb, "- Product name: %q\n", p.Name)
	fmt.Fprintf(&sb, "- Product description: %s\n", p.Description)
	fmt.Fprintf(&sb, "- Product tags: %s\n", orUnspecified(strings.Join(p.Tags, ", "), "none"))
	fmt.Fprintf(&sb, "- Target demographics: %s\n\n", orUnspecified(demographicsPairs(b.Demographics), "unspecified"))

	sb.WriteString("Return ONLY a valid JSON object with this exact shape and no surrounding commentary:\n")
	sb.WriteString("{\n  \"headline\": \"string\",\n  \"description\": \"string\",\n  \"call_to_action\": \"string\"\n}\n")
	return sb.String()
}

func demographicsLine(demo map[string]string) string {
	if len(demo) == 0 {
		return "General active lifestyle audience"
	}
	return demographicsPairs(demo)
}

// demographicsPairs renders "k: v" pairs in sorted key order so prompts (and
// therefore cache keys) are stable across runs.
func demographicsPairs(demo map[string]string) string {
	keys := make([]string, 0, len(demo))
	for k := range demo {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, demo[k]))
	}
	return strings.Join(parts, "; ")
}

func orUnspecified(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
