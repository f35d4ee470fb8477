package genai

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Shadid12/creatives-automation/pkg/brief"
	"github.com/Shadid12/creatives-automation/pkg/creative"
)

// TextModel completes a prompt with text. Implemented by Client; tests swap
// in local fakes.
type TextModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// MessagingGenerator produces per-product messaging from an LLM, degrading
// field-by-field to the brief's campaign-level messaging whenever the model
// is unavailable, fails, or returns something unparseable. Messaging
// generation never fails a pipeline run.
type MessagingGenerator struct {
	// Model may be nil, in which case the campaign messaging is used as-is.
	Model  TextModel
	Logger *log.Logger
}

// messagingPayload is the JSON shape requested from the model.
type messagingPayload struct {
	Headline     string `json:"headline"`
	Description  string `json:"description"`
	CallToAction string `json:"call_to_action"`
	CTA          string `json:"cta"` // some models shorten the field name
}

// Generate returns the finalized messaging for one product. It is computed
// once per product and reused unchanged across every aspect ratio.
func (g *MessagingGenerator) Generate(ctx context.Context, b *brief.Brief, p brief.Product) creative.Messaging {
	fallback := creative.Messaging{
		Headline:     b.Messaging.Headline,
		Description:  b.Messaging.Description,
		CallToAction: b.Messaging.CallToAction,
	}
	if fallback.Headline == "" {
		fallback.Headline = b.CampaignName
	}

	if g.Model == nil {
		return fallback
	}

	raw, err := g.Model.Complete(ctx, MessagingPrompt(b, p))
	if err != nil {
		g.logger().Warn("messaging generation failed, using campaign messaging",
			"product", p.Key(), "err", err)
		return fallback
	}

	var payload messagingPayload
	if err := json.Unmarshal([]byte(stripFences(raw)), &payload); err != nil {
		g.logger().Warn("unparseable messaging response, using campaign messaging",
			"product", p.Key(), "err", err)
		return fallback
	}

	msg := creative.Messaging{
		Headline:     strings.TrimSpace(payload.Headline),
		Description:  strings.TrimSpace(payload.Description),
		CallToAction: strings.TrimSpace(payload.CallToAction),
	}
	if msg.CallToAction == "" {
		msg.CallToAction = strings.TrimSpace(payload.CTA)
	}

	// Field-by-field fallback keeps partial model output usable.
	if msg.Headline == "" {
		msg.Headline = fallback.Headline
	}
	if msg.Description == "" {
		msg.Description = fallback.Description
	}
	if msg.CallToAction == "" {
		msg.CallToAction = fallback.CallToAction
	}
	return msg
}

func (g *MessagingGenerator) logger() *log.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return log.Default()
}

// stripFences removes a markdown code fence around a JSON response, a common
// model habit even when asked for bare JSON.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
