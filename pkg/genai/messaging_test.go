package genai

import (
	"context"
	"errors"
	"testing"

	"github.com/Shadid12/creatives-automation/pkg/brief"
)

type fakeModel struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeModel) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func testBrief() *brief.Brief {
	return &brief.Brief{
		CampaignID:   "summer-launch",
		CampaignName: "Summer Launch",
		BrandName:    "Stride",
		Locale:       "en-US",
		Messaging: brief.Messaging{
			Headline:     "Run Faster",
			Description:  "The season's lightest gear.",
			CallToAction: "Shop now",
		},
		Demographics: map[string]string{"age": "18-35", "interest": "running"},
	}
}

func testProduct() brief.Product {
	return brief.Product{ID: "shoe-01", Name: "Cloud Runner", Tags: []string{"running", "light"}}
}

func TestGenerateNilModelUsesCampaignMessaging(t *testing.T) {
	g := &MessagingGenerator{}
	msg := g.Generate(context.Background(), testBrief(), testProduct())

	if msg.Headline != "Run Faster" {
		t.Errorf("Headline = %q", msg.Headline)
	}
	if msg.Description != "The season's lightest gear." {
		t.Errorf("Description = %q", msg.Description)
	}
	if msg.CallToAction != "Shop now" {
		t.Errorf("CallToAction = %q", msg.CallToAction)
	}
}

func TestGenerateParsesModelJSON(t *testing.T) {
	model := &fakeModel{response: `{"headline": "Fly Through Summer", "description": "Feather-light.", "call_to_action": "Grab yours"}`}
	g := &MessagingGenerator{Model: model}

	msg := g.Generate(context.Background(), testBrief(), testProduct())
	if msg.Headline != "Fly Through Summer" {
		t.Errorf("Headline = %q", msg.Headline)
	}
	if msg.Description != "Feather-light." {
		t.Errorf("Description = %q", msg.Description)
	}
	if msg.CallToAction != "Grab yours" {
		t.Errorf("CallToAction = %q", msg.CallToAction)
	}
	if len(model.prompts) != 1 {
		t.Fatalf("model called %d times, want 1", len(model.prompts))
	}
}

func TestGenerateFencedJSON(t *testing.T) {
	model := &fakeModel{response: "```json\n{\"headline\": \"Fenced\"}\n```"}
	g := &MessagingGenerator{Model: model}

	msg := g.Generate(context.Background(), testBrief(), testProduct())
	if msg.Headline != "Fenced" {
		t.Errorf("Headline = %q, want fenced JSON parsed", msg.Headline)
	}
	// Fields the model omitted fall back to campaign messaging.
	if msg.CallToAction != "Shop now" {
		t.Errorf("CallToAction = %q, want campaign fallback", msg.CallToAction)
	}
}

func TestGenerateShortCTAFieldName(t *testing.T) {
	model := &fakeModel{response: `{"headline": "H", "cta": "Buy it"}`}
	g := &MessagingGenerator{Model: model}

	msg := g.Generate(context.Background(), testBrief(), testProduct())
	if msg.CallToAction != "Buy it" {
		t.Errorf("CallToAction = %q, want %q", msg.CallToAction, "Buy it")
	}
}

func TestGenerateModelFailureFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		model *fakeModel
	}{
		{"transport error", &fakeModel{err: errors.New("boom")}},
		{"garbage response", &fakeModel{response: "sorry, I cannot help with that"}},
		{"empty response", &fakeModel{response: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &MessagingGenerator{Model: tt.model}
			msg := g.Generate(context.Background(), testBrief(), testProduct())
			if msg.Headline != "Run Faster" {
				t.Errorf("Headline = %q, want campaign fallback", msg.Headline)
			}
		})
	}
}

func TestGenerateHeadlineOfLastResort(t *testing.T) {
	b := testBrief()
	b.Messaging = brief.Messaging{}
	g := &MessagingGenerator{}

	msg := g.Generate(context.Background(), b, testProduct())
	if msg.Headline != "Summer Launch" {
		t.Errorf("Headline = %q, want campaign name", msg.Headline)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a": 1}`, `{"a": 1}`},
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"  {\"a\": 1}  ", `{"a": 1}`},
	}

	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
