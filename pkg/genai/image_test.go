package genai

import (
	"bytes"
	"context"
	"image"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Shadid12/creatives-automation/pkg/brief"
)

func TestMockGeneratorDeterministic(t *testing.T) {
	prompt := ImagePrompt(testBrief(), testProduct())

	gen := MockGenerator{}
	a, err := gen.Generate(context.Background(), prompt)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := gen.Generate(context.Background(), prompt)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !bytes.Equal(pix(t, a), pix(t, b)) {
		t.Error("mock generator is not deterministic")
	}
}

func TestMockGeneratorSize(t *testing.T) {
	img, err := MockGenerator{}.Generate(context.Background(), "a tiny prompt")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != mockSize || b.Dy() != mockSize {
		t.Errorf("mock image is %dx%d, want %dx%d", b.Dx(), b.Dy(), mockSize, mockSize)
	}
}

func TestMockGeneratorLongPrompt(t *testing.T) {
	long := strings.Repeat("wordy ", 200)
	if _, err := (MockGenerator{}).Generate(context.Background(), long); err != nil {
		t.Fatalf("Generate with long prompt: %v", err)
	}
}

func TestCaptionSnippet(t *testing.T) {
	short := "a tiny prompt"
	if got := captionSnippet(short); got != short {
		t.Errorf("short prompt altered: %q", got)
	}

	long := strings.Repeat("wordy ", 50)
	got := captionSnippet(long)
	if want := mockSnippetLength + len("..."); len([]rune(got)) != want {
		t.Errorf("snippet is %d runes, want %d", len([]rune(got)), want)
	}

	// Multi-byte text must be clamped on a rune boundary, never
	// mid-sequence.
	accented := strings.Repeat("é", mockSnippetLength+10)
	got = captionSnippet(accented)
	if !utf8.ValidString(got) {
		t.Errorf("snippet is not valid UTF-8: %q", got)
	}
	if want := strings.Repeat("é", mockSnippetLength) + "..."; got != want {
		t.Errorf("snippet = %q, want %q", got, want)
	}
}

func pix(t *testing.T, img image.Image) []uint8 {
	t.Helper()
	switch im := img.(type) {
	case *image.RGBA:
		return im.Pix
	case *image.NRGBA:
		return im.Pix
	default:
		t.Fatalf("unexpected image type %T", img)
		return nil
	}
}

func TestImagePromptContents(t *testing.T) {
	prompt := ImagePrompt(testBrief(), testProduct())

	for _, want := range []string{"Stride", "Cloud Runner", "running, light", "age: 18-35"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("image prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestImagePromptStable(t *testing.T) {
	// Demographics render in sorted key order, so the prompt (and the cache
	// key derived from it) is identical across runs.
	a := ImagePrompt(testBrief(), testProduct())
	b := ImagePrompt(testBrief(), testProduct())
	if a != b {
		t.Error("image prompt differs across calls")
	}
}

func TestMessagingPromptContents(t *testing.T) {
	prompt := MessagingPrompt(testBrief(), testProduct())

	for _, want := range []string{"en-US", "Summer Launch", "call_to_action", "ONLY a valid JSON object"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("messaging prompt missing %q", want)
		}
	}
}

func TestImagePromptEmptyProduct(t *testing.T) {
	b := testBrief()
	b.Demographics = nil

	prompt := ImagePrompt(b, brief.Product{})
	if !strings.Contains(prompt, "a product") {
		t.Errorf("nameless product should fall back to generic wording:\n%s", prompt)
	}
	if !strings.Contains(prompt, "General active lifestyle audience") {
		t.Errorf("empty demographics should fall back to the generic audience:\n%s", prompt)
	}
}
