package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/Shadid12/creatives-automation/pkg/brief"
	"github.com/Shadid12/creatives-automation/pkg/errors"
)

func TestFindAssetBySlug(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "road-racer.jpg")

	img, path, err := FindAsset(dir, brief.Product{Name: "Road Racer"})
	if err != nil {
		t.Fatalf("FindAsset: %v", err)
	}
	if img == nil {
		t.Fatal("expected a match for road-racer.jpg")
	}
	if want := filepath.Join(dir, "road-racer.jpg"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestFindAssetBySlugSubstring(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "road-racer-hero.png")

	img, path, err := FindAsset(dir, brief.Product{Name: "Road Racer"})
	if err != nil {
		t.Fatalf("FindAsset: %v", err)
	}
	if img == nil {
		t.Fatal("FindAsset did not match road-racer-hero.png for product road-racer")
	}
	if want := filepath.Join(dir, "road-racer-hero.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestFindAssetScansSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, filepath.Join(dir, "heroes"), "studio-road-racer.jpg")

	img, path, err := FindAsset(dir, brief.Product{Name: "Road Racer"})
	if err != nil {
		t.Fatalf("FindAsset: %v", err)
	}
	if img == nil {
		t.Fatal("expected a match in the heroes subdirectory")
	}
	if want := filepath.Join(dir, "heroes", "studio-road-racer.jpg"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestFindAssetPrefersExactName(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "road-racer.png")
	writeAsset(t, dir, "road-racer-hero.png")

	_, path, err := FindAsset(dir, brief.Product{Name: "Road Racer"})
	if err != nil {
		t.Fatalf("FindAsset: %v", err)
	}
	if want := filepath.Join(dir, "road-racer.png"); path != want {
		t.Errorf("path = %q, want %q (exact filename must win)", path, want)
	}
}

func TestFindAssetPrefersExplicitPath(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "road-racer.png")
	writeAsset(t, filepath.Join(dir, "hero"), "shot.png")

	img, path, err := FindAsset(dir, brief.Product{
		Name:      "Road Racer",
		AssetPath: "hero/shot.png",
	})
	if err != nil {
		t.Fatalf("FindAsset: %v", err)
	}
	if img == nil {
		t.Fatal("expected explicit asset to load")
	}
	if want := filepath.Join(dir, "hero", "shot.png"); path != want {
		t.Errorf("path = %q, want %q (slug match must not win)", path, want)
	}
}

func TestFindAssetExplicitPathMissing(t *testing.T) {
	_, _, err := FindAsset(t.TempDir(), brief.Product{
		Name:      "Road Racer",
		AssetPath: "nope.png",
	})
	if err == nil {
		t.Fatal("missing explicit asset should be an error")
	}
	if errors.GetCode(err) != errors.ErrCodeAssetNotFound {
		t.Errorf("code = %v, want ErrCodeAssetNotFound", errors.GetCode(err))
	}
}

func TestFindAssetNoMatch(t *testing.T) {
	img, path, err := FindAsset(t.TempDir(), brief.Product{Name: "Road Racer"})
	if err != nil {
		t.Fatalf("FindAsset: %v", err)
	}
	if img != nil || path != "" {
		t.Error("no asset on disk should yield nil image and empty path")
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"shot.png", true},
		{"shot.JPG", true},
		{"shot.jpeg", true},
		{"shot.webp", true},
		{"shot.gif", false},
		{"shot.txt", false},
		{"shot", false},
	}
	for _, tt := range tests {
		if got := IsImageFile(tt.name); got != tt.want {
			t.Errorf("IsImageFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
