package creative

import (
	"path/filepath"
	"testing"
)

func TestResolveNeverFails(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		explicit string
	}{
		{"empty bundled dir", t.TempDir(), ""},
		{"nonexistent bundled dir", filepath.Join(t.TempDir(), "missing"), ""},
		{"nonexistent explicit path", t.TempDir(), "/does/not/exist.ttf"},
		{"explicit path not a font", t.TempDir(), "font_test.go"},
		{"no dir at all", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.dir)
			face := r.Resolve(tt.explicit, 24)
			if face == nil {
				t.Fatal("Resolve returned nil face")
			}
		})
	}
}

func TestChainOrder(t *testing.T) {
	dir := t.TempDir()
	r := NewResolver(dir)
	chain := r.Chain("/custom/brand.ttf")

	if len(chain) < 2 {
		t.Fatalf("chain too short: %d", len(chain))
	}

	// Bundled candidates come first, the well-known names leading.
	if chain[0].Source != FontSourceBundled {
		t.Errorf("chain[0].Source = %q, want %q", chain[0].Source, FontSourceBundled)
	}
	if filepath.Base(chain[0].Path) != "Roboto-VariableFont_wdth,wght.ttf" {
		t.Errorf("chain[0].Path = %q, want the priority Roboto font", chain[0].Path)
	}

	// The explicit path follows the bundled directory.
	explicitIdx := -1
	for i, c := range chain {
		if c.Source == FontSourceExplicit {
			explicitIdx = i
			break
		}
	}
	if explicitIdx == -1 {
		t.Fatal("explicit candidate missing from chain")
	}
	if chain[explicitIdx].Path != "/custom/brand.ttf" {
		t.Errorf("explicit candidate path = %q", chain[explicitIdx].Path)
	}
	for i := 0; i < explicitIdx; i++ {
		if chain[i].Source != FontSourceBundled {
			t.Errorf("chain[%d].Source = %q before explicit candidate", i, chain[i].Source)
		}
	}

	// System candidates follow the explicit path.
	if chain[explicitIdx+1].Source != FontSourceSystem {
		t.Errorf("candidate after explicit = %q, want %q", chain[explicitIdx+1].Source, FontSourceSystem)
	}

	// The chain always terminates in the built-in face.
	last := chain[len(chain)-1]
	if last.Source != FontSourceBuiltin {
		t.Errorf("last candidate = %q, want %q", last.Source, FontSourceBuiltin)
	}
}

func TestChainWithoutExplicit(t *testing.T) {
	r := NewResolver("")
	for _, c := range r.Chain("") {
		if c.Source == FontSourceExplicit {
			t.Error("chain contains explicit candidate for empty path")
		}
		if c.Source == FontSourceBundled {
			t.Error("chain contains bundled candidate for empty dir")
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	r := NewResolver(t.TempDir())
	a := r.Resolve("", 18)
	b := r.Resolve("", 18)
	if a != b {
		t.Error("same (path, size) resolved to different faces")
	}
}

func TestClearCache(t *testing.T) {
	r := NewResolver(t.TempDir())
	_ = r.Resolve("", 18)
	r.ClearCache()

	// Resolution after a cache drop still succeeds; the cache is a pure
	// optimization.
	if face := r.Resolve("", 18); face == nil {
		t.Fatal("Resolve returned nil after ClearCache")
	}
}

func TestLoadFaceErrors(t *testing.T) {
	if _, err := LoadFace("/does/not/exist.ttf", 12); err == nil {
		t.Error("LoadFace on missing file should error")
	}
	if _, err := LoadFace("font_test.go", 12); err == nil {
		t.Error("LoadFace on a non-font file should error")
	}
}
