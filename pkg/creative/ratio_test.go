package creative

import "testing"

func TestParseRatio(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    AspectRatio
		wantErr bool
	}{
		{"square", "1:1", AspectRatio{1, 1}, false},
		{"story", "9:16", AspectRatio{9, 16}, false},
		{"banner", "16:9", AspectRatio{16, 9}, false},
		{"whitespace", " 4:5 ", AspectRatio{4, 5}, false},
		{"missing colon", "169", AspectRatio{}, true},
		{"too many parts", "16:9:2", AspectRatio{}, true},
		{"non-numeric", "a:b", AspectRatio{}, true},
		{"zero side", "0:9", AspectRatio{}, true},
		{"negative side", "16:-9", AspectRatio{}, true},
		{"empty", "", AspectRatio{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRatio(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRatio(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRatio(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAspectRatioString(t *testing.T) {
	r := AspectRatio{16, 9}
	if r.String() != "16:9" {
		t.Errorf("String() = %q, want %q", r.String(), "16:9")
	}
	if r.Slug() != "16x9" {
		t.Errorf("Slug() = %q, want %q", r.Slug(), "16x9")
	}
}

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		ratio      AspectRatio
		wantW      int
		wantH      int
		landscape  bool
	}{
		{AspectRatio{1, 1}, 1200, 1200, false},
		{AspectRatio{16, 9}, 1200, 675, true},
		{AspectRatio{9, 16}, 675, 1200, false},
		{AspectRatio{4, 5}, 960, 1200, false},
	}

	for _, tt := range tests {
		t.Run(tt.ratio.String(), func(t *testing.T) {
			w, h := tt.ratio.CanvasSize(BaseCanvasSize)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("CanvasSize = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
			if tt.ratio.Landscape() != tt.landscape {
				t.Errorf("Landscape() = %v, want %v", tt.ratio.Landscape(), tt.landscape)
			}

			// The produced dimensions must reduce to the requested ratio
			// within 1px of rounding.
			cross := w*tt.ratio.H - h*tt.ratio.W
			if cross < 0 {
				cross = -cross
			}
			if cross > tt.ratio.W {
				t.Errorf("dimensions %dx%d deviate from ratio %v by more than 1px", w, h, tt.ratio)
			}
		})
	}
}

func TestDefaultRatios(t *testing.T) {
	ratios := DefaultRatios()
	want := []AspectRatio{{1, 1}, {9, 16}, {16, 9}}
	if len(ratios) != len(want) {
		t.Fatalf("DefaultRatios() returned %d ratios, want %d", len(ratios), len(want))
	}
	for i, r := range want {
		if ratios[i] != r {
			t.Errorf("DefaultRatios()[%d] = %v, want %v", i, ratios[i], r)
		}
	}
}
