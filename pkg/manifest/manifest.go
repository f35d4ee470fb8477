// Package manifest provides JSON import and export for run manifests.
//
// A manifest is the machine-readable record of one pipeline run: which
// creatives were produced, where they were written, where each base image
// came from, and which frames failed. The format is designed for:
//
//   - Auditing runs without re-reading the output tree
//   - Integration with downstream tooling (review dashboards, QA checks)
//   - Round-trip preservation: export, inspect, and re-import identically
//
// # JSON Format
//
//	{
//	  "run_id": "6e1c…",
//	  "campaign_id": "summer-launch",
//	  "generated_at": "2026-08-31T12:00:00Z",
//	  "stats": {"products": 2, "rendered": 6, "failed": 0},
//	  "frames": [
//	    {"product": "shoe-01", "ratio": "1:1", "path": "out/…", "source": "provided"}
//	  ]
//	}
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Shadid12/creatives-automation/pkg/pipeline"
)

// Manifest is the serialized record of one pipeline run.
type Manifest struct {
	RunID       string                 `json:"run_id"`
	CampaignID  string                 `json:"campaign_id"`
	GeneratedAt time.Time              `json:"generated_at"`
	Stats       Stats                  `json:"stats"`
	Frames      []pipeline.FrameResult `json:"frames"`
}

// Stats mirrors pipeline.Stats with stable JSON field names.
type Stats struct {
	Products   int   `json:"products"`
	Rendered   int   `json:"rendered"`
	Failed     int   `json:"failed"`
	Generated  int   `json:"generated"`
	CacheHits  int   `json:"cache_hits"`
	DurationMS int64 `json:"duration_ms"`
}

// FromResult builds a manifest from a pipeline result, stamped with the
// current time.
func FromResult(r *pipeline.Result) Manifest {
	return Manifest{
		RunID:       r.RunID,
		CampaignID:  r.CampaignID,
		GeneratedAt: time.Now().UTC(),
		Stats: Stats{
			Products:   r.Stats.Products,
			Rendered:   r.Stats.Rendered,
			Failed:     r.Stats.Failed,
			Generated:  r.Stats.Generated,
			CacheHits:  r.Stats.CacheHits,
			DurationMS: r.Stats.Duration.Milliseconds(),
		},
		Frames: r.Frames,
	}
}

// Path returns the conventional manifest location for a run:
// <outputDir>/<campaign>/manifest_<runID>.json.
func Path(outputDir, campaignSlug, runID string) string {
	return filepath.Join(outputDir, campaignSlug, fmt.Sprintf("manifest_%s.json", runID))
}

// WriteJSON encodes a manifest as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(m Manifest, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a manifest to a JSON file at path, creating parent
// directories as needed.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(m Manifest, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(m, f)
}

// ReadJSON decodes a manifest from r.
func ReadJSON(r io.Reader) (Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("decode: %w", err)
	}
	if m.RunID == "" {
		return Manifest{}, fmt.Errorf("manifest has no run_id")
	}
	return m, nil
}

// ImportJSON reads a manifest from a JSON file at path.
// This is a convenience wrapper around [ReadJSON] for file-based input.
func ImportJSON(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
