package manifest

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Shadid12/creatives-automation/pkg/creative"
	"github.com/Shadid12/creatives-automation/pkg/pipeline"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		RunID:      "run-123",
		CampaignID: "summer-launch",
		Frames: []pipeline.FrameResult{
			{
				ProductKey: "shoe-01",
				Ratio:      creative.AspectRatio{W: 1, H: 1},
				RatioName:  "1:1",
				Path:       "out/summer-launch/shoe-01/1x1/summer-launch_shoe-01_1x1.png",
				Source:     pipeline.SourceProvided,
			},
			{
				ProductKey: "shoe-02",
				Ratio:      creative.AspectRatio{W: 9, H: 16},
				RatioName:  "9:16",
				Error:      "no asset found",
			},
		},
		Stats: pipeline.Stats{
			Products: 2,
			Rendered: 1,
			Failed:   1,
			Duration: 1500 * time.Millisecond,
		},
	}
}

func TestFromResult(t *testing.T) {
	m := FromResult(sampleResult())

	if m.RunID != "run-123" || m.CampaignID != "summer-launch" {
		t.Errorf("identity fields not carried over: %+v", m)
	}
	if m.GeneratedAt.IsZero() {
		t.Error("GeneratedAt should be stamped")
	}
	if m.Stats.DurationMS != 1500 {
		t.Errorf("DurationMS = %d, want 1500", m.Stats.DurationMS)
	}
	if len(m.Frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(m.Frames))
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	m := FromResult(sampleResult())

	var buf bytes.Buffer
	if err := WriteJSON(m, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.RunID != m.RunID || got.CampaignID != m.CampaignID {
		t.Errorf("round trip lost identity: %+v", got)
	}
	if len(got.Frames) != len(m.Frames) {
		t.Fatalf("round trip lost frames: %d != %d", len(got.Frames), len(m.Frames))
	}
	if got.Frames[0].Path != m.Frames[0].Path {
		t.Errorf("frame path = %q, want %q", got.Frames[0].Path, m.Frames[0].Path)
	}
	if got.Frames[1].Error != "no asset found" {
		t.Errorf("frame error = %q, want preserved", got.Frames[1].Error)
	}
}

func TestWriteJSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(FromResult(sampleResult()), &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out := buf.String()
	for _, field := range []string{`"run_id"`, `"campaign_id"`, `"generated_at"`, `"stats"`, `"frames"`, `"duration_ms"`} {
		if !strings.Contains(out, field) {
			t.Errorf("output missing %s:\n%s", field, out)
		}
	}
}

func TestExportImportFile(t *testing.T) {
	m := FromResult(sampleResult())
	path := Path(t.TempDir(), "summer-launch", m.RunID)

	if err := ExportJSON(m, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if got.RunID != m.RunID {
		t.Errorf("RunID = %q, want %q", got.RunID, m.RunID)
	}
}

func TestReadJSONRejectsEmptyRunID(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader(`{"campaign_id":"x"}`)); err == nil {
		t.Error("manifest without run_id should be rejected")
	}
	if _, err := ReadJSON(strings.NewReader(`not json`)); err == nil {
		t.Error("malformed JSON should be rejected")
	}
}

func TestPath(t *testing.T) {
	got := Path("out", "summer-launch", "run-123")
	want := filepath.Join("out", "summer-launch", "manifest_run-123.json")
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}
