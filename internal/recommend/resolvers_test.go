package recommend

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/tools"
)

func fixtureDirectory() *tools.Directory {
	return tools.NewDirectory([]tools.Tool{
		{Slug: "json-formatter", Title: "JSON Formatter", Category: "formatters"},
		{Slug: "yaml-formatter", Title: "YAML Formatter", Category: "formatters"},
		{Slug: "sql-formatter", Title: "SQL Formatter", Category: "formatters"},
		{Slug: "json-to-yaml", Title: "JSON to YAML", Category: "converters"},
		{Slug: "json-to-csv", Title: "JSON to CSV", Category: "converters"},
		{Slug: "base64", Title: "Base64", Category: "encoding"},
		{Slug: "url-encoder", Title: "URL Encoder", Category: "encoding"},
		{Slug: "jwt-decoder", Title: "JWT Decoder", Category: "encoding"},
		{Slug: "hash-generator", Title: "Hash Generator", Category: "security"},
		{Slug: "cron-parser", Title: "Cron Parser", Category: "time"},
	})
}

func TestRelatedByCategory(t *testing.T) {
	dir := fixtureDirectory()

	tests := []struct {
		name string
		tool string
		want []string
	}{
		{"formatters", "json-formatter", []string{"yaml-formatter", "sql-formatter"}},
		{"middle of category", "url-encoder", []string{"base64", "jwt-decoder"}},
		{"only member", "cron-parser", []string{}},
		{"unknown", "unknown", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelatedByCategory(dir, tt.tool)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RelatedByCategory(%s) mismatch (-want +got):\n%s", tt.tool, diff)
			}
		})
	}
}

func TestRelatedByCategoryProperties(t *testing.T) {
	dir := fixtureDirectory()

	for _, tool := range dir.Slugs() {
		cat, _ := dir.Category(tool)
		first := RelatedByCategory(dir, tool)
		for _, id := range first {
			if id == tool {
				t.Errorf("RelatedByCategory(%s) contains the tool itself", tool)
			}
			if c, _ := dir.Category(id); c != cat {
				t.Errorf("RelatedByCategory(%s) returned %s from category %s", tool, id, c)
			}
		}
		if diff := cmp.Diff(first, RelatedByCategory(dir, tool)); diff != "" {
			t.Errorf("RelatedByCategory(%s) is not deterministic:\n%s", tool, diff)
		}
	}
}

func TestFrequentFromHistory(t *testing.T) {
	tests := []struct {
		name    string
		history []string
		limit   int
		want    []string
	}{
		{"empty", nil, 5, []string{}},
		{"empty with zero limit", []string{}, 0, []string{}},
		{"descending counts", []string{"a", "a", "a", "b", "b", "c"}, 3, []string{"a", "b", "c"}},
		{"limit caps", []string{"a", "a", "a", "b", "b", "c"}, 2, []string{"a", "b"}},
		{"no padding", []string{"a", "b"}, 5, []string{"a", "b"}},
		{"ties keep first occurrence", []string{"c", "b", "a", "a", "b", "c"}, 3, []string{"c", "b", "a"}},
		{"count beats recency", []string{"x", "y", "y", "z", "z", "z"}, 3, []string{"z", "y", "x"}},
		{"interleaved ties", []string{"b", "a", "b", "a", "c"}, 5, []string{"b", "a", "c"}},
		{"zero limit", []string{"a"}, 0, []string{}},
		{"negative limit", []string{"a"}, -1, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FrequentFromHistory(tt.history, tt.limit)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FrequentFromHistory mismatch (-want +got):\n%s", diff)
			}
			if tt.limit >= 0 && len(got) > tt.limit {
				t.Errorf("len = %d exceeds limit %d", len(got), tt.limit)
			}
		})
	}
}

func TestWorkflowWeightBounds(t *testing.T) {
	for total := 1; total <= 10; total++ {
		prev := WorkflowCeiling
		for pos := 0; pos < total; pos++ {
			w := WorkflowWeight(pos, total)
			if w < WorkflowFloor || w > WorkflowCeiling {
				t.Fatalf("WorkflowWeight(%d, %d) = %v outside [%v, %v]", pos, total, w, WorkflowFloor, WorkflowCeiling)
			}
			if w > prev {
				t.Fatalf("WorkflowWeight(%d, %d) = %v increases", pos, total, w)
			}
			prev = w
		}
	}
	if WorkflowWeight(0, 4) != WorkflowCeiling {
		t.Error("first journey step should carry the ceiling weight")
	}
}

func TestWorkflowCandidates(t *testing.T) {
	wf := fakeWorkflow{"json-formatter": {"json-to-yaml", "json-to-csv"}}

	got := WorkflowCandidates(wf, "json-formatter")
	want := []Recommendation{
		{Target: "json-to-yaml", Weight: 1.0, Reason: ReasonWorkflow},
		{Target: "json-to-csv", Weight: 0.6, Reason: ReasonWorkflow},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WorkflowCandidates mismatch (-want +got):\n%s", diff)
	}

	if got := WorkflowCandidates(wf, "unknown"); len(got) != 0 {
		t.Errorf("WorkflowCandidates(unknown) = %v, want empty", got)
	}
	if got := WorkflowCandidates(nil, "json-formatter"); len(got) != 0 {
		t.Errorf("WorkflowCandidates(nil) = %v, want empty", got)
	}
}

type fakeWorkflow map[string][]string

func (f fakeWorkflow) Journey(id string) []string {
	return f[id]
}
