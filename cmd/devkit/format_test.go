package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/errors"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/graph"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/recommend"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/seo"
)

func testResponse(facts interface{}) *Response {
	return &Response{
		DevkitVersion: "0.0.0",
		SchemaVersion: SchemaVersion,
		RequestID:     "req",
		Command:       "test",
		Facts:         facts,
		Provenance:    &Provenance{Warnings: []string{}, Truncations: []string{}},
	}
}

func TestFormatResponse_JSON(t *testing.T) {
	resp := testResponse(&FrequentResponseCLI{History: []string{"a"}, Limit: 1, Frequent: []string{"a"}})

	result, err := FormatResponse(resp, FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result, `"schemaVersion": 1`) {
		t.Error("JSON output missing schema version")
	}
	if !strings.Contains(result, `"frequent": [`) {
		t.Error("JSON output missing facts")
	}
}

func TestFormatResponse_UnsupportedFormat(t *testing.T) {
	_, err := FormatResponse(testResponse(nil), "xml")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("error should mention unsupported format, got: %v", err)
	}
}

func TestFormatHuman(t *testing.T) {
	tests := []struct {
		name  string
		facts interface{}
		want  []string
	}{
		{
			name: "recommend",
			facts: &RecommendResponseCLI{
				Tool:  "a",
				Title: "Tool A",
				Recommendations: []RecommendationCLI{
					{Target: "b", Title: "Tool B", Weight: 1, Reason: recommend.ReasonWorkflow},
				},
			},
			want: []string{"Recommendations for Tool A", " 1. Tool B", "1.00  workflow"},
		},
		{
			name:  "empty recommend",
			facts: &RecommendResponseCLI{Tool: "a", Title: "Tool A", Recommendations: []RecommendationCLI{}},
			want:  []string{"(none)"},
		},
		{
			name:  "related",
			facts: &RelatedResponseCLI{Tool: "a", Category: "x", Related: []ToolRef{{Slug: "b", Title: "Tool B"}}},
			want:  []string{"Related to a (x)", "Tool B"},
		},
		{
			name:  "links",
			facts: &LinksResponseCLI{Tool: "a", Links: []seo.Link{{Target: "b", Title: "Tool B", Score: 0.6, Relation: seo.RelationNext}}},
			want:  []string{"Internal links for a", "[next  ] Tool B", " 0.6"},
		},
		{
			name: "nearby path",
			facts: &LinksResponseCLI{Tool: "a", Links: []seo.Link{
				{Target: "d", Title: "Tool D", Score: 0.25, Relation: seo.RelationNearby, Path: []string{"a", "b", "d"}},
			}},
			want: []string{"[nearby] Tool D", "via a → b → d"},
		},
		{
			name:  "hubs",
			facts: &LinksResponseCLI{Links: []seo.Link{}},
			want:  []string{"Hub links", "(none)"},
		},
		{
			name:  "validate",
			facts: &ValidateResponseCLI{Valid: false, Errors: 1, Stats: graph.GraphStats{TotalNodes: 3}},
			want:  []string{"Catalog INVALID: 1 errors, 0 warnings", "3 tools"},
		},
		{
			name:  "importance",
			facts: &ImportanceResponseCLI{Method: "degree", Tools: []ImportanceCLI{{Slug: "a", Score: 2.5}}},
			want:  []string{"Tool importance (degree)", " 2.5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FormatResponse(testResponse(tt.facts), FormatHuman)
			if err != nil {
				t.Fatalf("FormatResponse failed: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestFormatHumanWarnings(t *testing.T) {
	resp := testResponse(&FrequentResponseCLI{Frequent: []string{}})
	resp.AddWarning("history contains unknown tool \"zzz\"")

	out, err := FormatResponse(resp, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}
	if !strings.HasSuffix(out, `warning: history contains unknown tool "zzz"`) {
		t.Errorf("warning not rendered last:\n%s", out)
	}
}

func TestFormatHumanFallsBackToJSON(t *testing.T) {
	out, err := FormatResponse(testResponse(map[string]int{"n": 1}), FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}
	if !strings.Contains(out, `"n": 1`) {
		t.Errorf("expected JSON fallback, got:\n%s", out)
	}
}

func TestPrintError(t *testing.T) {
	err := errors.New(errors.ToolNotFound, "Tool 'zzz' not found", nil)

	var buf bytes.Buffer
	printError(&buf, err, FormatJSON)

	var got ErrorResponse
	if jerr := json.Unmarshal(buf.Bytes(), &got); jerr != nil {
		t.Fatalf("output is not JSON: %v\n%s", jerr, buf.String())
	}
	if got.Error.Code != errors.ToolNotFound {
		t.Errorf("code = %q, want %q", got.Error.Code, errors.ToolNotFound)
	}
	if len(got.Error.SuggestedFixes) == 0 {
		t.Error("expected suggested fixes")
	}

	buf.Reset()
	printError(&buf, err, FormatHuman)
	if !strings.HasPrefix(buf.String(), "Error: ") || !strings.Contains(buf.String(), "hint: ") {
		t.Errorf("human error output = %q", buf.String())
	}
}
