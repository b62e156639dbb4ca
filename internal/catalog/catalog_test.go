package catalog

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/errors"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/graph"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/tools"
)

func TestDefaultCatalogHasNoErrors(t *testing.T) {
	c, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, issue := range c.Validate() {
		if issue.Severity == SeverityError {
			t.Errorf("built-in data has error: %s", issue.Message)
		}
	}

	if c.Graph.NumNodes() == 0 || c.Directory.Len() == 0 {
		t.Fatal("default catalog is empty")
	}
	for _, node := range c.Graph.AllNodes() {
		if !c.Directory.IsValidToolSlug(node) {
			t.Errorf("graph node %q is not in the directory", node)
		}
	}
}

func TestDefaultCatalogImportance(t *testing.T) {
	c, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	imp := c.Graph.Importance()
	if imp["json-formatter"] <= 1 {
		t.Errorf("importance(json-formatter) = %v, want > 1", imp["json-formatter"])
	}
	for id, v := range c.Graph.ImportanceFor(c.Directory.Slugs()) {
		if v < 1 {
			t.Errorf("importance(%s) = %v < 1", id, v)
		}
	}

	// Every edge is visible from the target's side.
	for _, e := range c.Graph.Edges() {
		found := false
		for _, s := range c.Graph.InboundLinks(e.To) {
			if s == e.From {
				found = true
			}
		}
		if !found {
			t.Errorf("edge %s -> %s missing from inbound links", e.From, e.To)
		}
	}
}

func TestDefaultJourneysReturnsCopy(t *testing.T) {
	a, err := DefaultJourneys()
	if err != nil {
		t.Fatalf("DefaultJourneys failed: %v", err)
	}
	a[0].Next[0] = "mutated"

	b, _ := DefaultJourneys()
	if b[0].Next[0] == "mutated" {
		t.Error("DefaultJourneys should return an independent copy")
	}
}

func TestParseJourneys(t *testing.T) {
	data := []byte(`
[[journey]]
tool = "a"
next = ["b", "c"]

[[journey]]
tool = "b"
next = ["c"]
`)
	got, err := ParseJourneys(data)
	if err != nil {
		t.Fatalf("ParseJourneys failed: %v", err)
	}
	want := []graph.Journey{
		{Tool: "a", Next: []string{"b", "c"}},
		{Tool: "b", Next: []string{"c"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseJourneys mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseJourneys([]byte("[[journey]\ntool=")); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestLoadFromFiles(t *testing.T) {
	tmp := t.TempDir()
	dirPath := filepath.Join(tmp, "tools.yaml")
	journeysPath := filepath.Join(tmp, "journeys.toml")

	writeFile(t, dirPath, `
tools:
  - slug: a
    title: Tool A
    category: one
  - slug: b
    title: Tool B
    category: one
  - slug: c
    title: Tool C
    category: two
`)
	writeFile(t, journeysPath, `
[[journey]]
tool = "a"
next = ["b", "c"]

[[journey]]
tool = "b"
next = ["c"]
`)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c, err := Load(Options{DirectoryPath: dirPath, JourneysPath: journeysPath, Alpha: 1.0, Logger: logger})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Directory.Len() != 3 {
		t.Errorf("Directory.Len() = %d, want 3", c.Directory.Len())
	}
	if diff := cmp.Diff([]string{"a", "b"}, c.Graph.InboundLinks("c")); diff != "" {
		t.Errorf("InboundLinks(c) mismatch (-want +got):\n%s", diff)
	}
	// alpha=1: a has 0 in + 2 out.
	if got := c.Graph.Importance()["a"]; got != 3 {
		t.Errorf("importance(a) = %v, want 3", got)
	}
	if !strings.Contains(buf.String(), "Catalog loaded") {
		t.Errorf("expected load log, got %q", buf.String())
	}
}

func TestLoadErrors(t *testing.T) {
	tmp := t.TempDir()
	bad := filepath.Join(tmp, "bad.toml")
	writeFile(t, bad, "[[journey]\n")

	tests := []struct {
		name string
		opts Options
	}{
		{"missing directory file", Options{DirectoryPath: filepath.Join(tmp, "nope.yaml")}},
		{"missing journeys file", Options{JourneysPath: filepath.Join(tmp, "nope.toml")}},
		{"malformed journeys", Options{JourneysPath: bad}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.opts)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.CodeOf(err) != errors.CatalogInvalid {
				t.Errorf("code = %v, want %v", errors.CodeOf(err), errors.CatalogInvalid)
			}
			var de *errors.DevkitError
			if !stderrors.As(err, &de) || de.Details == nil {
				t.Errorf("expected DevkitError with details, got %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	dir := tools.NewDirectory([]tools.Tool{
		{Slug: "a", Category: "x"},
		{Slug: "b", Category: "x"},
		{Slug: "c", Category: "y"},
		{Slug: "orphan", Category: "y"},
	})
	journeys := []graph.Journey{
		{Tool: "a", Next: []string{"b", "a", "b", "ghost"}},
		{Tool: "phantom", Next: []string{"c"}},
		{Tool: "c"},
		{Tool: "a", Next: []string{"c"}},
	}

	got := Validate(dir, journeys)

	type key struct {
		Code   IssueCode
		Tool   string
		Target string
	}
	var keys []key
	for _, i := range got {
		keys = append(keys, key{i.Code, i.Tool, i.Target})
	}
	want := []key{
		{SelfLoop, "a", "a"},
		{DuplicateTarget, "a", "b"},
		{UnknownTarget, "a", "ghost"},
		{UnknownSource, "phantom", ""},
		{EmptyJourney, "c", ""},
		{DuplicateJourney, "a", ""},
		{Unreferenced, "orphan", ""},
	}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("Validate mismatch (-want +got):\n%s", diff)
	}

	if !HasErrors(got) {
		t.Error("HasErrors should be true")
	}
	if HasErrors([]Issue{{Severity: SeverityWarning}}) {
		t.Error("warnings alone are not errors")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
