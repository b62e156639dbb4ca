package export

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/catalog"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/errors"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/graph"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/recommend"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/seo"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/tools"
)

func newTestExporter() *Exporter {
	dir := tools.NewDirectory([]tools.Tool{
		{Slug: "a", Title: "Tool A", Category: "x"},
		{Slug: "b", Title: "Tool B", Category: "x"},
		{Slug: "c", Title: "Tool C", Category: "y"},
		{Slug: "e", Title: "Tool E", Category: "z"},
	})
	journeys := []graph.Journey{
		{Tool: "a", Next: []string{"b", "c"}},
		{Tool: "b", Next: []string{"c"}},
	}
	g := graph.Build(journeys, graph.DefaultBuildOptions())
	c := &catalog.Catalog{Directory: dir, Graph: g, Journeys: journeys}

	e := NewExporter(c, recommend.NewEngine(dir, g), seo.NewPlanner(g, dir), graph.DefaultAlpha, nil)
	e.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return e
}

func TestExport(t *testing.T) {
	e := newTestExporter()

	export, err := e.Export(context.Background(), ExportOptions{})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	wantMeta := ExportMetadata{
		Version:       export.Metadata.Version,
		Generated:     "2026-01-02T03:04:05Z",
		ToolCount:     4,
		CategoryCount: 3,
		JourneyCount:  2,
		EdgeCount:     3,
		Alpha:         0.5,
	}
	if diff := cmp.Diff(wantMeta, export.Metadata); diff != "" {
		t.Errorf("Metadata mismatch (-want +got):\n%s", diff)
	}

	c := export.Tools[2]
	if c.Slug != "c" || c.Importance != 3 || c.Stars != ImportanceHigh {
		t.Errorf("tool c = %+v", c)
	}
	if diff := cmp.Diff([]string{"a", "b"}, c.Inbound); diff != "" {
		t.Errorf("Inbound(c) mismatch (-want +got):\n%s", diff)
	}

	a := export.Tools[0]
	if diff := cmp.Diff([]string{"b", "c"}, a.Journey); diff != "" {
		t.Errorf("Journey(a) mismatch (-want +got):\n%s", diff)
	}
	wantRecs := []recommend.Recommendation{
		{Target: "b", Weight: 1.0, Reason: recommend.ReasonWorkflow},
		{Target: "c", Weight: 0.6, Reason: recommend.ReasonWorkflow},
	}
	if diff := cmp.Diff(wantRecs, a.Recommendations); diff != "" {
		t.Errorf("Recommendations(a) mismatch (-want +got):\n%s", diff)
	}

	isolated := export.Tools[3]
	if isolated.Importance != 1 || len(isolated.Journey) != 0 || len(isolated.Inbound) != 0 {
		t.Errorf("isolated tool = %+v", isolated)
	}
	if isolated.Journey == nil || isolated.Inbound == nil {
		t.Error("empty journey and inbound should serialize as empty lists")
	}

	if len(export.Hubs) == 0 || export.Hubs[0].Target != "c" {
		t.Errorf("Hubs = %+v, want c first", export.Hubs)
	}
}

func TestExportFilters(t *testing.T) {
	e := newTestExporter()

	tests := []struct {
		name string
		opts ExportOptions
		want []string
	}{
		{"category", ExportOptions{Category: "x"}, []string{"a", "b"}},
		{"min importance", ExportOptions{MinImportance: 2.5}, []string{"b", "c"}},
		{"unknown category", ExportOptions{Category: "nope"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			export, err := e.Export(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("Export failed: %v", err)
			}
			got := []string{}
			for _, tool := range export.Tools {
				got = append(got, tool.Slug)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("slugs mismatch (-want +got):\n%s", diff)
			}
			if export.Metadata.ToolCount != len(tt.want) {
				t.Errorf("ToolCount = %d, want %d", export.Metadata.ToolCount, len(tt.want))
			}
		})
	}
}

func TestExportCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestExporter().Export(ctx, ExportOptions{})
	if errors.CodeOf(err) != errors.ExportFailed {
		t.Errorf("code = %v, want %v", errors.CodeOf(err), errors.ExportFailed)
	}
}

func TestWriteFormats(t *testing.T) {
	export, err := newTestExporter().Export(context.Background(), ExportOptions{})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	decoders := map[Format]func([]byte) (*SiteExport, error){
		FormatJSON: func(b []byte) (*SiteExport, error) {
			var out SiteExport
			return &out, json.Unmarshal(b, &out)
		},
		FormatYAML: func(b []byte) (*SiteExport, error) {
			var out SiteExport
			return &out, yaml.Unmarshal(b, &out)
		},
		FormatTOML: func(b []byte) (*SiteExport, error) {
			var out SiteExport
			_, err := toml.Decode(string(b), &out)
			return &out, err
		},
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, export, format, CodecNone); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			got, err := decode(buf.Bytes())
			if err != nil {
				t.Fatalf("decode failed: %v\n%s", err, buf.String())
			}
			if got.Metadata.ToolCount != 4 || len(got.Tools) != 4 {
				t.Errorf("decoded %d tools, want 4", len(got.Tools))
			}
			if diff := cmp.Diff([]string{"a", "b"}, got.Tools[2].Inbound); diff != "" {
				t.Errorf("Inbound(c) mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteMarkdown(t *testing.T) {
	export, _ := newTestExporter().Export(context.Background(), ExportOptions{})

	var buf bytes.Buffer
	if err := Write(&buf, export, FormatMarkdown, CodecNone); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"# Tool Link Graph", "| x | 2 |", "x → y (2)", "**Tool C** (`c`)"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestWriteCompressed(t *testing.T) {
	export, _ := newTestExporter().Export(context.Background(), ExportOptions{})

	tests := []struct {
		codec  Codec
		reader func(io.Reader) (io.Reader, error)
	}{
		{CodecGzip, func(r io.Reader) (io.Reader, error) { return gzip.NewReader(r) }},
		{CodecZstd, func(r io.Reader) (io.Reader, error) {
			d, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return d.IOReadCloser(), nil
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.codec), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, export, FormatJSON, tt.codec); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			r, err := tt.reader(&buf)
			if err != nil {
				t.Fatalf("reader failed: %v", err)
			}
			var got SiteExport
			if err := json.NewDecoder(r).Decode(&got); err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if got.Metadata.Generated != export.Metadata.Generated {
				t.Errorf("Generated = %q, want %q", got.Metadata.Generated, export.Metadata.Generated)
			}
		})
	}
}

func TestParseFormatAndCodec(t *testing.T) {
	formats := map[string]Format{"": FormatJSON, "JSON": FormatJSON, "yml": FormatYAML, "toml": FormatTOML, "md": FormatMarkdown}
	for in, want := range formats {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); errors.CodeOf(err) != errors.InvalidArgument {
		t.Errorf("ParseFormat(xml) code = %v", errors.CodeOf(err))
	}

	codecs := map[string]Codec{"": CodecNone, "gz": CodecGzip, "zstd": CodecZstd}
	for in, want := range codecs {
		got, err := ParseCodec(in)
		if err != nil || got != want {
			t.Errorf("ParseCodec(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseCodec("brotli"); err == nil {
		t.Error("ParseCodec(brotli) should fail")
	}

	if got := Extension(FormatJSON, CodecGzip); got != ".json.gz" {
		t.Errorf("Extension = %q", got)
	}
	if got := Extension(FormatMarkdown, CodecZstd); got != ".md.zst" {
		t.Errorf("Extension = %q", got)
	}
}

func TestCalculateImportance(t *testing.T) {
	tests := []struct {
		imp, max float64
		want     ImportanceLevel
	}{
		{3, 3, ImportanceHigh},
		{2, 3, ImportanceHigh},
		{1.5, 3, ImportanceMedium},
		{0.5, 3, ImportanceLow},
		{1, 0, ImportanceLow},
	}
	for _, tt := range tests {
		if got := CalculateImportance(tt.imp, tt.max); got != tt.want {
			t.Errorf("CalculateImportance(%v, %v) = %v, want %v", tt.imp, tt.max, got, tt.want)
		}
	}
}
