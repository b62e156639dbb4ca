package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/errors"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/export"
)

var (
	exportAs            string
	exportCompress      string
	exportOut           string
	exportCategory      string
	exportMinImportance float64
	exportLinkLimit     int
	exportHubs          int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the tool link graph for a static site build",
	Long: `Export every tool with its importance, journey, inbound links, planned
internal links and recommendations, plus the site-wide hubs.

Without --out the export is written to stdout. With --out it is written to
that file, or to a directory as tools<ext> (for example tools.json.gz).

Examples:
  devkit export > site/tools.json
  devkit export --as=yaml --category=encoding
  devkit export --as=markdown --out=docs/
  devkit export --compress=zstd --out=dist/`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportAs, "as", "", "Export format: json, yaml, toml, markdown (default: export.format)")
	exportCmd.Flags().StringVar(&exportCompress, "compress", "", "Compression: none, gzip, zstd (default: export.compression)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file or directory")
	exportCmd.Flags().StringVar(&exportCategory, "category", "", "Only export tools in this category")
	exportCmd.Flags().Float64Var(&exportMinImportance, "min-importance", 0, "Only export tools with importance >= N")
	exportCmd.Flags().IntVar(&exportLinkLimit, "links", 0, "Planned links per tool (default: seo.linkLimit)")
	exportCmd.Flags().IntVar(&exportHubs, "hubs", 0, "Site-wide hubs (default: seo.hubCount)")
	rootCmd.AddCommand(exportCmd)
}

// ExportResponseCLI reports an export written to a file
type ExportResponseCLI struct {
	Path        string `json:"path"`
	Format      string `json:"format"`
	Compression string `json:"compression"`
	Tools       int    `json:"tools"`
	Bytes       int    `json:"bytes"`
}

func runExport(cmd *cobra.Command, args []string) error {
	start := time.Now()
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	format, err := export.ParseFormat(firstNonEmpty(exportAs, a.cfg.Export.Format))
	if err != nil {
		return err
	}
	codec, err := export.ParseCodec(firstNonEmpty(exportCompress, a.cfg.Export.Compression))
	if err != nil {
		return err
	}

	opts := export.ExportOptions{
		Category:      exportCategory,
		MinImportance: exportMinImportance,
		LinkLimit:     firstPositive(exportLinkLimit, a.cfg.SEO.LinkLimit),
		HubCount:      firstPositive(exportHubs, a.cfg.SEO.HubCount),
		// Recommendation lists match what the recommend command shows.
		MaxRecommendations: a.cfg.Recommend.MaxResults,
	}

	exporter := export.NewExporter(a.catalog, a.engine, a.planner, a.cfg.Importance.Alpha, a.logger)
	site, err := exporter.Export(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if exportOut == "" {
		return export.Write(cmd.OutOrStdout(), site, format, codec)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, site, format, codec); err != nil {
		return err
	}

	path := exportOut
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		path = filepath.Join(path, "tools"+export.Extension(format, codec))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.New(errors.ExportFailed, "failed to create output directory", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.New(errors.ExportFailed, "failed to write export", err).
			WithDetails(map[string]string{"path": path})
	}

	a.logger.Info("Export written",
		slog.String("path", path),
		slog.Int("tools", len(site.Tools)),
		slog.Int("bytes", buf.Len()),
	)

	facts := &ExportResponseCLI{
		Path:        path,
		Format:      string(format),
		Compression: string(codec),
		Tools:       len(site.Tools),
		Bytes:       buf.Len(),
	}
	return writeResponse(cmd, NewResponse("export", facts, a, start))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
