package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/errors"
)

// Format is an export serialization.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTOML     Format = "toml"
	FormatMarkdown Format = "markdown"
)

// Codec is an optional compression wrapper.
type Codec string

const (
	CodecNone Codec = "none"
	CodecGzip Codec = "gzip"
	CodecZstd Codec = "zstd"
)

// ParseFormat parses a format name. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatYAML, FormatTOML, FormatMarkdown:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", errors.New(errors.InvalidArgument, fmt.Sprintf("unknown export format %q", s), nil)
	}
}

// ParseCodec parses a codec name. Empty means no compression.
func ParseCodec(s string) (Codec, error) {
	switch c := Codec(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CodecNone, nil
	case CodecNone, CodecGzip, CodecZstd:
		return c, nil
	case "gz":
		return CodecGzip, nil
	case "zst":
		return CodecZstd, nil
	default:
		return "", errors.New(errors.InvalidArgument, fmt.Sprintf("unknown compression %q", s), nil)
	}
}

// Extension returns the conventional file suffix for format and codec,
// e.g. ".json.gz".
func Extension(format Format, codec Codec) string {
	ext := "." + string(format)
	if format == FormatMarkdown {
		ext = ".md"
	}
	switch codec {
	case CodecGzip:
		ext += ".gz"
	case CodecZstd:
		ext += ".zst"
	}
	return ext
}

// Write serializes export to w in format, wrapped in codec.
func Write(w io.Writer, export *SiteExport, format Format, codec Codec) error {
	cw, err := wrap(w, codec)
	if err != nil {
		return errors.New(errors.ExportFailed, "failed to start compression", err)
	}

	if err := encode(cw, export, format); err != nil {
		_ = cw.Close()
		return errors.New(errors.ExportFailed, fmt.Sprintf("failed to encode %s export", format), err)
	}

	if err := cw.Close(); err != nil {
		return errors.New(errors.ExportFailed, "failed to flush export", err)
	}
	return nil
}

func encode(w io.Writer, export *SiteExport, format Format) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(export)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(export); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(export)
	case FormatMarkdown:
		_, err := io.WriteString(w, FormatOrganizedText(NewOrganizer(export).Organize()))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func wrap(w io.Writer, codec Codec) (io.WriteCloser, error) {
	switch codec {
	case CodecNone, "":
		return nopCloser{w}, nil
	case CodecGzip:
		return gzip.NewWriter(w), nil
	case CodecZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, err
		}
		return enc, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", codec)
	}
}
