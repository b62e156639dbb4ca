package main

import (
	"time"

	"github.com/google/uuid"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/version"
)

// SchemaVersion is bumped when the response envelope changes shape.
const SchemaVersion = 1

// Response is the common wrapper for all devkit command responses
type Response struct {
	DevkitVersion string      `json:"devkitVersion"`
	SchemaVersion int         `json:"schemaVersion"`
	RequestID     string      `json:"requestId"`
	Command       string      `json:"command"`
	Facts         interface{} `json:"facts"`
	Provenance    *Provenance `json:"provenance"`
}

// Provenance describes the data a response was computed from
type Provenance struct {
	DirectorySource string   `json:"directorySource"` // "built-in" or a file path
	JourneysSource  string   `json:"journeysSource"`
	ToolCount       int      `json:"toolCount"`
	EdgeCount       int      `json:"edgeCount"`
	Warnings        []string `json:"warnings"`
	Truncations     []string `json:"truncations"`
	QueryDurationMs int64    `json:"queryDurationMs"`
}

// NewResponse creates a response with provenance from the loaded app
func NewResponse(command string, facts interface{}, a *app, start time.Time) *Response {
	return &Response{
		DevkitVersion: version.Version,
		SchemaVersion: SchemaVersion,
		RequestID:     uuid.NewString(),
		Command:       command,
		Facts:         facts,
		Provenance: &Provenance{
			DirectorySource: sourceName(a.cfg.ResolvePath(a.cfg.Catalog.DirectoryPath)),
			JourneysSource:  sourceName(a.cfg.ResolvePath(a.cfg.Catalog.JourneysPath)),
			ToolCount:       a.catalog.Directory.Len(),
			EdgeCount:       a.catalog.Graph.NumEdges(),
			Warnings:        []string{},
			Truncations:     []string{},
			QueryDurationMs: measureDuration(start),
		},
	}
}

// AddWarning adds a warning to the provenance
func (r *Response) AddWarning(warning string) {
	r.Provenance.Warnings = append(r.Provenance.Warnings, warning)
}

// AddTruncation records a truncation event
func (r *Response) AddTruncation(description string) {
	r.Provenance.Truncations = append(r.Provenance.Truncations, description)
}

func sourceName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

// measureDuration is a helper to measure execution time
func measureDuration(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
