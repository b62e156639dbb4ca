package catalog

import (
	"fmt"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/graph"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/tools"
)

// Severity grades an integrity issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// IssueCode identifies the kind of integrity issue.
type IssueCode string

const (
	UnknownSource    IssueCode = "unknown-source"
	UnknownTarget    IssueCode = "unknown-target"
	SelfLoop         IssueCode = "self-loop"
	DuplicateTarget  IssueCode = "duplicate-target"
	DuplicateJourney IssueCode = "duplicate-journey"
	EmptyJourney     IssueCode = "empty-journey"
	Unreferenced     IssueCode = "unreferenced"
)

// Issue is a single integrity finding.
type Issue struct {
	Severity Severity  `json:"severity" yaml:"severity" toml:"severity"`
	Code     IssueCode `json:"code" yaml:"code" toml:"code"`
	Tool     string    `json:"tool" yaml:"tool" toml:"tool"`
	Target   string    `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty"`
	Message  string    `json:"message" yaml:"message" toml:"message"`
}

// Validate checks journeys against dir. Errors mark data the graph builder
// silently drops or that would surface unknown tools; warnings mark data that
// is legal but likely unintended.
func Validate(dir *tools.Directory, journeys []graph.Journey) []Issue {
	var issues []Issue
	add := func(sev Severity, code IssueCode, tool, target, format string, args ...any) {
		issues = append(issues, Issue{
			Severity: sev,
			Code:     code,
			Tool:     tool,
			Target:   target,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	referenced := make(map[string]bool)
	declared := make(map[string]bool)

	for _, j := range journeys {
		referenced[j.Tool] = true
		if !dir.IsValidToolSlug(j.Tool) {
			add(SeverityError, UnknownSource, j.Tool, "", "journey source %q is not in the tool directory", j.Tool)
		}
		if declared[j.Tool] {
			add(SeverityWarning, DuplicateJourney, j.Tool, "", "journey for %q is declared more than once", j.Tool)
		}
		declared[j.Tool] = true

		if len(j.Next) == 0 {
			add(SeverityWarning, EmptyJourney, j.Tool, "", "journey for %q has no next steps", j.Tool)
		}

		seen := make(map[string]bool, len(j.Next))
		for _, next := range j.Next {
			referenced[next] = true
			switch {
			case next == j.Tool:
				add(SeverityError, SelfLoop, j.Tool, next, "journey for %q points at itself", j.Tool)
			case seen[next]:
				add(SeverityWarning, DuplicateTarget, j.Tool, next, "journey for %q lists %q more than once", j.Tool, next)
			case !dir.IsValidToolSlug(next):
				add(SeverityError, UnknownTarget, j.Tool, next, "journey for %q points at unknown tool %q", j.Tool, next)
			}
			seen[next] = true
		}
	}

	for _, slug := range dir.Slugs() {
		if !referenced[slug] {
			add(SeverityWarning, Unreferenced, slug, "", "tool %q appears in no journey", slug)
		}
	}

	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate checks the catalog's own journeys against its directory.
func (c *Catalog) Validate() []Issue {
	return Validate(c.Directory, c.Journeys)
}
