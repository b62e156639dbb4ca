// Package recommend decides which tools to surface next to a user.
//
// Three independent signals feed a single ranked list: the curated workflow
// graph, the user's usage history and category similarity. Every operation
// is pure and total; unknown tools simply produce fewer recommendations.
package recommend

import "github.com/shjeon-96/dev-tool-kit-sub005/internal/graph"

// Reason names the signal a recommendation came from.
type Reason string

const (
	// ReasonWorkflow marks a curated next step from the workflow graph.
	ReasonWorkflow Reason = "workflow"
	// ReasonHistory marks a tool the user visits often.
	ReasonHistory Reason = "history"
	// ReasonCategory marks a tool sharing the current tool's category.
	ReasonCategory Reason = "category"
)

// priority orders sources when weights tie; lower wins.
func (r Reason) priority() int {
	switch r {
	case ReasonWorkflow:
		return 0
	case ReasonHistory:
		return 1
	default:
		return 2
	}
}

const (
	// WorkflowCeiling is the weight of the first step in a journey.
	WorkflowCeiling = graph.MaxEdgeWeight
	// WorkflowFloor is the lowest weight a workflow recommendation can carry.
	WorkflowFloor = graph.MinEdgeWeight
	// HistoryWeight is the fixed weight of history recommendations.
	HistoryWeight = 0.5
	// CategoryWeight is the fixed weight of category recommendations.
	CategoryWeight = 0.3

	// DefaultHistoryLimit caps how many history tools are considered.
	DefaultHistoryLimit = 5
	// DefaultMaxResults caps the merged recommendation list.
	DefaultMaxResults = 10
)

// Recommendation is a single suggested tool. Weight orders recommendations
// and is not a probability.
type Recommendation struct {
	Target string  `json:"target" yaml:"target" toml:"target"`
	Weight float64 `json:"weight" yaml:"weight" toml:"weight"`
	Reason Reason  `json:"reason" yaml:"reason" toml:"reason"`
}

// Directory is the read-only tool lookup the resolvers depend on.
type Directory interface {
	IsValidToolSlug(id string) bool
	Category(id string) (string, bool)
	InCategory(category string) []string
}

// Workflow is the read-only journey lookup the workflow resolver depends on.
type Workflow interface {
	Journey(id string) []string
}
