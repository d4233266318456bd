package model

import "time"

// Experiment source provenance tags.
const (
	SourceImported       = "imported"
	SourceRecommendation = "recommendation"
	SourceManual         = "manual"
)

// Recommendation lifecycle statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusSkipped   = "skipped"
)

// FilterAll selects every record regardless of status or source.
const FilterAll = "all"

// Experiment is one completed synthesis run with measured outcomes.
// Numeric fields are pointers so that null/missing JSON values stay
// distinguishable from zero; the formatter renders them as "--".
type Experiment struct {
	ExpID      string   `json:"exp_id"`
	Temp       *float64 `json:"Temp"`
	Time       *float64 `json:"Time"`
	VOacac     *float64 `json:"VOacac"`
	DDT        *float64 `json:"DDT"`
	OAm        *float64 `json:"OAm"`
	Size       *float64 `json:"Size"`
	GSD        *float64 `json:"GSD"`
	Squareness *float64 `json:"Squareness"`
	Source     string   `json:"source"`
}

// Conditions are the synthesis parameters proposed by the optimizer.
type Conditions struct {
	Temp   *float64 `json:"Temp"`
	Time   *float64 `json:"Time"`
	VOacac *float64 `json:"VOacac"`
	DDT    *float64 `json:"DDT"`
	OAm    *float64 `json:"OAm"`
}

// Predictions are the optimizer's posterior estimates for a proposed run.
type Predictions struct {
	SizeMu    *float64 `json:"size_mu"`
	SizeStd   *float64 `json:"size_std"`
	GSDMu     *float64 `json:"gsd_mu"`
	GSDStd    *float64 `json:"gsd_std"`
	SqMu      *float64 `json:"sq_mu"`
	SqStd     *float64 `json:"sq_std"`
	PFeasible *float64 `json:"p_feasible"`
}

// Target is the campaign objective the recommendation was generated against.
type Target struct {
	Size      *float64 `json:"size"`
	Tolerance *float64 `json:"tolerance"`
}

// Recommendation is an optimizer-proposed set of conditions awaiting execution.
type Recommendation struct {
	RecID              string      `json:"rec_id"`
	Status             string      `json:"status"`
	Conditions         Conditions  `json:"conditions"`
	Predictions        Predictions `json:"predictions"`
	Target             Target      `json:"target"`
	Timestamp          Timestamp   `json:"timestamp"`
	CompletedTimestamp *Timestamp  `json:"completed_timestamp,omitempty"`
	SkipReason         string      `json:"skip_reason,omitempty"`
}

// Dataset is one immutable point-in-time load of both JSON sources.
// The slices are never mutated after Load returns.
type Dataset struct {
	Experiments     []Experiment
	Recommendations []Recommendation
	LoadedAt        time.Time
}

// Selection is the UI filter state. It is the only mutable state in the
// application and is owned exclusively by the TUI model; every derivation
// is a pure function of (Dataset, Selection).
type Selection struct {
	StatusFilter string // all, pending, completed, skipped
	SourceFilter string // all, imported, recommendation, manual
}

// DefaultSelection shows everything.
func DefaultSelection() Selection {
	return Selection{StatusFilter: FilterAll, SourceFilter: FilterAll}
}

// ValidStatusFilter reports whether s is a recognized status-filter value.
func ValidStatusFilter(s string) bool {
	switch s {
	case FilterAll, StatusPending, StatusCompleted, StatusSkipped:
		return true
	}
	return false
}

// ValidSourceFilter reports whether s is a recognized source-filter value.
func ValidSourceFilter(s string) bool {
	switch s {
	case FilterAll, SourceImported, SourceRecommendation, SourceManual:
		return true
	}
	return false
}
