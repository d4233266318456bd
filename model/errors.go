package model

import "fmt"

// LoadError stages, in the order a fetch can fail.
const (
	LoadStageFetch  = "fetch"  // transport-level failure
	LoadStageStatus = "status" // non-success HTTP status
	LoadStageParse  = "parse"  // JSON decode failure
)

// LoadError reports a failed dataset load. Either source failing fails the
// load as a unit; the UI replaces both data panels with an error state
// rather than showing partial data.
type LoadError struct {
	Source string // which document failed: "experiments" or "recommendations"
	Stage  string // fetch, status, parse
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s (%s): %v", e.Source, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
