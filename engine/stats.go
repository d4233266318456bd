package engine

import (
	"fmt"

	"nanodash/model"
)

// Stats summarizes one dataset for the statistics panel and the
// per-status badge row.
type Stats struct {
	TotalExperiments int
	Imported         int
	Recommended      int
	Manual           int

	Pending   int
	Completed int
	Skipped   int
}

// ComputeStats counts experiments per source and recommendations per
// status over the full (unfiltered) dataset.
func ComputeStats(ds *model.Dataset) Stats {
	var s Stats
	if ds == nil {
		return s
	}
	s.TotalExperiments = len(ds.Experiments)
	for _, e := range ds.Experiments {
		switch e.Source {
		case model.SourceImported:
			s.Imported++
		case model.SourceRecommendation:
			s.Recommended++
		case model.SourceManual:
			s.Manual++
		}
	}
	for _, r := range ds.Recommendations {
		switch r.Status {
		case model.StatusPending:
			s.Pending++
		case model.StatusCompleted:
			s.Completed++
		case model.StatusSkipped:
			s.Skipped++
		}
	}
	return s
}

// SourceBreakdown renders the composite "{imported}/{recommendation}/{manual}"
// counter shown in the statistics panel.
func (s Stats) SourceBreakdown() string {
	return fmt.Sprintf("%d/%d/%d", s.Imported, s.Recommended, s.Manual)
}
