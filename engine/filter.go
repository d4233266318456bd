// Package engine derives filtered, sorted views and summary statistics
// from a loaded dataset. Every function here is pure: the dataset is
// never mutated and the same (dataset, selection) pair always yields
// the same view.
package engine

import (
	"sort"

	"nanodash/model"
	"nanodash/util"
)

// FilterRecommendations returns the recommendations matching the status
// filter, most recent first. Equal timestamps tie-break by RecID
// ascending so that output order is deterministic across loads.
func FilterRecommendations(recs []model.Recommendation, statusFilter string) []model.Recommendation {
	out := make([]model.Recommendation, 0, len(recs))
	for _, r := range recs {
		if statusFilter == model.FilterAll || r.Status == statusFilter {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := out[i].Timestamp.Time, out[j].Timestamp.Time
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return out[i].RecID < out[j].RecID
	})
	return out
}

// FilterExperiments returns the experiments matching the source filter,
// sorted ascending by the numeric key of ExpID ("E2" before "E10").
// The sort is stable: malformed IDs all key to 0 and keep load order.
func FilterExperiments(exps []model.Experiment, sourceFilter string) []model.Experiment {
	out := make([]model.Experiment, 0, len(exps))
	for _, e := range exps {
		if sourceFilter == model.FilterAll || e.Source == sourceFilter {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return util.NumericID(out[i].ExpID) < util.NumericID(out[j].ExpID)
	})
	return out
}
