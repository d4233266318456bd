package engine

import (
	"reflect"
	"testing"
	"time"

	"nanodash/model"
)

func rec(id, status string, ts time.Time) model.Recommendation {
	return model.Recommendation{
		RecID:     id,
		Status:    status,
		Timestamp: model.Timestamp{Time: ts},
	}
}

func exp(id, source string) model.Experiment {
	return model.Experiment{ExpID: id, Source: source}
}

func recIDs(recs []model.Recommendation) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.RecID
	}
	return ids
}

func expIDs(exps []model.Experiment) []string {
	ids := make([]string, len(exps))
	for i, e := range exps {
		ids[i] = e.ExpID
	}
	return ids
}

func TestFilterRecommendationsByStatus(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	recs := []model.Recommendation{
		rec("rec_1", model.StatusPending, base),
		rec("rec_2", model.StatusCompleted, base.Add(time.Hour)),
		rec("rec_3", model.StatusSkipped, base.Add(2*time.Hour)),
		rec("rec_4", model.StatusPending, base.Add(3*time.Hour)),
	}

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{"pending only", model.StatusPending, []string{"rec_4", "rec_1"}},
		{"completed only", model.StatusCompleted, []string{"rec_2"}},
		{"skipped only", model.StatusSkipped, []string{"rec_3"}},
		{"all newest first", model.FilterAll, []string{"rec_4", "rec_3", "rec_2", "rec_1"}},
		{"no match", "nonexistent", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRecommendations(recs, tt.filter)
			for _, r := range got {
				if tt.filter != model.FilterAll && r.Status != tt.filter {
					t.Errorf("record %s has status %q, want %q", r.RecID, r.Status, tt.filter)
				}
			}
			if !reflect.DeepEqual(recIDs(got), tt.want) {
				t.Errorf("order = %v, want %v", recIDs(got), tt.want)
			}
		})
	}
}

func TestFilterRecommendationsTieBreak(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	recs := []model.Recommendation{
		rec("rec_b", model.StatusPending, ts),
		rec("rec_a", model.StatusPending, ts),
		rec("rec_c", model.StatusPending, ts),
	}
	got := recIDs(FilterRecommendations(recs, model.FilterAll))
	want := []string{"rec_a", "rec_b", "rec_c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("equal timestamps tie-break = %v, want %v", got, want)
	}
}

func TestFilterRecommendationsSortIdempotent(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	recs := []model.Recommendation{
		rec("rec_1", model.StatusPending, base.Add(time.Hour)),
		rec("rec_2", model.StatusPending, base),
	}
	once := FilterRecommendations(recs, model.FilterAll)
	twice := FilterRecommendations(once, model.FilterAll)
	if !reflect.DeepEqual(recIDs(once), recIDs(twice)) {
		t.Errorf("re-sorting changed order: %v -> %v", recIDs(once), recIDs(twice))
	}
}

func TestFilterRecommendationsDoesNotMutateInput(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	recs := []model.Recommendation{
		rec("rec_1", model.StatusPending, base),
		rec("rec_2", model.StatusPending, base.Add(time.Hour)),
	}
	FilterRecommendations(recs, model.FilterAll)
	if recs[0].RecID != "rec_1" || recs[1].RecID != "rec_2" {
		t.Errorf("input slice was reordered: %v", recIDs(recs))
	}
}

func TestFilterExperimentsNumericSort(t *testing.T) {
	exps := []model.Experiment{
		exp("E2", model.SourceImported),
		exp("E10", model.SourceImported),
		exp("E1", model.SourceImported),
	}
	got := expIDs(FilterExperiments(exps, model.FilterAll))
	want := []string{"E1", "E2", "E10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("numeric sort = %v, want %v (not lexicographic)", got, want)
	}
}

func TestFilterExperimentsBySource(t *testing.T) {
	exps := []model.Experiment{
		exp("E1", model.SourceImported),
		exp("E2", model.SourceRecommendation),
		exp("E3", model.SourceManual),
	}

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{"imported", model.SourceImported, []string{"E1"}},
		{"recommendation", model.SourceRecommendation, []string{"E2"}},
		{"manual", model.SourceManual, []string{"E3"}},
		{"all", model.FilterAll, []string{"E1", "E2", "E3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterExperiments(exps, tt.filter)
			for _, e := range got {
				if tt.filter != model.FilterAll && e.Source != tt.filter {
					t.Errorf("row %s has source %q, want %q", e.ExpID, e.Source, tt.filter)
				}
			}
			if !reflect.DeepEqual(expIDs(got), tt.want) {
				t.Errorf("order = %v, want %v", expIDs(got), tt.want)
			}
		})
	}
}

func TestFilterExperimentsMalformedIDsStable(t *testing.T) {
	// IDs with no digits key to 0 and must keep load order.
	exps := []model.Experiment{
		exp("beta", model.SourceManual),
		exp("alpha", model.SourceManual),
		exp("E1", model.SourceManual),
	}
	got := expIDs(FilterExperiments(exps, model.FilterAll))
	want := []string{"beta", "alpha", "E1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("stable sort with zero keys = %v, want %v", got, want)
	}
}
