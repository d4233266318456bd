package engine

import (
	"testing"
	"time"

	"nanodash/model"
)

func fp(v float64) *float64 { return &v }

func TestBuildRecCards(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	r := model.Recommendation{
		RecID:     "rec_7",
		Status:    model.StatusPending,
		Timestamp: model.Timestamp{Time: ts},
		Conditions: model.Conditions{
			Temp: fp(240), Time: fp(30), VOacac: fp(1.25), DDT: fp(2), OAm: fp(4),
		},
		Predictions: model.Predictions{
			SizeMu: fp(12.34), SizeStd: fp(0.56),
			GSDMu: fp(1.18), GSDStd: fp(0.03),
			SqMu: fp(0.71), SqStd: fp(0.05),
			PFeasible: fp(0.84),
		},
		Target: model.Target{Size: fp(12), Tolerance: fp(1)},
	}

	cards := BuildRecCards([]model.Recommendation{r})
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}
	c := cards[0]

	if c.Temp != "240" {
		t.Errorf("Temp = %q, want 240", c.Temp)
	}
	if c.VOacac != "1.25" {
		t.Errorf("VOacac = %q, want 1.25", c.VOacac)
	}
	if c.PredSize != "12.3 ± 0.6" {
		t.Errorf("PredSize = %q, want 12.3 ± 0.6", c.PredSize)
	}
	if c.PFeasible != "84%" {
		t.Errorf("PFeasible = %q, want 84%%", c.PFeasible)
	}
	if c.TargetSize != "12.0" {
		t.Errorf("TargetSize = %q, want 12.0", c.TargetSize)
	}
	if c.Timestamp != "Jun 1, 2025, 12:00" {
		t.Errorf("Timestamp = %q, want Jun 1, 2025, 12:00", c.Timestamp)
	}
	if c.Completed != "" {
		t.Errorf("Completed = %q, want empty for pending", c.Completed)
	}
}

func TestBuildRecCardsMissingFields(t *testing.T) {
	r := model.Recommendation{RecID: "rec_1", Status: model.StatusSkipped, SkipReason: "reactor down"}
	c := BuildRecCards([]model.Recommendation{r})[0]

	if c.Temp != "--" || c.PredSize != "--" || c.PFeasible != "--" {
		t.Errorf("missing fields should render --, got Temp=%q PredSize=%q PFeasible=%q",
			c.Temp, c.PredSize, c.PFeasible)
	}
	if c.Timestamp != "--" {
		t.Errorf("zero timestamp = %q, want --", c.Timestamp)
	}
	if c.SkipReason != "reactor down" {
		t.Errorf("SkipReason = %q", c.SkipReason)
	}
}

func TestBuildExpRows(t *testing.T) {
	e := model.Experiment{
		ExpID:  "E5",
		Source: model.SourceManual,
		Temp:   fp(220), Time: fp(45),
		VOacac: fp(0.5), DDT: fp(1.755), OAm: fp(3),
		Size: fp(11.27), GSD: fp(1.21),
	}
	rows := BuildExpRows([]model.Experiment{e})
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	r := rows[0]

	if r.Temp != "220" || r.Time != "45" {
		t.Errorf("Temp/Time = %q/%q, want 220/45", r.Temp, r.Time)
	}
	if r.Size != "11.3" {
		t.Errorf("Size = %q, want 11.3", r.Size)
	}
	if r.Squareness != "--" {
		t.Errorf("missing Squareness = %q, want --", r.Squareness)
	}
	if r.Source != model.SourceManual {
		t.Errorf("Source = %q", r.Source)
	}
}

func TestDeriveViewsEmptyStates(t *testing.T) {
	ds := &model.Dataset{
		Experiments:     []model.Experiment{exp("E1", model.SourceImported)},
		Recommendations: []model.Recommendation{rec("rec_1", model.StatusPending, time.Now())},
	}

	sel := model.Selection{StatusFilter: model.StatusSkipped, SourceFilter: model.SourceManual}
	rv := DeriveRecView(ds, sel)
	ev := DeriveExpView(ds, sel)

	if rv.Empty == nil {
		t.Fatal("expected recommendation empty state")
	}
	if got := rv.Empty.Message(); got != "No skipped recommendations" {
		t.Errorf("rec empty message = %q", got)
	}
	if ev.Empty == nil {
		t.Fatal("expected experiment empty state")
	}
	if got := ev.Empty.Message(); got != "No manual experiments" {
		t.Errorf("exp empty message = %q", got)
	}

	all := model.DefaultSelection()
	if v := DeriveRecView(ds, all); v.Empty != nil || len(v.Cards) != 1 {
		t.Errorf("all filter: cards=%d empty=%v", len(v.Cards), v.Empty)
	}
}

func TestDeriveViewsNilDataset(t *testing.T) {
	sel := model.DefaultSelection()
	if v := DeriveRecView(nil, sel); v.Empty == nil {
		t.Error("nil dataset should yield an empty state")
	}
	if v := DeriveExpView(nil, sel); v.Empty == nil {
		t.Error("nil dataset should yield an empty state")
	}
	if got := (EmptyState{What: "experiments", Filter: model.FilterAll}).Message(); got != "No experiments loaded" {
		t.Errorf("all-filter empty message = %q", got)
	}
}
