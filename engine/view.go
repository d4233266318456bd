package engine

import (
	"fmt"

	"nanodash/model"
	"nanodash/util"
)

// RecCard is the display-ready view model for one recommendation card.
// All numbers are pre-formatted strings so renderers (TUI, watch mode,
// HTML export) never touch raw fields.
type RecCard struct {
	RecID      string
	Status     string
	Timestamp  string // absolute, "Jan 2, 2006, 15:04"
	Age        string // relative, "3 hours ago"
	Completed  string // absolute completion time, "" when not completed
	SkipReason string

	Temp   string
	Time   string
	VOacac string
	DDT    string
	OAm    string

	PredSize   string // "12.3 ± 0.5"
	PredGSD    string
	PredSq     string
	PFeasible  string // percentage, "84%"
	TargetSize string
	TargetBand string // tolerance
}

// ExpRow is the display-ready view model for one experiment table row.
type ExpRow struct {
	ExpID      string
	Source     string
	Temp       string
	Time       string
	VOacac     string
	DDT        string
	OAm        string
	Size       string
	GSD        string
	Squareness string
}

// EmptyState describes the placeholder shown when a filtered view has
// no records, labeled with the active filter.
type EmptyState struct {
	What   string // "recommendations" or "experiments"
	Filter string // active filter/source label
}

func (e EmptyState) Message() string {
	if e.Filter == model.FilterAll {
		return fmt.Sprintf("No %s loaded", e.What)
	}
	return fmt.Sprintf("No %s %s", e.Filter, e.What)
}

// muStd renders "mu ± std" with the given decimals, degrading to just
// mu when std is missing.
func muStd(mu, std *float64, decimals int) string {
	m := util.FormatNumber(mu, decimals)
	if std == nil {
		return m
	}
	return m + " ± " + util.FormatNumber(std, decimals)
}

// BuildRecCards maps filtered recommendations to card view models.
func BuildRecCards(recs []model.Recommendation) []RecCard {
	cards := make([]RecCard, 0, len(recs))
	for _, r := range recs {
		card := RecCard{
			RecID:      r.RecID,
			Status:     r.Status,
			Timestamp:  util.FormatDate(r.Timestamp.Time),
			Age:        util.FormatAge(r.Timestamp.Time),
			SkipReason: r.SkipReason,

			Temp:   util.FormatNumber(r.Conditions.Temp, 0),
			Time:   util.FormatNumber(r.Conditions.Time, 0),
			VOacac: util.FormatNumber(r.Conditions.VOacac, 2),
			DDT:    util.FormatNumber(r.Conditions.DDT, 2),
			OAm:    util.FormatNumber(r.Conditions.OAm, 2),

			PredSize:   muStd(r.Predictions.SizeMu, r.Predictions.SizeStd, 1),
			PredGSD:    muStd(r.Predictions.GSDMu, r.Predictions.GSDStd, 2),
			PredSq:     muStd(r.Predictions.SqMu, r.Predictions.SqStd, 2),
			TargetSize: util.FormatNumber(r.Target.Size, 1),
			TargetBand: util.FormatNumber(r.Target.Tolerance, 1),
		}
		if r.Predictions.PFeasible != nil {
			pct := *r.Predictions.PFeasible * 100
			card.PFeasible = util.FormatFloat(pct, 0) + "%"
		} else {
			card.PFeasible = util.Missing
		}
		if r.CompletedTimestamp != nil {
			card.Completed = util.FormatDate(r.CompletedTimestamp.Time)
		}
		cards = append(cards, card)
	}
	return cards
}

// BuildExpRows maps filtered experiments to table row view models.
func BuildExpRows(exps []model.Experiment) []ExpRow {
	rows := make([]ExpRow, 0, len(exps))
	for _, e := range exps {
		rows = append(rows, ExpRow{
			ExpID:      e.ExpID,
			Source:     e.Source,
			Temp:       util.FormatNumber(e.Temp, 0),
			Time:       util.FormatNumber(e.Time, 0),
			VOacac:     util.FormatNumber(e.VOacac, 2),
			DDT:        util.FormatNumber(e.DDT, 2),
			OAm:        util.FormatNumber(e.OAm, 2),
			Size:       util.FormatNumber(e.Size, 1),
			GSD:        util.FormatNumber(e.GSD, 2),
			Squareness: util.FormatNumber(e.Squareness, 2),
		})
	}
	return rows
}

// RecView is the complete derived view for the recommendation panel.
type RecView struct {
	Cards []RecCard
	Empty *EmptyState // non-nil when Cards is empty
}

// ExpView is the complete derived view for the experiment table.
type ExpView struct {
	Rows  []ExpRow
	Empty *EmptyState
}

// DeriveRecView runs the full filter → sort → view-model pipeline for
// the recommendation panel.
func DeriveRecView(ds *model.Dataset, sel model.Selection) RecView {
	var recs []model.Recommendation
	if ds != nil {
		recs = ds.Recommendations
	}
	cards := BuildRecCards(FilterRecommendations(recs, sel.StatusFilter))
	v := RecView{Cards: cards}
	if len(cards) == 0 {
		v.Empty = &EmptyState{What: "recommendations", Filter: sel.StatusFilter}
	}
	return v
}

// DeriveExpView runs the full filter → sort → view-model pipeline for
// the experiment table.
func DeriveExpView(ds *model.Dataset, sel model.Selection) ExpView {
	var exps []model.Experiment
	if ds != nil {
		exps = ds.Experiments
	}
	rows := BuildExpRows(FilterExperiments(exps, sel.SourceFilter))
	v := ExpView{Rows: rows}
	if len(rows) == 0 {
		v.Empty = &EmptyState{What: "experiments", Filter: sel.SourceFilter}
	}
	return v
}
