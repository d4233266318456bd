package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"nanodash/engine"
	"nanodash/model"
)

func fp(v float64) *float64 { return &v }

func testDataset() *model.Dataset {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &model.Dataset{
		Experiments: []model.Experiment{
			{ExpID: "E1", Source: model.SourceImported, Temp: fp(240), Size: fp(12.1)},
			{ExpID: "E2", Source: model.SourceRecommendation},
			{ExpID: "E3", Source: model.SourceManual},
		},
		Recommendations: []model.Recommendation{
			{RecID: "rec_1", Status: model.StatusPending, Timestamp: model.Timestamp{Time: base}},
			{RecID: "rec_2", Status: model.StatusCompleted, Timestamp: model.Timestamp{Time: base.Add(time.Hour)}},
			{RecID: "rec_3", Status: model.StatusSkipped, Timestamp: model.Timestamp{Time: base.Add(2 * time.Hour)}, SkipReason: "duplicate"},
		},
		LoadedAt: base,
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(nil, 0, model.DefaultSelection())
	m.width = 100
	m.height = 40
	m.ds = testDataset()
	m.rederive()
	return m
}

func TestRenderRecsPage(t *testing.T) {
	m := loadedModel(t)
	out := m.View()

	for _, want := range []string{"rec_1", "rec_2", "rec_3", "1/1/1", "PENDING", "COMPLETED", "SKIPPED"} {
		if !strings.Contains(out, want) {
			t.Errorf("recs page missing %q", want)
		}
	}
}

func TestStatusFilterRefreshesRecsOnly(t *testing.T) {
	m := loadedModel(t)
	expBefore := m.expView

	m.setStatusFilter(model.StatusPending)

	if len(m.recView.Cards) != 1 || m.recView.Cards[0].RecID != "rec_1" {
		t.Errorf("pending filter cards = %+v", m.recView.Cards)
	}
	if len(m.expView.Rows) != len(expBefore.Rows) {
		t.Error("experiment view changed on a status filter switch")
	}
}

func TestSourceFilterRefreshesExperimentsOnly(t *testing.T) {
	m := loadedModel(t)
	recBefore := m.recView

	m.setSourceFilter(model.SourceManual)

	if len(m.expView.Rows) != 1 || m.expView.Rows[0].ExpID != "E3" {
		t.Errorf("manual filter rows = %+v", m.expView.Rows)
	}
	if len(m.recView.Cards) != len(recBefore.Cards) {
		t.Error("recommendation view changed on a source filter switch")
	}
}

func TestFilterKeysOnExperimentPage(t *testing.T) {
	m := loadedModel(t)
	m.page = PageExperiments

	next, _ := m.Update(key("m"))
	m = next.(Model)
	if m.sel.SourceFilter != model.SourceManual {
		t.Errorf("SourceFilter = %q, want manual", m.sel.SourceFilter)
	}
	if m.sel.StatusFilter != model.FilterAll {
		t.Errorf("StatusFilter changed to %q", m.sel.StatusFilter)
	}
}

func TestLoadErrorReplacesBothPanels(t *testing.T) {
	m := loadedModel(t)
	next, _ := m.Update(loadMsg{err: &model.LoadError{Source: "experiments", Stage: model.LoadStageStatus, Err: errFake}})
	m = next.(Model)

	for _, page := range []Page{PageRecommendations, PageExperiments} {
		m.page = page
		out := m.View()
		if !strings.Contains(out, "LOAD ERROR") {
			t.Errorf("page %d missing error panel", page)
		}
		if strings.Contains(out, "rec_1") || strings.Contains(out, "E1") {
			t.Errorf("page %d shows stale data alongside the error", page)
		}
	}
}

var errFake = fakeErr{}

type fakeErr struct{}

func (fakeErr) Error() string { return "boom" }

func TestOverlappingRefreshSkipsTick(t *testing.T) {
	m := loadedModel(t)
	m.interval = time.Second
	m.loading = true

	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if !m.loading {
		t.Error("in-flight load flag cleared by tick")
	}
	if cmd == nil {
		t.Error("tick must be rescheduled while a load is in flight")
	}
}

func TestEmptyStateRendered(t *testing.T) {
	m := loadedModel(t)
	m.ds.Recommendations = nil
	m.rederive()
	out := m.View()
	if !strings.Contains(out, "No recommendations loaded") {
		t.Error("missing empty state for recommendations")
	}
}

func TestSnippetFormTyping(t *testing.T) {
	f := newSnippetForm()
	f.values[0] = ""

	f.typeRune("2")
	f.typeRune("4")
	f.typeRune("x") // ignored
	f.typeRune("0")
	if f.values[0] != "240" {
		t.Errorf("typed value = %q, want 240", f.values[0])
	}

	f.backspace()
	if f.values[0] != "24" {
		t.Errorf("after backspace = %q, want 24", f.values[0])
	}

	f.next()
	if f.focused != 1 {
		t.Errorf("focused = %d, want 1", f.focused)
	}
	f.prev()
	f.prev()
	if f.focused != len(f.values)-1 {
		t.Errorf("prev should wrap, focused = %d", f.focused)
	}
}

func TestExperimentColumnsRightAligned(t *testing.T) {
	m := loadedModel(t)
	m.page = PageExperiments
	out := m.View()

	// Numeric cells are right-aligned in an 8-wide column.
	if !strings.Contains(out, "     240") {
		t.Errorf("Temp cell not right-aligned:\n%s", out)
	}
	if !strings.Contains(out, "      --") {
		t.Errorf("missing-value cell not right-aligned:\n%s", out)
	}
	if !strings.Contains(out, "    TEMP") {
		t.Errorf("numeric header not right-aligned:\n%s", out)
	}
}

func TestSnippetFlagsNonNumericField(t *testing.T) {
	f := newSnippetForm()
	f.values[0] = "2..4" // typable: digits, dots and minus pass the rune filter
	if !f.invalid(0) {
		t.Error("2..4 should be flagged")
	}
	if f.invalid(1) {
		t.Errorf("%q should not be flagged", f.values[1])
	}
	f.values[2] = ""
	if f.invalid(2) {
		t.Error("empty field should not be flagged, snippet substitutes 0")
	}

	out := renderSnippetPage(f, 80)
	if !strings.Contains(out, "not a number") {
		t.Error("invalid field marker missing")
	}
	if !strings.Contains(out, "fix the marked fields") {
		t.Error("invalid form hint missing")
	}

	out = renderSnippetPage(newSnippetForm(), 80)
	if strings.Contains(out, "not a number") {
		t.Error("marker shown for a fully numeric form")
	}
}

func TestRenderSnippetPage(t *testing.T) {
	form := newSnippetForm()
	out := renderSnippetPage(form, 80)

	if !strings.Contains(out, "optimizer.register_experiment(") {
		t.Error("snippet preview missing")
	}
	if !strings.Contains(out, "Temp=200,") {
		t.Errorf("default Temp not interpolated:\n%s", out)
	}
}

func TestClipboardFailureIsNonFatal(t *testing.T) {
	m := loadedModel(t)
	next, _ := m.Update(copiedMsg{err: errFake})
	m = next.(Model)
	if !strings.Contains(m.statusMsg, "Clipboard copy failed") {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
	// The data views are untouched.
	if len(m.recView.Cards) != 3 {
		t.Error("clipboard failure altered application state")
	}
}

func TestStatsLinesBreakdown(t *testing.T) {
	stats := engine.ComputeStats(testDataset())
	lines := renderStatsLines(stats)
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "1/1/1") {
		t.Errorf("stats lines missing source breakdown: %s", joined)
	}
}
