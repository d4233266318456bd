package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nanodash/config"
	"nanodash/engine"
	"nanodash/loader"
	"nanodash/model"
)

// Page identifies the current screen.
type Page int

const (
	PageRecommendations Page = iota
	PageExperiments
	PageSnippet
	pageCount
)

var pageNames = []string{"Recommendations", "Experiments", "Snippet"}

// statusFilters and sourceFilters are the tab cycles for each panel.
var statusFilters = []string{model.FilterAll, model.StatusPending, model.StatusCompleted, model.StatusSkipped}
var sourceFilters = []string{model.FilterAll, model.SourceImported, model.SourceRecommendation, model.SourceManual}

type tickMsg time.Time

// loadMsg carries one completed dataset load (or its unified failure).
type loadMsg struct {
	ds  *model.Dataset
	err error
}

// copiedMsg is sent after a clipboard write attempt.
type copiedMsg struct {
	err error
}

// Model is the bubbletea model.
type Model struct {
	src      loader.Source
	interval time.Duration // 0 disables auto-refresh
	width    int
	height   int

	// Data snapshot + derived views. The views are recomputed in full
	// whenever the snapshot or the relevant filter changes; they are
	// never patched incrementally.
	ds      *model.Dataset
	loadErr error
	loading bool

	sel     model.Selection
	stats   engine.Stats
	recView engine.RecView
	expView engine.ExpView

	// Navigation
	page     Page
	showHelp bool
	scroll   int
	paused   bool

	// Snippet form
	form snippetForm

	// Status feedback
	statusMsg     string
	statusMsgTime time.Time
}

// NewModel creates a new TUI model. interval of 0 disables auto-refresh.
func NewModel(src loader.Source, interval time.Duration, sel model.Selection) Model {
	return Model{
		src:      src,
		interval: interval,
		sel:      sel,
		form:     newSnippetForm(),
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadCmd(m.src)}
	if m.interval > 0 {
		cmds = append(cmds, tick(m.interval))
	}
	return tea.Batch(cmds...)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func loadCmd(src loader.Source) tea.Cmd {
	return func() tea.Msg {
		ds, err := loader.Load(context.Background(), src)
		return loadMsg{ds: ds, err: err}
	}
}

// copyCmd writes text to the terminal clipboard via an OSC 52 escape
// sequence. Failure is reported in the status line, never fatal.
func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		seq := osc52.New(text)
		if os.Getenv("TMUX") != "" {
			seq = seq.Tmux()
		}
		_, err := seq.WriteTo(os.Stderr)
		return copiedMsg{err: err}
	}
}

// rederive recomputes views after a new snapshot arrives. Filter-only
// changes go through setStatusFilter/setSourceFilter instead, which
// refresh just the affected panel.
func (m *Model) rederive() {
	m.stats = engine.ComputeStats(m.ds)
	m.recView = engine.DeriveRecView(m.ds, m.sel)
	m.expView = engine.DeriveExpView(m.ds, m.sel)
}

func (m *Model) setStatusFilter(f string) {
	if m.sel.StatusFilter == f {
		return
	}
	m.sel.StatusFilter = f
	m.recView = engine.DeriveRecView(m.ds, m.sel)
	m.scroll = 0
}

func (m *Model) setSourceFilter(f string) {
	if m.sel.SourceFilter == f {
		return
	}
	m.sel.SourceFilter = f
	m.expView = engine.DeriveExpView(m.ds, m.sel)
	m.scroll = 0
}

func cycle(values []string, current string, delta int) string {
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	return values[(idx+delta+len(values))%len(values)]
}

func (m *Model) flash(msg string) {
	m.statusMsg = msg
	m.statusMsgTime = time.Now()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		// Snippet page owns most keys (digits are field input there).
		if m.page == PageSnippet {
			return m.updateSnippet(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
		case "1":
			m.page = PageRecommendations
			m.scroll = 0
		case "2":
			m.page = PageExperiments
			m.scroll = 0
		case "3":
			m.page = PageSnippet
		case "u":
			// Manual reload
			if !m.loading {
				m.loading = true
				return m, loadCmd(m.src)
			}
		case "A":
			m.paused = !m.paused
			if !m.paused && m.interval > 0 {
				return m, tick(m.interval)
			}
		case "ctrl+d":
			// Persist current filters as the startup defaults.
			cfg := config.Load()
			cfg.StatusFilter = m.sel.StatusFilter
			cfg.SourceFilter = m.sel.SourceFilter
			if err := config.Save(cfg); err != nil {
				m.flash(fmt.Sprintf("Save failed: %v", err))
			} else {
				m.flash(fmt.Sprintf("Default filters: %s/%s", m.sel.StatusFilter, m.sel.SourceFilter))
			}
		case "j", "down":
			m.scroll++
		case "k", "up":
			if m.scroll > 0 {
				m.scroll--
			}
		case "G":
			m.scroll += 20
		case "g":
			m.scroll = 0
		case "h", "left":
			if m.page == PageRecommendations {
				m.setStatusFilter(cycle(statusFilters, m.sel.StatusFilter, -1))
			} else {
				m.setSourceFilter(cycle(sourceFilters, m.sel.SourceFilter, -1))
			}
		case "l", "right":
			if m.page == PageRecommendations {
				m.setStatusFilter(cycle(statusFilters, m.sel.StatusFilter, 1))
			} else {
				m.setSourceFilter(cycle(sourceFilters, m.sel.SourceFilter, 1))
			}
		case "a":
			if m.page == PageRecommendations {
				m.setStatusFilter(model.FilterAll)
			} else {
				m.setSourceFilter(model.FilterAll)
			}
		case "p":
			if m.page == PageRecommendations {
				m.setStatusFilter(model.StatusPending)
			}
		case "c":
			if m.page == PageRecommendations {
				m.setStatusFilter(model.StatusCompleted)
			}
		case "s":
			if m.page == PageRecommendations {
				m.setStatusFilter(model.StatusSkipped)
			}
		case "i":
			if m.page == PageExperiments {
				m.setSourceFilter(model.SourceImported)
			}
		case "r":
			if m.page == PageExperiments {
				m.setSourceFilter(model.SourceRecommendation)
			}
		case "m":
			if m.page == PageExperiments {
				m.setSourceFilter(model.SourceManual)
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		if m.paused || m.interval <= 0 {
			return m, nil
		}
		// Overlapping refreshes are serialized: skip this tick if a
		// load is still in flight, keep the timer running.
		if m.loading {
			return m, tick(m.interval)
		}
		m.loading = true
		return m, tea.Batch(tick(m.interval), loadCmd(m.src))
	case loadMsg:
		m.loading = false
		if msg.err != nil {
			// A failed load withholds both panels; the previous
			// snapshot is discarded rather than shown as stale data.
			m.ds = nil
			m.loadErr = msg.err
			m.rederive()
		} else {
			m.ds = msg.ds
			m.loadErr = nil
			m.rederive()
		}
	case copiedMsg:
		if msg.err != nil {
			m.flash(fmt.Sprintf("Clipboard copy failed: %v", msg.err))
		} else {
			m.flash("Snippet copied to clipboard")
		}
	}
	return m, nil
}

// updateSnippet routes keys on the snippet page. Field editing keys are
// handled by the form; navigation and copy stay here.
func (m Model) updateSnippet(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.page = PageRecommendations
		m.scroll = 0
	case "tab", "down":
		m.form.next()
	case "shift+tab", "up":
		m.form.prev()
	case "enter", "ctrl+y":
		return m, copyCmd(engine.Snippet(m.form.inputs()))
	case "backspace":
		m.form.backspace()
	default:
		m.form.typeRune(msg.String())
	}
	return m, nil
}

func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	if m.width == 0 {
		return "Loading..."
	}
	if m.ds == nil && m.loadErr == nil {
		return "Loading campaign data..."
	}

	iw := pageInnerW(m.width)

	var content string
	switch {
	case m.loadErr != nil && m.page != PageSnippet:
		// Unified error state replaces both data panels.
		content = titleStyle.Render("SYNTHESIS CAMPAIGN") + "\n\n" +
			renderErrorPanel(m.loadErr, iw)
	case m.page == PageRecommendations:
		content = renderRecsPage(m.recView, m.stats, m.sel, iw)
	case m.page == PageExperiments:
		content = renderExperimentsPage(m.expView, m.stats, m.sel, iw)
	case m.page == PageSnippet:
		content = renderSnippetPage(m.form, iw)
	}

	// Apply scroll, clamped to valid range.
	lines := strings.Split(content, "\n")
	if m.scroll >= len(lines) {
		m.scroll = len(lines) - 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
	if m.scroll > 0 {
		lines = lines[m.scroll:]
	}
	maxLines := m.height - 2
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	content = strings.Join(lines, "\n")

	return content + "\n" + m.renderStatusBar()
}

func (m Model) renderStatusBar() string {
	var tabs []string
	for i, name := range pageNames {
		label := fmt.Sprintf("%d:%s", i+1, name)
		if Page(i) == m.page {
			tabs = append(tabs, headerStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, dimStyle.Render(" "+label+" "))
		}
	}
	bar := strings.Join(tabs, "")

	var right string
	switch {
	case m.statusMsg != "" && time.Since(m.statusMsgTime) < 5*time.Second:
		right = orangeStyle.Render(m.statusMsg)
	case m.loading:
		right = dimStyle.Render("refreshing...")
	case m.ds != nil:
		right = dimStyle.Render("loaded " + m.ds.LoadedAt.Format("15:04:05"))
	}
	if m.paused {
		right = warnStyle.Render("refresh paused") + " " + right
	}

	gap := m.width - lipgloss.Width(bar) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	return bar + strings.Repeat(" ", gap) + right
}

func (m Model) renderHelp() string {
	lines := []string{
		titleStyle.Render("nanodash keys"),
		"",
		helpStyle.Render("  1/2/3        ") + "switch page (recommendations / experiments / snippet)",
		helpStyle.Render("  h/l, ←/→     ") + "cycle the active panel's filter",
		helpStyle.Render("  a p c s      ") + "status filter: all / pending / completed / skipped",
		helpStyle.Render("  a i r m      ") + "source filter: all / imported / recommendation / manual",
		helpStyle.Render("  u            ") + "reload data now",
		helpStyle.Render("  A            ") + "pause/resume auto-refresh",
		helpStyle.Render("  ctrl+d       ") + "save current filters as defaults",
		helpStyle.Render("  j/k, G/g     ") + "scroll",
		helpStyle.Render("  enter        ") + "copy snippet (on snippet page)",
		helpStyle.Render("  q            ") + "quit",
		"",
		helpStyle.Render("press any key to close"),
	}
	return strings.Join(lines, "\n")
}
