package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"nanodash/config"
	"nanodash/engine"
	"nanodash/loader"
	"nanodash/model"
	"nanodash/report"
	"nanodash/ui"
	"nanodash/util"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

// Options holds CLI configuration.
type Options struct {
	DataSource   string
	Interval     time.Duration
	Timeout      time.Duration
	StatusFilter string
	SourceFilter string
	WatchMode    bool
	WatchCount   int
	Section      string
	JSONMode     bool
	MDMode       bool
	HTMLPath     string
}

// validSections lists sections available for -watch and -section.
var validSections = []string{"all", "stats", "recs", "experiments"}

func printUsage() {
	fmt.Fprintf(os.Stderr, `nanodash v%s — Console dashboard for a synthesis optimization campaign

Usage:
  nanodash [OPTIONS] [INTERVAL]

Modes:
  (default)         Interactive TUI (bubbletea, fullscreen)
  -watch            CLI output mode — prints to terminal with auto-refresh
  -json             Single merged snapshot + stats to stdout, then exit
  -md               Single Markdown campaign report to stdout, then exit
  -html FILE        Static HTML dashboard written to FILE, then exit
  -version          Print version and exit

Options:
  -data PATH|URL    Directory or base URL holding experiments.json and
                    recommendations.json (default: ./data)
  -interval N       Auto-refresh interval in seconds (0 = off, default: 0)
  -timeout N        Per-request fetch timeout in seconds (default: 10)
  -filter NAME      Initial status filter: all, pending, completed, skipped
  -source NAME      Initial source filter: all, imported, recommendation, manual
  -section NAME     Section for -watch mode: all, stats, recs, experiments
  -count N          Number of iterations for -watch mode (0 = infinite)

Positional:
  INTERVAL          First positional arg sets interval: nanodash 30

Examples:
  nanodash -data ./campaign
  nanodash -data https://lab.example.com/opt 30
  nanodash -watch -section recs -count 1
  nanodash -json | jq '.stats'
  nanodash -md > campaign.md
  nanodash -html dashboard.html
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	cfg := config.Load()

	var opts Options
	var intervalSec, timeoutSec int
	var showVersion bool

	flag.StringVar(&opts.DataSource, "data", cfg.DataSource, "Directory or base URL holding the two JSON documents")
	flag.IntVar(&intervalSec, "interval", cfg.IntervalSec, "Auto-refresh interval in seconds (0=off)")
	flag.IntVar(&timeoutSec, "timeout", cfg.TimeoutSec, "Per-request fetch timeout in seconds")
	flag.StringVar(&opts.StatusFilter, "filter", cfg.StatusFilter, "Initial recommendation status filter")
	flag.StringVar(&opts.SourceFilter, "source", cfg.SourceFilter, "Initial experiment source filter")
	flag.BoolVar(&opts.WatchMode, "watch", false, "CLI output mode (no TUI, prints to terminal)")
	flag.IntVar(&opts.WatchCount, "count", 0, "Number of iterations for -watch (0=infinite)")
	flag.StringVar(&opts.Section, "section", "all", "Section for -watch mode (all,stats,recs,experiments)")
	flag.BoolVar(&opts.JSONMode, "json", false, "Output one merged snapshot as JSON and exit")
	flag.BoolVar(&opts.MDMode, "md", false, "Output one Markdown campaign report and exit")
	flag.StringVar(&opts.HTMLPath, "html", "", "Write a static HTML dashboard to FILE and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("nanodash v%s\n", Version)
		return nil
	}

	// Support positional arg for interval: `nanodash 30` = `nanodash -interval 30`
	if args := flag.Args(); len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			intervalSec = n
		}
	}
	opts.Interval = time.Duration(intervalSec) * time.Second
	opts.Timeout = time.Duration(timeoutSec) * time.Second

	if !model.ValidStatusFilter(opts.StatusFilter) {
		return fmt.Errorf("unknown status filter %q (valid: all, pending, completed, skipped)", opts.StatusFilter)
	}
	if !model.ValidSourceFilter(opts.SourceFilter) {
		return fmt.Errorf("unknown source filter %q (valid: all, imported, recommendation, manual)", opts.SourceFilter)
	}
	if opts.WatchMode {
		valid := false
		for _, s := range validSections {
			if opts.Section == s {
				valid = true
				break
			}
		}
		if !valid {
			fmt.Fprintf(os.Stderr, "Error: unknown section %q\n", opts.Section)
			fmt.Fprintf(os.Stderr, "Valid sections: %s\n\n", strings.Join(validSections, ", "))
			printUsage()
			os.Exit(1)
		}
	}

	src := loader.NewSource(opts.DataSource, opts.Timeout)
	sel := model.Selection{StatusFilter: opts.StatusFilter, SourceFilter: opts.SourceFilter}

	if opts.JSONMode {
		return runJSON(src, sel)
	}
	if opts.MDMode {
		return runMarkdown(src, sel)
	}
	if opts.HTMLPath != "" {
		return runHTML(src, sel, opts)
	}
	if opts.WatchMode {
		return runWatch(src, sel, opts)
	}

	m := ui.NewModel(src, opts.Interval, sel)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// runJSON outputs one merged snapshot + stats as JSON and exits.
func runJSON(src loader.Source, sel model.Selection) error {
	ds, err := loader.Load(context.Background(), src)
	if err != nil {
		return err
	}
	data := map[string]interface{}{
		"generated_at":    ds.LoadedAt.Format(time.RFC3339),
		"stats":           engine.ComputeStats(ds),
		"experiments":     engine.FilterExperiments(ds.Experiments, sel.SourceFilter),
		"recommendations": engine.FilterRecommendations(ds.Recommendations, sel.StatusFilter),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// runMarkdown outputs a markdown campaign report to stdout.
func runMarkdown(src loader.Source, sel model.Selection) error {
	ds, err := loader.Load(context.Background(), src)
	if err != nil {
		return err
	}
	fmt.Println(renderMarkdownReport(ds, sel))
	return nil
}

// renderMarkdownReport generates a ticket-friendly markdown campaign report.
func renderMarkdownReport(ds *model.Dataset, sel model.Selection) string {
	var sb strings.Builder
	stats := engine.ComputeStats(ds)

	sb.WriteString("# Synthesis Campaign Report\n\n")
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", util.FormatDate(ds.LoadedAt)))

	sb.WriteString("## Campaign\n\n")
	sb.WriteString(fmt.Sprintf("- **Experiments:** %d (%s imported/recommendation/manual)\n",
		stats.TotalExperiments, stats.SourceBreakdown()))
	sb.WriteString(fmt.Sprintf("- **Recommendations:** %d pending, %d completed, %d skipped\n",
		stats.Pending, stats.Completed, stats.Skipped))

	cards := engine.BuildRecCards(engine.FilterRecommendations(ds.Recommendations, sel.StatusFilter))
	sb.WriteString("\n## Recommendations\n\n")
	if len(cards) == 0 {
		es := engine.EmptyState{What: "recommendations", Filter: sel.StatusFilter}
		sb.WriteString("_" + es.Message() + "_\n")
	} else {
		sb.WriteString("| ID | Status | Temp | Time | VOacac | DDT | OAm | Size pred | Feasible | Proposed |\n")
		sb.WriteString("|----|--------|------|------|--------|-----|-----|-----------|----------|----------|\n")
		for _, c := range cards {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
				c.RecID, c.Status, c.Temp, c.Time, c.VOacac, c.DDT, c.OAm,
				c.PredSize, c.PFeasible, c.Timestamp))
		}
	}

	rows := engine.BuildExpRows(engine.FilterExperiments(ds.Experiments, sel.SourceFilter))
	sb.WriteString("\n## Experiments\n\n")
	if len(rows) == 0 {
		es := engine.EmptyState{What: "experiments", Filter: sel.SourceFilter}
		sb.WriteString("_" + es.Message() + "_\n")
	} else {
		sb.WriteString("| ID | Source | Temp | Time | VOacac | DDT | OAm | Size | GSD | Sq |\n")
		sb.WriteString("|----|--------|------|------|--------|-----|-----|------|-----|----|\n")
		for _, r := range rows {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
				r.ExpID, r.Source, r.Temp, r.Time, r.VOacac, r.DDT, r.OAm,
				r.Size, r.GSD, r.Squareness))
		}
	}

	return sb.String()
}

// runHTML writes a static HTML dashboard and exits.
func runHTML(src loader.Source, sel model.Selection, opts Options) error {
	ds, err := loader.Load(context.Background(), src)
	if err != nil {
		return err
	}
	f, err := os.Create(opts.HTMLPath)
	if err != nil {
		return fmt.Errorf("cannot create html file: %w", err)
	}
	defer f.Close()
	if err := report.Write(f, ds, sel, src.Base()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", opts.HTMLPath)
	return nil
}
