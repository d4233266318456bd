package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"nanodash/engine"
	"nanodash/loader"
	"nanodash/model"
)

// ── ANSI color/style codes ──────────────────────────────────────────────────

const (
	R = "\033[0m" // reset
	B = "\033[1m" // bold
	D = "\033[2m" // dim

	FCyn = "\033[36m"

	FBRed = "\033[91m"
	FBGrn = "\033[92m"
	FBYel = "\033[93m"
	FBWht = "\033[97m"

	BBlu = "\033[44m"
)

// ── Styling helpers ─────────────────────────────────────────────────────────

func statusColor(status string) string {
	switch status {
	case model.StatusPending:
		return FBYel
	case model.StatusCompleted:
		return FBGrn
	case model.StatusSkipped:
		return D
	}
	return FBWht
}

func trunc(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n < 3 {
		return s[:n]
	}
	return s[:n-2] + ".."
}

func titleLine(t string) string {
	pad := 78 - len(t) - 2
	if pad < 0 {
		pad = 0
	}
	return fmt.Sprintf("%s%s== %s %s%s", B, FCyn, t, strings.Repeat("=", pad), R)
}

func hr() string {
	return fmt.Sprintf("%s%s%s", D, strings.Repeat("-", 78), R)
}

// ── Main Watch Loop ─────────────────────────────────────────────────────────

func runWatch(src loader.Source, sel model.Selection, opts Options) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	interval := opts.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	iteration := 0
	render := func() error {
		iteration++
		ds, err := loader.Load(context.Background(), src)

		fmt.Print("\033[2J\033[H")

		ts := time.Now().Format("15:04:05")
		iter := fmt.Sprintf("#%d", iteration)
		if opts.WatchCount > 0 {
			iter = fmt.Sprintf("#%d/%d", iteration, opts.WatchCount)
		}
		fmt.Printf(" %s%s nanodash v%s %s  %s  %s%s%s  %s%s%s  %s\n",
			B, BBlu+FBWht, Version, R,
			B+ts+R,
			FCyn, opts.Section, R,
			D, interval, R,
			D+iter+R)
		fmt.Println(hr())

		if err != nil {
			// Unified error state in place of both sections.
			fmt.Println()
			fmt.Println(titleLine("LOAD ERROR"))
			fmt.Printf(" %s%s%s\n", B+FBRed, err, R)
			fmt.Printf(" %sData withheld rather than showing a partial snapshot.%s\n", D, R)
			return nil
		}

		switch opts.Section {
		case "all":
			watchStats(ds)
			watchRecs(ds, sel)
			watchExperiments(ds, sel)
		case "stats":
			watchStats(ds)
		case "recs":
			watchStats(ds)
			watchRecs(ds, sel)
		case "experiments":
			watchStats(ds)
			watchExperiments(ds, sel)
		}
		return nil
	}

	if err := render(); err != nil {
		return err
	}
	if opts.WatchCount > 0 && iteration >= opts.WatchCount {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-sig:
			fmt.Printf("\n%sStopped.%s\n", D, R)
			return nil
		case <-ticker.C:
			if err := render(); err != nil {
				return err
			}
			fmt.Println()
			fmt.Println(hr())
			fmt.Printf(" %sCtrl+C%s to quit\n", B, R)
			if opts.WatchCount > 0 && iteration >= opts.WatchCount {
				return nil
			}
		}
	}
}

func watchStats(ds *model.Dataset) {
	stats := engine.ComputeStats(ds)
	fmt.Println()
	fmt.Println(titleLine("CAMPAIGN"))
	fmt.Printf(" %sExperiments%s  %s%d%s  %s(%s imported/recommendation/manual)%s\n",
		B, R, FBWht, stats.TotalExperiments, R, D, stats.SourceBreakdown(), R)
	fmt.Printf(" %sRecs%s         %s%d pending%s  %s%d completed%s  %s%d skipped%s\n",
		B, R, FBYel, stats.Pending, R, FBGrn, stats.Completed, R, D, stats.Skipped, R)
}

func watchRecs(ds *model.Dataset, sel model.Selection) {
	cards := engine.BuildRecCards(engine.FilterRecommendations(ds.Recommendations, sel.StatusFilter))
	fmt.Println()
	fmt.Println(titleLine(fmt.Sprintf("RECOMMENDATIONS (%s)", sel.StatusFilter)))
	if len(cards) == 0 {
		es := engine.EmptyState{What: "recommendations", Filter: sel.StatusFilter}
		fmt.Printf(" %s%s%s\n", D, es.Message(), R)
		return
	}
	fmt.Printf(" %s%-10s  %-10s  %6s  %6s  %7s  %11s  %8s  %-18s%s\n",
		D, "ID", "STATUS", "TEMP", "TIME", "VOACAC", "SIZE PRED", "FEAS", "PROPOSED", R)
	fmt.Println(" " + hr())
	for _, c := range cards {
		fmt.Printf(" %s%-10s%s  %s%-10s%s  %6s  %6s  %7s  %11s  %8s  %s%-18s%s\n",
			FBWht, trunc(c.RecID, 10), R,
			statusColor(c.Status), c.Status, R,
			c.Temp, c.Time, c.VOacac, c.PredSize, c.PFeasible,
			D, c.Age, R)
		if c.SkipReason != "" {
			fmt.Printf("   %s-> %s%s\n", D, trunc(c.SkipReason, 70), R)
		}
	}
}

func watchExperiments(ds *model.Dataset, sel model.Selection) {
	rows := engine.BuildExpRows(engine.FilterExperiments(ds.Experiments, sel.SourceFilter))
	fmt.Println()
	fmt.Println(titleLine(fmt.Sprintf("EXPERIMENTS (%s)", sel.SourceFilter)))
	if len(rows) == 0 {
		es := engine.EmptyState{What: "experiments", Filter: sel.SourceFilter}
		fmt.Printf(" %s%s%s\n", D, es.Message(), R)
		return
	}
	fmt.Printf(" %s%-10s  %-16s  %6s  %6s  %7s  %6s  %6s  %6s  %6s  %4s%s\n",
		D, "ID", "SOURCE", "TEMP", "TIME", "VOACAC", "DDT", "OAM", "SIZE", "GSD", "SQ", R)
	fmt.Println(" " + hr())
	for _, r := range rows {
		srcColor := D
		switch r.Source {
		case model.SourceRecommendation:
			srcColor = FBGrn
		case model.SourceManual:
			srcColor = FBYel
		}
		fmt.Printf(" %s%-10s%s  %s%-16s%s  %6s  %6s  %7s  %6s  %6s  %s%6s%s  %6s  %4s\n",
			FBWht, trunc(r.ExpID, 10), R,
			srcColor, r.Source, R,
			r.Temp, r.Time, r.VOacac, r.DDT, r.OAm,
			FBWht, r.Size, R, r.GSD, r.Squareness)
	}
}
