// Package report renders a static HTML snapshot of the dashboard, for
// sharing a campaign state without a terminal session.
package report

import (
	"html/template"
	"io"

	"nanodash/engine"
	"nanodash/model"
	"nanodash/util"
)

// pageData feeds the dashboard template. All record content arrives as
// pre-formatted engine view models.
type pageData struct {
	GeneratedAt string
	Source      string
	Stats       engine.Stats
	Breakdown   string
	Cards       []engine.RecCard
	Rows        []engine.ExpRow
	RecEmpty    *engine.EmptyState
	ExpEmpty    *engine.EmptyState
}

// Write renders the full dashboard for the given selection to w.
func Write(w io.Writer, ds *model.Dataset, sel model.Selection, source string) error {
	recView := engine.DeriveRecView(ds, sel)
	expView := engine.DeriveExpView(ds, sel)

	data := pageData{
		GeneratedAt: util.FormatDate(ds.LoadedAt),
		Source:      source,
		Stats:       engine.ComputeStats(ds),
		Cards:       recView.Cards,
		Rows:        expView.Rows,
		RecEmpty:    recView.Empty,
		ExpEmpty:    expView.Empty,
	}
	data.Breakdown = data.Stats.SourceBreakdown()

	return pageTmpl.Execute(w, data)
}

var pageTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>nanodash — synthesis campaign</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'JetBrains Mono',monospace,sans-serif;background:#0d1117;color:#c9d1d9;font-size:13px;line-height:1.5}
header{background:#161b22;border-bottom:1px solid #30363d;padding:10px 16px}
header .brand{color:#f0f6fc;font-weight:700;font-size:15px}
header .meta{color:#8b949e;font-size:11px;margin-top:2px}
main{padding:16px;max-width:1100px;margin:0 auto}
h2{font-size:13px;font-weight:600;color:#8b949e;text-transform:uppercase;letter-spacing:.06em;margin:16px 0 8px}
.cards{display:flex;gap:12px;flex-wrap:wrap;margin-bottom:16px}
.stat{background:#161b22;border:1px solid #30363d;border-radius:6px;padding:12px 16px;min-width:140px}
.stat .val{font-size:22px;font-weight:700;color:#f0f6fc}
.stat .lbl{font-size:11px;color:#8b949e;margin-top:2px}
.badge{display:inline-block;padding:1px 8px;border-radius:10px;font-size:10px;font-weight:600;color:#0d1117}
.badge.pending{background:#f59e0b}
.badge.completed{background:#56d364}
.badge.skipped{background:#8b949e}
.rec{background:#161b22;border:1px solid #30363d;border-radius:6px;padding:10px 14px;margin-bottom:10px}
.rec .hdr{display:flex;gap:10px;align-items:center;margin-bottom:6px}
.rec .id{color:#f0f6fc;font-weight:700}
.rec .ts{color:#8b949e;font-size:11px}
.rec .line{color:#c9d1d9;font-size:12px}
.rec .k{color:#8b949e}
table{width:100%;border-collapse:collapse;font-size:12px}
th{text-align:left;padding:6px 10px;border-bottom:1px solid #30363d;color:#8b949e;font-weight:600;font-size:11px;text-transform:uppercase;letter-spacing:.05em}
td{padding:5px 10px;border-bottom:1px solid #21262d}
tr:hover td{background:#161b22}
.tag{display:inline-block;padding:1px 6px;border-radius:4px;font-size:11px;background:#21262d;color:#8b949e;border:1px solid #30363d}
.empty{color:#8b949e;padding:12px;border:1px dashed #30363d;border-radius:6px}
</style>
</head>
<body>
<header>
<div class="brand">nanodash</div>
<div class="meta">source {{.Source}} · generated {{.GeneratedAt}}</div>
</header>
<main>
<h2>Campaign</h2>
<div class="cards">
<div class="stat"><div class="val">{{.Stats.TotalExperiments}}</div><div class="lbl">experiments</div></div>
<div class="stat"><div class="val">{{.Stats.Pending}}</div><div class="lbl">pending recs</div></div>
<div class="stat"><div class="val">{{.Stats.Completed}}</div><div class="lbl">completed recs</div></div>
<div class="stat"><div class="val">{{.Stats.Skipped}}</div><div class="lbl">skipped recs</div></div>
<div class="stat"><div class="val">{{.Breakdown}}</div><div class="lbl">imported/recommendation/manual</div></div>
</div>

<h2>Recommendations</h2>
{{if .RecEmpty}}<div class="empty">{{.RecEmpty.Message}}</div>{{end}}
{{range .Cards}}
<div class="rec">
<div class="hdr"><span class="id">{{.RecID}}</span><span class="badge {{.Status}}">{{.Status}}</span><span class="ts">{{.Timestamp}} ({{.Age}})</span></div>
<div class="line"><span class="k">Temp</span> {{.Temp}}°C · <span class="k">Time</span> {{.Time}} min · <span class="k">VOacac</span> {{.VOacac}} · <span class="k">DDT</span> {{.DDT}} · <span class="k">OAm</span> {{.OAm}}</div>
<div class="line"><span class="k">predicted</span> size {{.PredSize}} nm · gsd {{.PredGSD}} · sq {{.PredSq}} · feasible {{.PFeasible}}</div>
<div class="line"><span class="k">target</span> {{.TargetSize}} nm ± {{.TargetBand}}</div>
{{if .Completed}}<div class="line"><span class="k">completed</span> {{.Completed}}</div>{{end}}
{{if .SkipReason}}<div class="line"><span class="k">skipped</span> {{.SkipReason}}</div>{{end}}
</div>
{{end}}

<h2>Experiments</h2>
{{if .ExpEmpty}}<div class="empty">{{.ExpEmpty.Message}}</div>{{else}}
<table>
<tr><th>ID</th><th>Source</th><th>Temp</th><th>Time</th><th>VOacac</th><th>DDT</th><th>OAm</th><th>Size</th><th>GSD</th><th>Sq</th></tr>
{{range .Rows}}
<tr><td>{{.ExpID}}</td><td><span class="tag">{{.Source}}</span></td><td>{{.Temp}}</td><td>{{.Time}}</td><td>{{.VOacac}}</td><td>{{.DDT}}</td><td>{{.OAm}}</td><td>{{.Size}}</td><td>{{.GSD}}</td><td>{{.Squareness}}</td></tr>
{{end}}
</table>
{{end}}
</main>
</body>
</html>
`))
