package report

import (
	"bytes"
	"html/template"
	"time"

	"github.com/audithound/audithound/pkg/executor"
	"github.com/audithound/audithound/pkg/summary"
)

// htmlPage is the standalone dark-theme summary page. Severity chips
// reuse the same palette as the terminal dashboard.
const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Summary.EngagementName }} — Audit Summary</title>
<style>
  body { background: #0f172a; color: #e2e8f0; font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 860px; padding: 0 1rem; }
  h1 { color: #2d7ff9; margin-bottom: 0; }
  .meta { color: #94a3b8; margin-top: .25rem; }
  .cards { display: flex; gap: 1rem; flex-wrap: wrap; margin: 1.5rem 0; }
  .card { background: #1e293b; border-radius: 8px; padding: 1rem 1.5rem; min-width: 140px; }
  .card .value { font-size: 1.6rem; font-weight: 700; }
  .card .label { color: #94a3b8; font-size: .8rem; text-transform: uppercase; }
  .chip { border-radius: 999px; padding: .1rem .6rem; font-size: .8rem; font-weight: 700; }
  .chip.high { background: #ff5454; color: #fff; }
  .chip.medium { background: #ffc53d; color: #000; }
  .chip.low { background: #59c96b; color: #000; }
  table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
  th, td { border-bottom: 1px solid #334155; padding: .5rem .75rem; text-align: left; }
  th { color: #00c896; font-size: .8rem; text-transform: uppercase; }
  footer { color: #64748b; font-size: .8rem; margin-top: 2rem; }
</style>
</head>
<body>
<h1>{{ .Summary.EngagementName }}</h1>
<p class="meta">{{ .Summary.Entity }} &middot; {{ .Summary.Framework }} &middot; prepared for {{ .Stakeholder }} &middot; status: {{ .Summary.Status }}</p>

<div class="cards">
  <div class="card"><div class="value">{{ .Summary.ProgressPercent }}%</div><div class="label">Progress</div></div>
  <div class="card"><div class="value">{{ .Summary.Findings.Total }}</div><div class="label">Findings</div></div>
  <div class="card"><div class="value">${{ .Exposure }}</div><div class="label">Risk exposure</div></div>
  <div class="card"><div class="value">{{ printf "%.1f" .Summary.SatisfactionScore }}/5</div><div class="label">Satisfaction</div></div>
  <div class="card"><div class="value">{{ .Summary.AutomationPercentage }}%</div><div class="label">Automated</div></div>
</div>

<p>
  <span class="chip high">{{ .Summary.Findings.High }} high</span>
  <span class="chip medium">{{ .Summary.Findings.Medium }} medium</span>
  <span class="chip low">{{ .Summary.Findings.Low }} low</span>
</p>

{{ if .Results }}
<table>
  <tr><th>Workstream</th><th>Tests</th><th>Pass rate</th><th>Findings</th><th>Rating</th></tr>
  {{ range .Results }}
  <tr>
    <td>{{ .Workstream }}</td>
    <td>{{ .TestsExecuted }}</td>
    <td>{{ printf "%.1f" .PassRate }}%</td>
    <td>{{ .Findings }}</td>
    <td><span class="chip {{ .RiskRating | lower }}">{{ .RiskRating }}</span></td>
  </tr>
  {{ end }}
</table>
{{ end }}

<footer>Generated by audithound on {{ .GeneratedAt.Format "2006-01-02" }}. Automation benefit: {{ .Summary.AutomationBenefit.HoursSaved }}h saved, {{ .Summary.AutomationBenefit.ManualHoursReduced }}h manual effort reduced.</footer>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"lower": func(r interface{ String() string }) string {
		switch r.String() {
		case "High":
			return "high"
		case "Medium":
			return "medium"
		default:
			return "low"
		}
	},
}).Parse(htmlPage))

func writeHTML(in Input) ([]byte, error) {
	// The template ranges over the ordered slice, not the results map.
	data := struct {
		Summary     summary.EngagementSummary
		Stakeholder string
		GeneratedAt time.Time
		Results     []executor.Result
		Exposure    string
	}{
		Summary:     in.Summary,
		Stakeholder: in.Stakeholder,
		GeneratedAt: in.GeneratedAt,
		Results:     sortedResults(in),
		Exposure:    formatUSD(in.Summary.RiskExposureUSD),
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
