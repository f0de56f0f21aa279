package report

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// csvTemplate emits one row per workstream result. Rendered with the
// sprig funcmap so custom templates swapped in here have the full
// helper set available.
const csvTemplate = `Workstream,TestsExecuted,PassRate,Findings,RiskRating,AutomationLevel,ExecutedAt
{{- range .Results }}
{{ .Workstream }},{{ .TestsExecuted }},{{ printf "%.1f" .PassRate }},{{ .Findings }},{{ .RiskRating }},{{ .AutomationLevel }},{{ .ExecutedAt.Format "2006-01-02" }}
{{- end }}
`

var csvTmpl = template.Must(
	template.New("csv").Funcs(sprig.TxtFuncMap()).Parse(csvTemplate))

func writeCSV(in Input) ([]byte, error) {
	var buf bytes.Buffer
	err := csvTmpl.Execute(&buf, struct{ Results any }{sortedResults(in)})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
