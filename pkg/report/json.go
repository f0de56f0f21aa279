package report

import "github.com/audithound/audithound/pkg/jsonutil"

// writeJSON emits the machine-readable summary record plus the
// per-workstream results, for downstream tooling.
func writeJSON(in Input) ([]byte, error) {
	doc := struct {
		Stakeholder string `json:"stakeholder"`
		GeneratedAt string `json:"generated_at"`
		Summary     any    `json:"summary"`
		Results     any    `json:"results,omitempty"`
	}{
		Stakeholder: in.Stakeholder,
		GeneratedAt: in.GeneratedAt.Format("2006-01-02"),
		Summary:     in.Summary,
		Results:     sortedResults(in),
	}
	return jsonutil.MarshalIndent(doc, "  ")
}
