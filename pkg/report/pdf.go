package report

import (
	"bytes"
	"fmt"

	gofpdf "github.com/go-pdf/fpdf"
)

// writePDF renders a one-page summary: title block, key metrics table,
// findings breakdown, and per-workstream rows.
func writePDF(in Input) ([]byte, error) {
	s := in.Summary

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(45, 127, 249)
	pdf.CellFormat(0, 12, fmt.Sprintf("Audit Summary: %s", s.EngagementName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s  |  %s  |  prepared for %s  |  %s",
		s.Entity, s.Framework, in.Stakeholder, in.GeneratedAt.Format("2006-01-02")),
		"", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Key metrics table
	addMetricRow := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(80, 80, 80)
		pdf.CellFormat(60, 8, label, "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(70, 8, value, "1", 1, "L", false, 0, "")
	}
	addMetricRow("Progress", fmt.Sprintf("%d%% (%d of %d workstreams)",
		s.ProgressPercent, s.WorkstreamsExecuted, s.WorkstreamsTotal))
	addMetricRow("Findings", fmt.Sprintf("%d high / %d medium / %d low",
		s.Findings.High, s.Findings.Medium, s.Findings.Low))
	addMetricRow("Risk exposure", "$"+formatUSD(s.RiskExposureUSD))
	addMetricRow("Satisfaction", fmt.Sprintf("%.1f / 5", s.SatisfactionScore))
	addMetricRow("Tests executed", fmt.Sprintf("%d (%.1f%% avg pass rate)",
		s.TestsExecuted, s.AveragePassRate))
	addMetricRow("Automation", fmt.Sprintf("%d%% - %dh saved, %dh manual reduced",
		s.AutomationPercentage, s.AutomationBenefit.HoursSaved,
		s.AutomationBenefit.ManualHoursReduced))
	pdf.Ln(8)

	// Workstream rows
	results := sortedResults(in)
	if len(results) > 0 {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(30, 41, 59)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(55, 8, "Workstream", "1", 0, "L", true, 0, "")
		pdf.CellFormat(25, 8, "Tests", "1", 0, "C", true, 0, "")
		pdf.CellFormat(25, 8, "Pass Rate", "1", 0, "C", true, 0, "")
		pdf.CellFormat(25, 8, "Findings", "1", 0, "C", true, 0, "")
		pdf.CellFormat(25, 8, "Rating", "1", 1, "C", true, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, r := range results {
			pdf.CellFormat(55, 7, r.Workstream, "1", 0, "L", false, 0, "")
			pdf.CellFormat(25, 7, fmt.Sprintf("%d", r.TestsExecuted), "1", 0, "C", false, 0, "")
			pdf.CellFormat(25, 7, fmt.Sprintf("%.1f%%", r.PassRate), "1", 0, "C", false, 0, "")
			pdf.CellFormat(25, 7, fmt.Sprintf("%d", r.Findings), "1", 0, "C", false, 0, "")
			pdf.CellFormat(25, 7, string(r.RiskRating), "1", 1, "C", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
