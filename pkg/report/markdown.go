package report

import (
	"fmt"
	"strings"
)

// writeMarkdown renders the management-readable summary document.
func writeMarkdown(in Input) ([]byte, error) {
	s := in.Summary
	var b strings.Builder

	fmt.Fprintf(&b, "# Audit Summary: %s\n\n", s.EngagementName)
	fmt.Fprintf(&b, "**Entity:** %s  \n", s.Entity)
	fmt.Fprintf(&b, "**Framework:** %s  \n", s.Framework)
	fmt.Fprintf(&b, "**Prepared for:** %s  \n", in.Stakeholder)
	fmt.Fprintf(&b, "**Status:** %s  \n", s.Status)
	fmt.Fprintf(&b, "**Date:** %s\n\n", in.GeneratedAt.Format("2006-01-02"))

	fmt.Fprintf(&b, "## Key Metrics\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Progress | %d%% (%d of %d workstreams) |\n",
		s.ProgressPercent, s.WorkstreamsExecuted, s.WorkstreamsTotal)
	fmt.Fprintf(&b, "| Findings | %d (%d high, %d medium, %d low) |\n",
		s.Findings.Total(), s.Findings.High, s.Findings.Medium, s.Findings.Low)
	fmt.Fprintf(&b, "| Risk exposure | $%s |\n", formatUSD(s.RiskExposureUSD))
	fmt.Fprintf(&b, "| Stakeholder satisfaction | %.1f / 5 |\n", s.SatisfactionScore)
	fmt.Fprintf(&b, "| Tests executed | %d |\n", s.TestsExecuted)
	fmt.Fprintf(&b, "| Average pass rate | %.1f%% |\n", s.AveragePassRate)
	fmt.Fprintf(&b, "| Automation | %d%% (%d procedures, %dh saved) |\n\n",
		s.AutomationPercentage, s.AutomationBenefit.ProceduresAutomated,
		s.AutomationBenefit.HoursSaved)

	results := sortedResults(in)
	if len(results) > 0 {
		fmt.Fprintf(&b, "## Workstream Results\n\n")
		fmt.Fprintf(&b, "| Workstream | Tests | Pass Rate | Findings | Risk Rating |\n")
		fmt.Fprintf(&b, "|---|---|---|---|---|\n")
		for _, r := range results {
			fmt.Fprintf(&b, "| %s | %d | %.1f%% | %d | %s |\n",
				r.Workstream, r.TestsExecuted, r.PassRate, r.Findings, r.RiskRating)
		}
		fmt.Fprintln(&b)
	}

	return []byte(b.String()), nil
}
