package report

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/audithound/audithound/pkg/ui"
)

// dashboardMinWidth keeps the panel readable on narrow terminals.
const dashboardMinWidth = 60

// writeDashboard renders the ANSI text panel shown on stdout and
// persisted for the default format.
func writeDashboard(in Input) ([]byte, error) {
	width := dashboardMinWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > dashboardMinWidth {
		width = w
		if width > 100 {
			width = 100
		}
	}
	divider := ui.DividerStyle.Render(strings.Repeat("=", width))

	s := in.Summary
	var b strings.Builder

	fmt.Fprintln(&b, divider)
	fmt.Fprintf(&b, "  %s  %s\n",
		ui.StatValueStyle.Render(strings.ToUpper(s.EngagementName)),
		ui.StatLabelStyle.Render(fmt.Sprintf("(%s / %s)", s.Entity, s.Framework)))
	fmt.Fprintf(&b, "  %s %s   %s %s\n",
		ui.StatLabelStyle.Render("Prepared for:"),
		ui.ConfigValueStyle.Render(in.Stakeholder),
		ui.StatLabelStyle.Render("Status:"),
		ui.StatValueStyle.Render(s.Status.String()))
	fmt.Fprintln(&b, divider)

	fmt.Fprintf(&b, "  %s %3d%%   %s %d/%d workstreams\n",
		ui.StatLabelStyle.Render("Progress:"), s.ProgressPercent,
		ui.StatLabelStyle.Render("Executed:"), s.WorkstreamsExecuted, s.WorkstreamsTotal)
	fmt.Fprintf(&b, "  %s %s high / %s medium / %s low (%d total)\n",
		ui.StatLabelStyle.Render("Findings:"),
		ui.RatingStyle("High").Render(fmt.Sprintf("%d", s.Findings.High)),
		ui.RatingStyle("Medium").Render(fmt.Sprintf("%d", s.Findings.Medium)),
		ui.RatingStyle("Low").Render(fmt.Sprintf("%d", s.Findings.Low)),
		s.Findings.Total())
	fmt.Fprintf(&b, "  %s $%s   %s %.1f/5\n",
		ui.StatLabelStyle.Render("Risk exposure:"), formatUSD(s.RiskExposureUSD),
		ui.StatLabelStyle.Render("Satisfaction:"), s.SatisfactionScore)
	fmt.Fprintf(&b, "  %s %d tests, %.1f%% avg pass rate\n",
		ui.StatLabelStyle.Render("Testing:"), s.TestsExecuted, s.AveragePassRate)
	fmt.Fprintf(&b, "  %s %d%% automated, %d procedures, %dh saved, %dh manual effort reduced\n",
		ui.StatLabelStyle.Render("Automation:"),
		s.AutomationPercentage,
		s.AutomationBenefit.ProceduresAutomated,
		s.AutomationBenefit.HoursSaved,
		s.AutomationBenefit.ManualHoursReduced)

	results := sortedResults(in)
	if len(results) > 0 {
		fmt.Fprintln(&b, divider)
		fmt.Fprintf(&b, "  %-24s %8s %10s %9s %8s\n",
			ui.TableHeaderStyle.Render("WORKSTREAM"),
			ui.TableHeaderStyle.Render("TESTS"),
			ui.TableHeaderStyle.Render("PASS RATE"),
			ui.TableHeaderStyle.Render("FINDINGS"),
			ui.TableHeaderStyle.Render("RATING"))
		for _, r := range results {
			fmt.Fprintf(&b, "  %-24s %8d %9.1f%% %9d %8s\n",
				r.Workstream, r.TestsExecuted, r.PassRate, r.Findings,
				ui.RatingStyle(string(r.RiskRating)).Render(string(r.RiskRating)))
		}
	}
	fmt.Fprintln(&b, divider)

	return []byte(b.String()), nil
}

// formatUSD inserts thousands separators into a dollar amount.
func formatUSD(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
