package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/audithound/audithound/pkg/defaults"
	"github.com/audithound/audithound/pkg/engagement"
	"github.com/audithound/audithound/pkg/executor"
	"github.com/audithound/audithound/pkg/program"
	"github.com/audithound/audithound/pkg/ui"
)

func runPlan() {
	planFlags := flag.NewFlagSet("plan", flag.ExitOnError)
	timeline := planFlags.Int("timeline", defaults.TimelineDays, "Timeline in days")
	automation := planFlags.String("automation", defaults.AutomationLevel, "Automation level: low, medium, high")
	dir := planFlags.String("dir", "", "Store root directory")
	planFlags.Parse(os.Args[2:])

	if *timeline <= 0 {
		ui.PrintError(fmt.Sprintf("invalid timeline %d", *timeline))
		ui.PrintHelp("Use -timeline with a positive number of days.")
		os.Exit(1)
	}
	if !engagement.ValidAutomationLevel(*automation) {
		ui.PrintError(fmt.Sprintf("invalid automation level %q", *automation))
		ui.PrintHelp("Use -automation low, medium, or high.")
		os.Exit(1)
	}

	ui.PrintMiniBanner()
	ui.PrintSection("Work Program")

	st := openStore(*dir)
	e := requireCurrent(st)

	wp := program.Generate(*timeline, *automation)
	if err := st.SaveProgram(e, wp); err != nil {
		fail(err)
	}
	// A new program fully replaces the old one, so stale results from
	// a previous plan are discarded with it.
	if err := st.SaveResults(e, map[string]executor.Result{}); err != nil {
		fail(err)
	}

	e.Status = engagement.StatusPlanning
	e.Automation.Level = *automation
	if err := st.Save(e); err != nil {
		fail(err)
	}

	ui.PrintConfigLine("Engagement", e.Name)
	ui.PrintConfigLine("Timeline", fmt.Sprintf("%d days (%s to %s)",
		wp.Timeline.DurationDays,
		wp.Timeline.Start.Format("2006-01-02"),
		wp.Timeline.End.Format("2006-01-02")))
	ui.PrintConfigLine("Automation", fmt.Sprintf("%d%% (%d of %d procedures)",
		wp.Automation.Percentage, wp.Automation.AutomatedProcedures,
		wp.Automation.TotalProcedures))
	fmt.Fprintln(os.Stderr)

	for _, ws := range wp.Workstreams {
		fmt.Printf("  %s %s  %s, %dh, %d procedures, automation: %s\n",
			ui.BracketStyle.Render("-"),
			ui.StatValueStyle.Render(ws.Name),
			ui.PriorityStyle(ws.Priority).Render(ws.Priority),
			ws.EstimatedHours, len(ws.Procedures), ws.AutomationLevel)
	}
	fmt.Println()

	ui.PrintSuccess("Work program generated")
	ui.PrintHelp("Next: audithound execute")
}
