package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/audithound/audithound/pkg/defaults"
	"github.com/audithound/audithound/pkg/engagement"
	"github.com/audithound/audithound/pkg/executor"
	"github.com/audithound/audithound/pkg/ui"
)

func runExecute() {
	executeFlags := flag.NewFlagSet("execute", flag.ExitOnError)
	workstream := executeFlags.String("workstream", "", "Execute a single workstream by name (default: all)")
	automation := executeFlags.String("automation", defaults.AutomationLevel, "Automation level: low, medium, high")
	silent := executeFlags.Bool("silent", false, "Suppress progress output")
	noColor := executeFlags.Bool("no-color", false, "Disable colored output")
	dir := executeFlags.String("dir", "", "Store root directory")
	executeFlags.Parse(os.Args[2:])

	ui.SetSilent(*silent)
	ui.SetNoColor(*noColor)

	if !engagement.ValidAutomationLevel(*automation) {
		ui.PrintError(fmt.Sprintf("invalid automation level %q", *automation))
		ui.PrintHelp("Use -automation low, medium, or high.")
		os.Exit(1)
	}

	ui.PrintMiniBanner()
	ui.PrintSection("Workstream Execution")

	st := openStore(*dir)
	e := requireCurrent(st)

	wp, err := st.LoadProgram(e)
	if err != nil {
		fail(err)
	}
	results, err := st.LoadResults(e)
	if err != nil {
		fail(err)
	}

	bar := ui.NewBar(40)
	bar.StepDelay = 40 * time.Millisecond
	engine := executor.New(bar)

	if *workstream != "" {
		results[*workstream] = engine.ExecuteWorkstream(*workstream, *automation)
	} else {
		for name, r := range engine.ExecuteAll(wp, *automation) {
			results[name] = r
		}
	}

	if err := st.SaveResults(e, results); err != nil {
		fail(err)
	}

	// Executing any workstream moves the engagement forward; a fully
	// executed program is ready for reporting.
	e.Status = engagement.StatusExecuting
	if executedAll(wp.Names(), results) {
		e.Status = engagement.StatusReporting
	}
	if err := st.Save(e); err != nil {
		fail(err)
	}

	fmt.Fprintln(os.Stderr)
	for _, name := range wp.Names() {
		r, ok := results[name]
		if !ok {
			continue
		}
		fmt.Printf("  %s  %d tests, %.1f%% pass rate, %d findings, risk: %s\n",
			ui.StatValueStyle.Render(r.Workstream),
			r.TestsExecuted, r.PassRate, r.Findings,
			ui.RatingStyle(string(r.RiskRating)).Render(string(r.RiskRating)))
	}
	fmt.Println()

	ui.PrintSuccess(fmt.Sprintf("Execution recorded (status: %s)", e.Status))
	ui.PrintHelp("Next: audithound report")
}

// executedAll reports whether every named workstream has a result.
func executedAll(names []string, results map[string]executor.Result) bool {
	for _, name := range names {
		if _, ok := results[name]; !ok {
			return false
		}
	}
	return true
}
