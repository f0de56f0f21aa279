package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/audithound/audithound/pkg/store"
	"github.com/audithound/audithound/pkg/summary"
	"github.com/audithound/audithound/pkg/ui"
)

func runStatus() {
	statusFlags := flag.NewFlagSet("status", flag.ExitOnError)
	dir := statusFlags.String("dir", "", "Store root directory")
	statusFlags.Parse(os.Args[2:])

	ui.PrintMiniBanner()
	ui.PrintSection("Engagement Status")

	st := openStore(*dir)
	e := requireCurrent(st)

	ui.PrintConfigLine("Engagement", e.Name)
	ui.PrintConfigLine("Entity", e.Entity)
	ui.PrintConfigLine("Framework", e.Framework)
	ui.PrintConfigLine("Status", e.Status.String())
	ui.PrintConfigLine("Created", e.CreatedAt.Format("2006-01-02"))
	ui.PrintConfigLine("Industry", orUnset(e.Profile.Industry))
	ui.PrintConfigLine("Size", orUnset(e.Profile.Size))

	wp, err := st.LoadProgram(e)
	if err != nil {
		if errors.Is(err, store.ErrNoWorkProgram) {
			fmt.Println()
			ui.PrintInfo("no work program generated yet")
			ui.PrintHelp("Run 'audithound plan' to generate one.")
			return
		}
		fail(err)
	}
	results, err := st.LoadResults(e)
	if err != nil {
		fail(err)
	}

	fmt.Println()
	fmt.Printf("  %-24s %-9s %-10s %8s %10s %9s %8s\n",
		ui.TableHeaderStyle.Render("WORKSTREAM"),
		ui.TableHeaderStyle.Render("PRIORITY"),
		ui.TableHeaderStyle.Render("STATE"),
		ui.TableHeaderStyle.Render("TESTS"),
		ui.TableHeaderStyle.Render("PASS RATE"),
		ui.TableHeaderStyle.Render("FINDINGS"),
		ui.TableHeaderStyle.Render("RATING"))
	for _, ws := range wp.Workstreams {
		if r, ok := results[ws.Name]; ok {
			fmt.Printf("  %-24s %-9s %-10s %8d %9.1f%% %9d %8s\n",
				ws.Name,
				ui.PriorityStyle(ws.Priority).Render(ws.Priority),
				ui.SuccessStyle.Render("executed"),
				r.TestsExecuted, r.PassRate, r.Findings,
				ui.RatingStyle(string(r.RiskRating)).Render(string(r.RiskRating)))
		} else {
			fmt.Printf("  %-24s %-9s %-10s %8s %10s %9s %8s\n",
				ws.Name,
				ui.PriorityStyle(ws.Priority).Render(ws.Priority),
				ui.PendingStyle.Render("pending"),
				"-", "-", "-", "-")
		}
	}

	s := summary.Compile(e, wp, results)
	fmt.Println()
	ui.PrintConfigLine("Progress", fmt.Sprintf("%d%% (%d of %d workstreams)",
		s.ProgressPercent, s.WorkstreamsExecuted, s.WorkstreamsTotal))
	ui.PrintConfigLine("Findings", fmt.Sprintf("%d high, %d medium, %d low",
		s.Findings.High, s.Findings.Medium, s.Findings.Low))
	ui.PrintConfigLine("Automation", fmt.Sprintf("%d%%", s.AutomationPercentage))
	if s.WorkstreamsExecuted > 0 {
		ui.PrintConfigLine("Avg pass rate", fmt.Sprintf("%.1f%%", s.AveragePassRate))
	}
}
