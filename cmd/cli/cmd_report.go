package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/audithound/audithound/pkg/defaults"
	"github.com/audithound/audithound/pkg/engagement"
	"github.com/audithound/audithound/pkg/report"
	"github.com/audithound/audithound/pkg/summary"
	"github.com/audithound/audithound/pkg/ui"
)

func runReport() {
	reportFlags := flag.NewFlagSet("report", flag.ExitOnError)
	stakeholder := reportFlags.String("stakeholder", defaults.Stakeholder, "Report addressee tag")
	format := reportFlags.String("format", defaults.ReportFormat, "Report format: dashboard, html, markdown, json, csv, pdf")
	dir := reportFlags.String("dir", "", "Store root directory")
	reportFlags.Parse(os.Args[2:])

	ui.PrintMiniBanner()
	ui.PrintSection("Stakeholder Report")

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

	doc, err := report.Render(report.Input{
		Engagement:  e,
		Program:     wp,
		Results:     results,
		Summary:     summary.Compile(e, wp, results),
		Stakeholder: *stakeholder,
		GeneratedAt: time.Now().UTC(),
	}, *format)
	if err != nil {
		fail(err)
	}

	path, err := st.WriteReport(e, doc.Filename, doc.Content)
	if err != nil {
		fail(err)
	}

	// Issuing a report on a fully executed program completes the
	// engagement; partial-progress reports leave the status alone.
	if e.Status == engagement.StatusReporting {
		e.Status = engagement.StatusComplete
		if err := st.Save(e); err != nil {
			fail(err)
		}
	}

	if *format == defaults.ReportFormat {
		fmt.Println(string(doc.Content))
	}

	ui.PrintConfigLine("Stakeholder", *stakeholder)
	ui.PrintConfigLine("Format", *format)
	ui.PrintConfigLine("Document", path)
	fmt.Fprintln(os.Stderr)
	ui.PrintSuccess(fmt.Sprintf("Report written (status: %s)", e.Status))
}
