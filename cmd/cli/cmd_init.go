package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/audithound/audithound/pkg/ui"
)

func runInit() {
	if len(os.Args) < 3 || strings.HasPrefix(os.Args[2], "-") {
		ui.PrintError("engagement name required")
		ui.PrintHelp("Usage: audithound init <name> -entity <entity> [-framework soc2|sox|iso27001|custom]")
		os.Exit(1)
	}
	name := os.Args[2]

	initFlags := flag.NewFlagSet("init", flag.ExitOnError)
	entity := initFlags.String("entity", "", "Audited entity (required)")
	framework := initFlags.String("framework", "", "Audit framework: soc2, sox, iso27001, custom")
	dir := initFlags.String("dir", "", "Store root directory")
	initFlags.Parse(os.Args[3:])

	if *entity == "" {
		ui.PrintError("-entity is required")
		ui.PrintHelp("Usage: audithound init <name> -entity <entity> [-framework soc2|sox|iso27001|custom]")
		os.Exit(1)
	}

	ui.PrintMiniBanner()
	ui.PrintSection("New Engagement")

	st := openStore(*dir)
	e, err := st.Create(name, *entity, *framework)
	if err != nil {
		fail(err)
	}

	ui.PrintConfigLine("Name", e.Name)
	ui.PrintConfigLine("Entity", e.Entity)
	ui.PrintConfigLine("Framework", e.Framework)
	ui.PrintConfigLine("Status", e.Status.String())
	ui.PrintConfigLine("Store", st.Root())
	fmt.Fprintln(os.Stderr)

	ui.PrintSuccess(fmt.Sprintf("Engagement %q created", e.Name))
	ui.PrintHelp("Next: audithound profile -industry <tag> -size <tag>")
}
