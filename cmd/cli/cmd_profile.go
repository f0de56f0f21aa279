package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/audithound/audithound/pkg/risk"
	"github.com/audithound/audithound/pkg/ui"
)

func runProfile() {
	profileFlags := flag.NewFlagSet("profile", flag.ExitOnError)
	industry := profileFlags.String("industry", "", "Industry tag (saas, fintech, healthcare, retail, ...)")
	size := profileFlags.String("size", "", "Organization size (startup, medium, enterprise, ...)")
	complexity := profileFlags.String("complexity", "", "Environment complexity: low, medium, high")
	appetite := profileFlags.String("appetite", "", "Risk appetite tag")
	dir := profileFlags.String("dir", "", "Store root directory")
	profileFlags.Parse(os.Args[2:])

	if *complexity != "" {
		switch *complexity {
		case "low", "medium", "high":
		default:
			ui.PrintError(fmt.Sprintf("invalid complexity %q", *complexity))
			ui.PrintHelp("Use -complexity low, medium, or high.")
			os.Exit(1)
		}
	}

	ui.PrintMiniBanner()
	ui.PrintSection("Risk Profile")

	st := openStore(*dir)
	e := requireCurrent(st)

	if *industry != "" {
		e.Profile.Industry = *industry
	}
	if *size != "" {
		e.Profile.Size = *size
	}
	if *complexity != "" {
		e.Profile.Complexity = *complexity
	}
	if *appetite != "" {
		e.Profile.RiskAppetite = *appetite
	}

	if err := st.Save(e); err != nil {
		fail(err)
	}

	ui.PrintConfigLine("Engagement", e.Name)
	ui.PrintConfigLine("Industry", orUnset(e.Profile.Industry))
	ui.PrintConfigLine("Size", orUnset(e.Profile.Size))
	ui.PrintConfigLine("Complexity", orUnset(e.Profile.Complexity))
	ui.PrintConfigLine("Risk appetite", e.Profile.RiskAppetite)

	areas := risk.Assess(e.Profile)
	fmt.Println()
	fmt.Println(ui.SectionStyle.Render("Assessed risk areas:"))
	for i, area := range areas {
		fmt.Printf("  %s %s\n",
			ui.StatValueStyle.Render(fmt.Sprintf("%d.", i+1)), area)
	}
	fmt.Println()
	ui.PrintHelp("Next: audithound plan -timeline <days> -automation <level>")
}

func orUnset(v string) string {
	if v == "" {
		return "(unset)"
	}
	return v
}
