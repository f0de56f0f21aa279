// Command audithound manages the lifecycle of audit engagements:
// create a configuration, profile organizational risk, generate a work
// program, execute its workstreams, and render stakeholder reports.
//
// Each invocation runs one command to completion and persists state
// under the store root, so the tool carries no memory between runs.
package main

import (
	"fmt"
	"os"

	"github.com/audithound/audithound/pkg/ui"
)

func printUsage() {
	fmt.Println("audithound - audit engagement lifecycle manager")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  audithound <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  init <name>   Create a new engagement (-entity required)")
	fmt.Println("  profile       Update the risk profile and print assessed risk areas")
	fmt.Println("  plan          Generate and persist the work program")
	fmt.Println("  execute       Execute one or all workstreams")
	fmt.Println("  report        Compile and persist a stakeholder report")
	fmt.Println("  status        Show the current engagement and its progress")
	fmt.Println("  version       Print version information")
	fmt.Println()
	fmt.Println("Common flags:")
	fmt.Println("  -dir <path>   Store root (default: $AUDITHOUND_HOME or ./.audithound)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  audithound init \"Q1 Audit\" -entity \"Acme Corp\" -framework soc2")
	fmt.Println("  audithound profile -industry saas -size startup")
	fmt.Println("  audithound plan -timeline 60 -automation high")
	fmt.Println("  audithound execute")
	fmt.Println("  audithound report -stakeholder board -format html")
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init", "create":
		runInit()
	case "profile", "assess":
		runProfile()
	case "plan", "generate":
		runPlan()
	case "execute", "run":
		runExecute()
	case "report", "reports":
		runReport()
	case "status", "st":
		runStatus()
	case "-h", "--help", "help":
		printUsage()
		os.Exit(0)
	case "-v", "--version", "version":
		ui.PrintMiniBanner()
		os.Exit(0)
	default:
		ui.PrintError(fmt.Sprintf("unknown command: %s", os.Args[1]))
		printUsage()
		os.Exit(1)
	}
}
