// Package executor walks a work program's workstreams and produces
// per-workstream execution results.
//
// Execution is a deterministic simulation: results come from a fixed
// template table keyed by normalized workstream name, not from probing
// a live audit target. The package boundary is where real
// evidence-gathering adapters would plug in; cancellation and timeout
// belong to such adapters, not to the sequencing here.
package executor

import (
	"strings"
	"time"

	"github.com/audithound/audithound/pkg/program"
)

// Result records one workstream execution. Re-executing a workstream
// overwrites its prior result; no history is retained.
type Result struct {
	Workstream      string    `json:"workstream"`
	TestsExecuted   int       `json:"tests_executed"`
	PassRate        float64   `json:"pass_rate"`
	Findings        int       `json:"findings"`
	RiskRating      Rating    `json:"risk_rating"`
	AutomationLevel string    `json:"automation_level"`
	ExecutedAt      time.Time `json:"executed_at"`
}

// Template is the fixed outcome for one workstream key.
type Template struct {
	TestsExecuted int
	PassRate      float64
	Findings      int
	RiskRating    Rating
}

// Templates maps normalized workstream names to their fixed outcomes.
// Exported so real execution adapters can replace the demo table
// without touching the engine.
var Templates = map[string]Template{
	"access_controls": {TestsExecuted: 847, PassRate: 95.0, Findings: 3, RiskRating: Medium},
	"risk_assessment": {TestsExecuted: 156, PassRate: 98.0, Findings: 1, RiskRating: Low},
	"data_protection": {TestsExecuted: 523, PassRate: 91.0, Findings: 4, RiskRating: Medium},
}

// Fallback is the template applied to unrecognized workstream names.
var Fallback = Template{TestsExecuted: 234, PassRate: 92.0, Findings: 2, RiskRating: Low}

// ProgressReporter receives execution progress. The engine drives it
// from 0 to 100 per workstream; implementations decide how to render
// (or pace) that. A nil reporter is valid and reports nothing.
type ProgressReporter interface {
	Begin(label string)
	Update(percent int)
	End()
}

// progressSteps is the number of Update calls per workstream run.
const progressSteps = 10

// Engine executes workstreams against the template table.
type Engine struct {
	// Reporter receives per-workstream progress; may be nil.
	Reporter ProgressReporter

	// now is stubbed in tests.
	now func() time.Time
}

// New creates an engine reporting progress to reporter (nil for none).
func New(reporter ProgressReporter) *Engine {
	return &Engine{
		Reporter: reporter,
		now:      time.Now,
	}
}

// NormalizeName maps a workstream name to its template key:
// lowercase with spaces replaced by underscores.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// ExecuteWorkstream runs one workstream as a single bounded unit of
// work and returns its result. Unrecognized names get the Fallback
// template.
func (e *Engine) ExecuteWorkstream(name, automationLevel string) Result {
	tpl, ok := Templates[NormalizeName(name)]
	if !ok {
		tpl = Fallback
	}

	if e.Reporter != nil {
		e.Reporter.Begin(name)
		for step := 1; step <= progressSteps; step++ {
			e.Reporter.Update(step * 100 / progressSteps)
		}
		e.Reporter.End()
	}

	return Result{
		Workstream:      name,
		TestsExecuted:   tpl.TestsExecuted,
		PassRate:        tpl.PassRate,
		Findings:        tpl.Findings,
		RiskRating:      tpl.RiskRating,
		AutomationLevel: automationLevel,
		ExecutedAt:      e.now().UTC(),
	}
}

// ExecuteAll executes every workstream in the program's stored order.
// Workstreams are independent; one result never affects another's
// execution. Returns a map keyed by workstream name.
func (e *Engine) ExecuteAll(wp *program.WorkProgram, automationLevel string) map[string]Result {
	results := make(map[string]Result, len(wp.Workstreams))
	for _, ws := range wp.Workstreams {
		results[ws.Name] = e.ExecuteWorkstream(ws.Name, automationLevel)
	}
	return results
}
