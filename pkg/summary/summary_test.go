package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audithound/audithound/pkg/defaults"
	"github.com/audithound/audithound/pkg/engagement"
	"github.com/audithound/audithound/pkg/executor"
	"github.com/audithound/audithound/pkg/program"
)

func TestCompileNoProgram(t *testing.T) {
	t.Parallel()

	e := engagement.New("Q1 Audit", "Acme", "soc2")
	s := Compile(e, nil, nil)

	assert.Equal(t, "Q1 Audit", s.EngagementName)
	assert.Equal(t, 0, s.ProgressPercent)
	assert.Equal(t, 0, s.WorkstreamsTotal)
	assert.Equal(t, 0, s.Findings.Total())
	assert.Zero(t, s.SatisfactionScore)
}

func TestCompileProgress(t *testing.T) {
	t.Parallel()

	e := engagement.New("Q1 Audit", "Acme", "")
	wp := program.Generate(90, "medium")
	engine := executor.New(nil)

	results := map[string]executor.Result{
		"Risk Assessment": engine.ExecuteWorkstream("Risk Assessment", "medium"),
		"Access Controls": engine.ExecuteWorkstream("Access Controls", "medium"),
	}
	s := Compile(e, wp, results)

	assert.Equal(t, 3, s.WorkstreamsTotal)
	assert.Equal(t, 2, s.WorkstreamsExecuted)
	// round(100 * 2/3) = 67
	assert.Equal(t, 67, s.ProgressPercent)
}

func TestCompileFindingsAndExposure(t *testing.T) {
	t.Parallel()

	e := engagement.New("Q1 Audit", "Acme", "")
	wp := program.Generate(90, "medium")
	engine := executor.New(nil)
	results := engine.ExecuteAll(wp, "medium")

	s := Compile(e, wp, results)

	// access_controls: 3 findings Medium; data_protection: 4 Medium;
	// risk_assessment: 1 Low.
	assert.Equal(t, 0, s.Findings.High)
	assert.Equal(t, 7, s.Findings.Medium)
	assert.Equal(t, 1, s.Findings.Low)
	assert.Equal(t, 8, s.Findings.Total())

	wantExposure := 7*defaults.ExposureMediumUSD + 1*defaults.ExposureLowUSD
	assert.Equal(t, wantExposure, s.RiskExposureUSD)

	// 847 + 156 + 523
	assert.Equal(t, 1526, s.TestsExecuted)
	// (95 + 98 + 91) / 3
	assert.InDelta(t, 94.666, s.AveragePassRate, 0.01)
}

func TestCompileSatisfactionBounds(t *testing.T) {
	t.Parallel()

	e := engagement.New("Q1 Audit", "Acme", "")
	wp := program.Generate(90, "medium")

	mk := func(pass float64) map[string]executor.Result {
		return map[string]executor.Result{
			"Access Controls": {Workstream: "Access Controls", PassRate: pass, RiskRating: executor.Low},
		}
	}

	perfect := Compile(e, wp, mk(100))
	assert.Equal(t, defaults.SatisfactionMax, perfect.SatisfactionScore)

	awful := Compile(e, wp, mk(0))
	assert.Zero(t, awful.SatisfactionScore)

	pivot := Compile(e, wp, mk(defaults.SatisfactionPassRatePivot))
	assert.InDelta(t, defaults.SatisfactionBaseline, pivot.SatisfactionScore, 0.001)
}

func TestCompileAutomationBenefit(t *testing.T) {
	t.Parallel()

	e := engagement.New("Q1 Audit", "Acme", "")
	wp := program.Generate(90, "medium")
	s := Compile(e, wp, nil)

	assert.Equal(t, 6, s.AutomationBenefit.ProceduresAutomated)
	assert.Equal(t, 6*defaults.HoursSavedPerAutomatedProcedure, s.AutomationBenefit.HoursSaved)
	assert.Equal(t, 29, s.AutomationBenefit.ManualHoursReduced) // round(36 * 0.8)
	assert.Equal(t, 67, s.AutomationPercentage)
}

func TestCompileIsPure(t *testing.T) {
	t.Parallel()

	e := engagement.New("Q1 Audit", "Acme", "")
	wp := program.Generate(90, "medium")
	engine := executor.New(nil)
	results := engine.ExecuteAll(wp, "medium")

	first := Compile(e, wp, results)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Compile(e, wp, results))
	}
}

func TestCompileReflectsReExecution(t *testing.T) {
	t.Parallel()

	e := engagement.New("Q1 Audit", "Acme", "")
	wp := program.Generate(90, "medium")
	engine := executor.New(nil)
	results := engine.ExecuteAll(wp, "medium")

	before := Compile(e, wp, results)

	// Overwrite one result with a different rating and recompile.
	r := results["Access Controls"]
	r.RiskRating = executor.High
	results["Access Controls"] = r

	after := Compile(e, wp, results)
	assert.Equal(t, before.Findings.Total(), after.Findings.Total())
	assert.Equal(t, 3, after.Findings.High)
	assert.Equal(t, 4, after.Findings.Medium)
	assert.Greater(t, after.RiskExposureUSD, before.RiskExposureUSD)
}
