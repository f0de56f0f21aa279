// Package summary compiles engagement state into the flat
// EngagementSummary record consumed by report renderers.
//
// Compile is a pure function of the engagement, its work program, and
// its execution results; the summary is recomputed on demand and never
// persisted as a canonical record, so it cannot go stale.
package summary

import (
	"math"
	"sort"

	"github.com/audithound/audithound/pkg/defaults"
	"github.com/audithound/audithound/pkg/engagement"
	"github.com/audithound/audithound/pkg/executor"
	"github.com/audithound/audithound/pkg/program"
)

// FindingCounts partitions findings by the risk rating of the
// workstream that produced them.
type FindingCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Total returns the sum across all buckets.
func (f FindingCounts) Total() int {
	return f.High + f.Medium + f.Low
}

// AutomationBenefit quantifies what the automated share of the program
// buys back.
type AutomationBenefit struct {
	ProceduresAutomated int `json:"procedures_automated"`
	HoursSaved          int `json:"hours_saved"`
	ManualHoursReduced  int `json:"manual_hours_reduced"`
}

// EngagementSummary is the derived, read-only projection of one
// engagement's state.
type EngagementSummary struct {
	EngagementName string            `json:"engagement_name"`
	Entity         string            `json:"entity"`
	Framework      string            `json:"framework"`
	Status         engagement.Status `json:"status"`

	ProgressPercent      int               `json:"progress_percent"`
	WorkstreamsTotal     int               `json:"workstreams_total"`
	WorkstreamsExecuted  int               `json:"workstreams_executed"`
	Findings             FindingCounts     `json:"findings"`
	RiskExposureUSD      int               `json:"risk_exposure_usd"`
	SatisfactionScore    float64           `json:"satisfaction_score"`
	TestsExecuted        int               `json:"tests_executed"`
	AveragePassRate      float64           `json:"average_pass_rate"`
	AutomationBenefit    AutomationBenefit `json:"automation_benefit"`
	AutomationPercentage int               `json:"automation_percentage"`
}

// Compile aggregates engagement state into a summary. wp may be nil
// (plan has not run) and results may be empty; both degrade to zeroed
// metrics rather than errors.
func Compile(e *engagement.Engagement, wp *program.WorkProgram, results map[string]executor.Result) EngagementSummary {
	s := EngagementSummary{
		EngagementName: e.Name,
		Entity:         e.Entity,
		Framework:      e.Framework,
		Status:         e.Status,
	}

	if wp != nil {
		s.WorkstreamsTotal = len(wp.Workstreams)
		s.AutomationPercentage = wp.Automation.Percentage
		s.AutomationBenefit = AutomationBenefit{
			ProceduresAutomated: wp.Automation.AutomatedProcedures,
			HoursSaved:          wp.Automation.AutomatedProcedures * defaults.HoursSavedPerAutomatedProcedure,
		}
		s.AutomationBenefit.ManualHoursReduced = int(math.Round(
			float64(s.AutomationBenefit.HoursSaved) * defaults.ManualReductionFactor))

		for _, ws := range wp.Workstreams {
			if _, ok := results[ws.Name]; ok {
				s.WorkstreamsExecuted++
			}
		}
		if s.WorkstreamsTotal > 0 {
			s.ProgressPercent = int(math.Round(
				100 * float64(s.WorkstreamsExecuted) / float64(s.WorkstreamsTotal)))
		}
	}

	if len(results) == 0 {
		return s
	}

	// Iterate in sorted key order so float accumulation is stable.
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	var passSum float64
	for _, name := range names {
		r := results[name]
		s.TestsExecuted += r.TestsExecuted
		passSum += r.PassRate
		switch r.RiskRating {
		case executor.High:
			s.Findings.High += r.Findings
			s.RiskExposureUSD += r.Findings * defaults.ExposureHighUSD
		case executor.Medium:
			s.Findings.Medium += r.Findings
			s.RiskExposureUSD += r.Findings * defaults.ExposureMediumUSD
		default:
			s.Findings.Low += r.Findings
			s.RiskExposureUSD += r.Findings * defaults.ExposureLowUSD
		}
	}
	s.AveragePassRate = passSum / float64(len(results))
	s.SatisfactionScore = satisfaction(s.AveragePassRate)

	return s
}

// satisfaction maps an average pass rate to a 0-5 stakeholder score:
// baseline at the pivot rate, two points per ten points of pass rate.
func satisfaction(avgPassRate float64) float64 {
	score := defaults.SatisfactionBaseline +
		2.0*(avgPassRate-defaults.SatisfactionPassRatePivot)/10.0
	if score < 0 {
		return 0
	}
	if score > defaults.SatisfactionMax {
		return defaults.SatisfactionMax
	}
	return math.Round(score*10) / 10
}
