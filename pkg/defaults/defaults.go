// Package defaults provides canonical default values for the entire
// codebase. This is the single source of truth for runtime defaults:
// command flag defaults, persisted-layout names, and the deterministic
// constants used by summary aggregation.
//
// Do not hardcode values like `Timeline: 90` at call sites; reference
// the appropriate constant from this package instead.
package defaults

// Version is the current audithound version.
const Version = "0.4.1"

// ============================================================================
// COMMAND DEFAULTS
// ============================================================================

const (
	// TimelineDays is the default work program timeline (-timeline).
	TimelineDays = 90

	// AutomationLevel is the default automation tier (-automation).
	AutomationLevel = "medium"

	// Stakeholder is the default report addressee (-stakeholder).
	Stakeholder = "management"

	// ReportFormat is the default report format (-format).
	ReportFormat = "dashboard"
)

// ============================================================================
// PERSISTED LAYOUT
// ============================================================================
//
// Names under the store root. The root itself comes from -dir,
// AUDITHOUND_HOME, or HomeDirName in the working directory.
// ============================================================================

const (
	// HomeDirName is the default store root in the working directory.
	HomeDirName = ".audithound"

	// EnvHome overrides the store root when set.
	EnvHome = "AUDITHOUND_HOME"

	// EngagementsDirName holds one directory per engagement.
	EngagementsDirName = "engagements"

	// ConfigFileName is the per-engagement configuration record.
	ConfigFileName = "engagement.yaml"

	// ProgramFileName is the per-engagement work program record.
	ProgramFileName = "workprogram.json"

	// ResultsFileName is the per-engagement execution results record.
	ResultsFileName = "results.json"

	// EvidenceDirName reserves per-workstream evidence locations.
	EvidenceDirName = "evidence"

	// ReportsDirName holds generated stakeholder documents.
	ReportsDirName = "reports"

	// CurrentMarkerName is the explicit current-engagement marker.
	CurrentMarkerName = "current"
)

// ============================================================================
// SUMMARY AGGREGATION CONSTANTS
// ============================================================================
//
// Deterministic inputs to pkg/summary. Replace these to recalibrate
// reporting without touching the aggregation control flow.
// ============================================================================

const (
	// ExposureHighUSD is the modeled exposure per high-rated finding.
	ExposureHighUSD = 120_000

	// ExposureMediumUSD is the modeled exposure per medium-rated finding.
	ExposureMediumUSD = 45_000

	// ExposureLowUSD is the modeled exposure per low-rated finding.
	ExposureLowUSD = 8_000

	// HoursSavedPerAutomatedProcedure feeds the automation benefit metric.
	HoursSavedPerAutomatedProcedure = 6
)

// ManualReductionFactor is the share of saved hours that would
// otherwise have been manual effort.
const ManualReductionFactor = 0.8

// ============================================================================
// SATISFACTION MODEL
// ============================================================================

const (
	// SatisfactionBaseline is the stakeholder satisfaction score at a
	// 90% average pass rate.
	SatisfactionBaseline = 3.0

	// SatisfactionPassRatePivot is the pass rate the baseline anchors to.
	SatisfactionPassRatePivot = 90.0

	// SatisfactionMax caps the satisfaction score.
	SatisfactionMax = 5.0
)
