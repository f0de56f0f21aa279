package engagement

// Status represents the lifecycle stage of an engagement.
// All values are lowercase strings; they are persisted verbatim in the
// engagement record.
type Status string

const (
	// StatusPlanning is the initial state: configuration exists, the
	// work program may or may not have been generated yet.
	StatusPlanning Status = "planning"

	// StatusExecuting means at least one workstream has produced a
	// result but not all of them have.
	StatusExecuting Status = "executing"

	// StatusReporting means every workstream in the program has been
	// executed and the engagement is ready for stakeholder reports.
	StatusReporting Status = "reporting"

	// StatusComplete means a report has been issued on a fully
	// executed program.
	StatusComplete Status = "complete"
)

// IsValid reports whether s is a recognized engagement status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPlanning, StatusExecuting, StatusReporting, StatusComplete:
		return true
	}
	return false
}

// Rank returns a numeric position in the lifecycle for ordering.
// Planning=1, Executing=2, Reporting=3, Complete=4, Unknown=0.
func (s Status) Rank() int {
	switch s {
	case StatusPlanning:
		return 1
	case StatusExecuting:
		return 2
	case StatusReporting:
		return 3
	case StatusComplete:
		return 4
	default:
		return 0
	}
}

// String returns the status as a string.
func (s Status) String() string {
	return string(s)
}
