// Package program defines the work program model and its generator.
// A work program is the generated audit plan: a timeline, an ordered
// set of workstreams, and an automation summary. Re-running generation
// fully replaces the previous program; there is no incremental merge.
package program

import (
	"time"

	"github.com/google/uuid"
)

// Workstream priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// WorkProgram is the generated audit plan for one engagement.
type WorkProgram struct {
	ID          string       `json:"id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Timeline    Timeline     `json:"timeline"`
	Workstreams []Workstream `json:"workstreams"`
	Automation  Summary      `json:"automation_summary"`
}

// Timeline bounds the program's execution window.
type Timeline struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	DurationDays int       `json:"duration_days"`
}

// Workstream is a named group of audit procedures sharing a priority
// and an automation level. Names are unique within a program and
// procedures are never empty.
type Workstream struct {
	Name            string   `json:"name"`
	Priority        string   `json:"priority"`
	AutomationLevel string   `json:"automation_level"`
	EstimatedHours  int      `json:"estimated_hours"`
	Procedures      []string `json:"procedures"`
}

// Summary aggregates the program's automation coverage.
// Percentage is always round(100 * Automated / Total).
type Summary struct {
	TotalProcedures     int `json:"total_procedures"`
	AutomatedProcedures int `json:"automated_procedures"`
	Percentage          int `json:"automation_percentage"`
}

// Find returns the workstream with the given name, or nil.
func (wp *WorkProgram) Find(name string) *Workstream {
	for i := range wp.Workstreams {
		if wp.Workstreams[i].Name == name {
			return &wp.Workstreams[i]
		}
	}
	return nil
}

// Names returns the workstream names in stored order.
func (wp *WorkProgram) Names() []string {
	names := make([]string, len(wp.Workstreams))
	for i, ws := range wp.Workstreams {
		names[i] = ws.Name
	}
	return names
}

func newID() string {
	return uuid.NewString()
}
