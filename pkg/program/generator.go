package program

import (
	"math"
	"time"
)

// CatalogEntry is one workstream template. The generator stamps these
// out verbatim, except where noted on Generate.
type CatalogEntry struct {
	Name            string
	Priority        string
	AutomationLevel string
	EstimatedHours  int
	Procedures      []string
}

// Catalog is the fixed workstream catalog the generator draws from.
// It is intentionally not derived from the risk assessment: the
// profiler ranks risk areas for the auditor, while the program covers
// a standard control baseline. Exported so real catalogs can replace
// the built-in one without touching Generate.
var Catalog = []CatalogEntry{
	{
		Name:            "Risk Assessment",
		Priority:        PriorityHigh,
		AutomationLevel: "medium",
		EstimatedHours:  40,
		Procedures: []string{
			"Document entity-level risk register",
			"Interview control owners on key risk areas",
			"Map identified risks to control objectives",
		},
	},
	{
		Name:            "Access Controls",
		Priority:        PriorityHigh,
		AutomationLevel: "", // takes the caller-supplied level
		EstimatedHours:  60,
		Procedures: []string{
			"Test user provisioning and deprovisioning",
			"Review privileged account inventory",
			"Validate periodic access recertification",
		},
	},
	{
		Name:            "Data Protection",
		Priority:        PriorityMedium,
		AutomationLevel: "high",
		EstimatedHours:  50,
		Procedures: []string{
			"Verify encryption of data at rest",
			"Test backup and restore procedures",
			"Review data retention and disposal",
		},
	},
}

// AutomatedProcedures is the fixed automated-procedure count for the
// built-in catalog. It is a literal, not recomputed from automation
// levels; adjust it together with Catalog.
const AutomatedProcedures = 6

// Generate builds a work program from the fixed catalog.
//
// Every workstream keeps its template fields except Access Controls,
// whose automation level is the caller-supplied automationLevel. The
// timeline runs from now for timelineDays days. The automation summary
// counts procedures across all workstreams and applies the
// AutomatedProcedures literal.
func Generate(timelineDays int, automationLevel string) *WorkProgram {
	now := time.Now().UTC()

	workstreams := make([]Workstream, 0, len(Catalog))
	total := 0
	for _, entry := range Catalog {
		level := entry.AutomationLevel
		if level == "" {
			level = automationLevel
		}
		procedures := make([]string, len(entry.Procedures))
		copy(procedures, entry.Procedures)
		workstreams = append(workstreams, Workstream{
			Name:            entry.Name,
			Priority:        entry.Priority,
			AutomationLevel: level,
			EstimatedHours:  entry.EstimatedHours,
			Procedures:      procedures,
		})
		total += len(procedures)
	}

	return &WorkProgram{
		ID:          newID(),
		GeneratedAt: now,
		Timeline: Timeline{
			Start:        now,
			End:          now.AddDate(0, 0, timelineDays),
			DurationDays: timelineDays,
		},
		Workstreams: workstreams,
		Automation: Summary{
			TotalProcedures:     total,
			AutomatedProcedures: AutomatedProcedures,
			Percentage:          percentage(AutomatedProcedures, total),
		},
	}
}

// percentage returns round(100 * automated / total), 0 when total is 0.
func percentage(automated, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(automated) / float64(total)))
}
