package program

import (
	"testing"
	"time"
)

func TestGenerateCatalogStructure(t *testing.T) {
	t.Parallel()

	wp := Generate(90, "medium")

	wantNames := []string{"Risk Assessment", "Access Controls", "Data Protection"}
	if len(wp.Workstreams) != len(wantNames) {
		t.Fatalf("got %d workstreams, want %d", len(wp.Workstreams), len(wantNames))
	}
	for i, name := range wantNames {
		if wp.Workstreams[i].Name != name {
			t.Errorf("workstream[%d] = %q, want %q", i, wp.Workstreams[i].Name, name)
		}
		if len(wp.Workstreams[i].Procedures) == 0 {
			t.Errorf("workstream %q has no procedures", name)
		}
	}
	if wp.Workstreams[0].Priority != PriorityHigh {
		t.Errorf("Risk Assessment priority = %q, want %q", wp.Workstreams[0].Priority, PriorityHigh)
	}
}

func TestGenerateAutomationSummary(t *testing.T) {
	t.Parallel()

	wp := Generate(90, "low")
	if wp.Automation.TotalProcedures != 9 {
		t.Errorf("total procedures = %d, want 9", wp.Automation.TotalProcedures)
	}
	if wp.Automation.AutomatedProcedures != 6 {
		t.Errorf("automated procedures = %d, want 6", wp.Automation.AutomatedProcedures)
	}
	// round(100 * 6/9) = 67
	if wp.Automation.Percentage != 67 {
		t.Errorf("automation percentage = %d, want 67", wp.Automation.Percentage)
	}
}

func TestGenerateAccessControlsTakesCallerLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"low", "medium", "high"} {
		wp := Generate(30, level)
		ac := wp.Find("Access Controls")
		if ac == nil {
			t.Fatal("Access Controls workstream missing")
		}
		if ac.AutomationLevel != level {
			t.Errorf("Access Controls automation = %q, want caller level %q", ac.AutomationLevel, level)
		}
		// The other workstreams keep their template levels regardless.
		if ra := wp.Find("Risk Assessment"); ra.AutomationLevel != "medium" {
			t.Errorf("Risk Assessment automation = %q, want template default", ra.AutomationLevel)
		}
		if dp := wp.Find("Data Protection"); dp.AutomationLevel != "high" {
			t.Errorf("Data Protection automation = %q, want template default", dp.AutomationLevel)
		}
	}
}

func TestGenerateTimeline(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	wp := Generate(60, "medium")
	after := time.Now().UTC()

	if wp.Timeline.DurationDays != 60 {
		t.Errorf("duration = %d, want 60", wp.Timeline.DurationDays)
	}
	if wp.Timeline.Start.Before(before.Add(-time.Second)) || wp.Timeline.Start.After(after.Add(time.Second)) {
		t.Errorf("start %v not near now", wp.Timeline.Start)
	}
	if got := wp.Timeline.End.Sub(wp.Timeline.Start); got < 59*24*time.Hour || got > 61*24*time.Hour {
		t.Errorf("end-start = %v, want ~60 days", got)
	}
}

func TestGenerateDeterministicStructure(t *testing.T) {
	t.Parallel()

	a := Generate(90, "medium")
	b := Generate(45, "high")

	if len(a.Workstreams) != len(b.Workstreams) {
		t.Fatal("workstream count should not vary with inputs")
	}
	for i := range a.Workstreams {
		if a.Workstreams[i].Name != b.Workstreams[i].Name {
			t.Errorf("workstream order changed: %q vs %q",
				a.Workstreams[i].Name, b.Workstreams[i].Name)
		}
		if len(a.Workstreams[i].Procedures) != len(b.Workstreams[i].Procedures) {
			t.Errorf("procedure count for %q varies with inputs", a.Workstreams[i].Name)
		}
	}
	if a.ID == b.ID {
		t.Error("each generation should get its own ID")
	}
}

func TestGenerateReplacesPriorProgram(t *testing.T) {
	t.Parallel()

	// Mutating one program must not leak into the catalog or into a
	// later generation.
	a := Generate(90, "medium")
	a.Workstreams[0].Procedures[0] = "tampered"

	b := Generate(90, "medium")
	if b.Workstreams[0].Procedures[0] == "tampered" {
		t.Error("generated programs share procedure slices with the catalog")
	}
}
