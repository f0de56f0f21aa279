package executor

import (
	"testing"

	"github.com/audithound/audithound/pkg/program"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Access Controls", "access_controls"},
		{"Risk Assessment", "risk_assessment"},
		{"data protection", "data_protection"},
		{"Already_Normal", "already_normal"},
		{"", ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeName(tt.in); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExecuteWorkstreamTemplates(t *testing.T) {
	t.Parallel()

	engine := New(nil)

	tests := []struct {
		name      string
		wantTests int
		wantPass  float64
		wantFinds int
		wantRate  Rating
	}{
		{"Access Controls", 847, 95.0, 3, Medium},
		{"Risk Assessment", 156, 98.0, 1, Low},
		{"Data Protection", 523, 91.0, 4, Medium},
		// Unrecognized names fall back to the generic template.
		{"Vendor Management", 234, 92.0, 2, Low},
		{"", 234, 92.0, 2, Low},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := engine.ExecuteWorkstream(tt.name, "medium")
			if r.TestsExecuted != tt.wantTests {
				t.Errorf("tests = %d, want %d", r.TestsExecuted, tt.wantTests)
			}
			if r.PassRate != tt.wantPass {
				t.Errorf("pass rate = %v, want %v", r.PassRate, tt.wantPass)
			}
			if r.Findings != tt.wantFinds {
				t.Errorf("findings = %d, want %d", r.Findings, tt.wantFinds)
			}
			if r.RiskRating != tt.wantRate {
				t.Errorf("rating = %s, want %s", r.RiskRating, tt.wantRate)
			}
			if r.Workstream != tt.name {
				t.Errorf("workstream = %q, want %q", r.Workstream, tt.name)
			}
			if r.AutomationLevel != "medium" {
				t.Errorf("automation = %q, want %q", r.AutomationLevel, "medium")
			}
			if r.ExecutedAt.IsZero() {
				t.Error("ExecutedAt not set")
			}
		})
	}
}

// recordingReporter captures the progress stream for assertions.
type recordingReporter struct {
	labels  []string
	updates []int
	ended   int
}

func (r *recordingReporter) Begin(label string) { r.labels = append(r.labels, label) }
func (r *recordingReporter) Update(percent int) { r.updates = append(r.updates, percent) }
func (r *recordingReporter) End()               { r.ended++ }

func TestExecuteWorkstreamProgress(t *testing.T) {
	t.Parallel()

	rec := &recordingReporter{}
	engine := New(rec)
	engine.ExecuteWorkstream("Access Controls", "high")

	if len(rec.labels) != 1 || rec.labels[0] != "Access Controls" {
		t.Fatalf("Begin labels = %v", rec.labels)
	}
	if rec.ended != 1 {
		t.Errorf("End called %d times, want 1", rec.ended)
	}
	if len(rec.updates) == 0 {
		t.Fatal("no progress updates")
	}
	last := 0
	for _, p := range rec.updates {
		if p < last {
			t.Errorf("progress went backwards: %v", rec.updates)
			break
		}
		last = p
	}
	if rec.updates[len(rec.updates)-1] != 100 {
		t.Errorf("final update = %d, want 100", rec.updates[len(rec.updates)-1])
	}
}

func TestExecuteAllOrderAndIndependence(t *testing.T) {
	t.Parallel()

	wp := program.Generate(90, "medium")
	rec := &recordingReporter{}
	engine := New(rec)

	results := engine.ExecuteAll(wp, "high")
	if len(results) != len(wp.Workstreams) {
		t.Fatalf("got %d results, want %d", len(results), len(wp.Workstreams))
	}
	// Executed in stored order.
	for i, ws := range wp.Workstreams {
		if rec.labels[i] != ws.Name {
			t.Errorf("execution order[%d] = %q, want %q", i, rec.labels[i], ws.Name)
		}
		r, ok := results[ws.Name]
		if !ok {
			t.Fatalf("no result for %q", ws.Name)
		}
		if r.AutomationLevel != "high" {
			t.Errorf("%q automation = %q, want %q", ws.Name, r.AutomationLevel, "high")
		}
	}
	// One workstream's result does not bleed into another's.
	if results["Access Controls"].TestsExecuted == results["Risk Assessment"].TestsExecuted {
		t.Error("distinct templates should yield distinct results")
	}
}
