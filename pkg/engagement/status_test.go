package engagement

import "testing"

func TestStatusIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    Status
		want bool
	}{
		{StatusPlanning, true},
		{StatusExecuting, true},
		{StatusReporting, true},
		{StatusComplete, true},
		{"Unknown", false},
		{"", false},
		{"PLANNING", false}, // case-sensitive
	}
	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.s), func(t *testing.T) {
			t.Parallel()
			if got := tt.s.IsValid(); got != tt.want {
				t.Errorf("Status(%q).IsValid() = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestStatusRankOrder(t *testing.T) {
	t.Parallel()

	order := []Status{StatusPlanning, StatusExecuting, StatusReporting, StatusComplete}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Errorf("Rank(%s)=%d not greater than Rank(%s)=%d",
				order[i], order[i].Rank(), order[i-1], order[i-1].Rank())
		}
	}
	if Status("bogus").Rank() != 0 {
		t.Errorf("unknown status should rank 0, got %d", Status("bogus").Rank())
	}
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	e := New("Q1 Audit", "Acme", "")
	if e.ID == "" {
		t.Error("New() should assign an ID")
	}
	if e.Status != StatusPlanning {
		t.Errorf("new engagement status = %s, want %s", e.Status, StatusPlanning)
	}
	if e.Framework != FrameworkCustom {
		t.Errorf("empty framework should default to %q, got %q", FrameworkCustom, e.Framework)
	}
	if e.Profile.RiskAppetite != "moderate" {
		t.Errorf("default risk appetite = %q, want %q", e.Profile.RiskAppetite, "moderate")
	}
	if e.Automation.Level != AutomationMedium {
		t.Errorf("default automation = %q, want %q", e.Automation.Level, AutomationMedium)
	}
}

func TestValidAutomationLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  bool
	}{
		{AutomationLow, true},
		{AutomationMedium, true},
		{AutomationHigh, true},
		{"extreme", false},
		{"", false},
		{"Medium", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			if got := ValidAutomationLevel(tt.level); got != tt.want {
				t.Errorf("ValidAutomationLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}
