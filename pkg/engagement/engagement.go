// Package engagement defines the core audit engagement data model.
// An engagement is one bounded audit project: identity, status, risk
// profile, and automation settings. It is persisted by pkg/store and
// mutated by the CLI commands, one command per process invocation.
package engagement

import (
	"time"

	"github.com/google/uuid"
)

// Framework identifies the audit framework an engagement is scoped to.
// Free-form values are accepted; these are the common ones.
const (
	FrameworkSOC2     = "soc2"
	FrameworkSOX      = "sox"
	FrameworkISO27001 = "iso27001"
	FrameworkCustom   = "custom"
)

// Engagement is one audit project instance with its own configuration
// and state. Exactly one engagement is "current" per store root.
type Engagement struct {
	ID        string    `yaml:"id" json:"id"`
	Name      string    `yaml:"name" json:"name"`
	Entity    string    `yaml:"entity" json:"entity"`
	Framework string    `yaml:"framework" json:"framework"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
	Status    Status    `yaml:"status" json:"status"`

	Stakeholders []string `yaml:"stakeholders,omitempty" json:"stakeholders,omitempty"`

	Profile    RiskProfile        `yaml:"risk_profile" json:"risk_profile"`
	Automation AutomationSettings `yaml:"automation" json:"automation"`
}

// RiskProfile captures the organizational profile that drives risk
// assessment. Industry and size accept free-form tags.
type RiskProfile struct {
	Industry     string `yaml:"industry,omitempty" json:"industry,omitempty"`
	Size         string `yaml:"size,omitempty" json:"size,omitempty"`
	Complexity   string `yaml:"complexity,omitempty" json:"complexity,omitempty"`
	RiskAppetite string `yaml:"risk_appetite" json:"risk_appetite"`
}

// AutomationSettings holds the coarse automation preferences applied
// when generating and executing the work program.
type AutomationSettings struct {
	Level string `yaml:"level" json:"level"`
}

// New creates an engagement in the planning state with default
// profile and automation settings.
func New(name, entity, framework string) *Engagement {
	if framework == "" {
		framework = FrameworkCustom
	}
	return &Engagement{
		ID:        uuid.NewString(),
		Name:      name,
		Entity:    entity,
		Framework: framework,
		CreatedAt: time.Now().UTC(),
		Status:    StatusPlanning,
		Profile: RiskProfile{
			RiskAppetite: "moderate",
		},
		Automation: AutomationSettings{
			Level: AutomationMedium,
		},
	}
}

// Automation levels for workstreams and engagement settings.
const (
	AutomationLow    = "low"
	AutomationMedium = "medium"
	AutomationHigh   = "high"
)

// ValidAutomationLevel reports whether level is a recognized
// automation tier.
func ValidAutomationLevel(level string) bool {
	switch level {
	case AutomationLow, AutomationMedium, AutomationHigh:
		return true
	}
	return false
}
