package risk

import (
	"testing"

	"github.com/audithound/audithound/pkg/engagement"
)

func TestAssessLengthBound(t *testing.T) {
	t.Parallel()

	industries := []string{"saas", "fintech", "healthcare", "retail", "logistics", ""}
	sizes := []string{"startup", "medium", "enterprise", "conglomerate", ""}

	for _, industry := range industries {
		for _, size := range sizes {
			areas := Assess(engagement.RiskProfile{Industry: industry, Size: size})
			if len(areas) > MaxAreas {
				t.Errorf("Assess(%q, %q) returned %d areas, max is %d",
					industry, size, len(areas), MaxAreas)
			}
			if len(areas) == 0 {
				t.Errorf("Assess(%q, %q) returned no areas; fallback should apply", industry, size)
			}
		}
	}
}

func TestAssessIndustryPrecedesSize(t *testing.T) {
	t.Parallel()

	profile := engagement.RiskProfile{Industry: "retail", Size: "startup"}
	areas := Assess(profile)

	want := []string{
		"payment card exposure",
		"inventory manipulation",
		"third-party risk",
		"key person dependency",
		"immature change control",
	}
	if len(areas) != len(want) {
		t.Fatalf("Assess() returned %d areas, want %d: %v", len(areas), len(want), areas)
	}
	for i, area := range want {
		if areas[i] != area {
			t.Errorf("areas[%d] = %q, want %q", i, areas[i], area)
		}
	}
}

func TestAssessTruncation(t *testing.T) {
	t.Parallel()

	// 4 industry + 3 size entries must truncate to 6, keeping all
	// industry entries and the first two size entries.
	areas := Assess(engagement.RiskProfile{Industry: "saas", Size: "enterprise"})
	if len(areas) != MaxAreas {
		t.Fatalf("expected truncation to %d, got %d: %v", MaxAreas, len(areas), areas)
	}
	if areas[3] != "change management gaps" {
		t.Errorf("industry entries must precede size entries, got %v", areas)
	}
	if areas[5] != "acquisition integration risk" {
		t.Errorf("truncation should cut the last size entry, got %v", areas)
	}
}

func TestAssessUnknownIndustryFallback(t *testing.T) {
	t.Parallel()

	areas := Assess(engagement.RiskProfile{Industry: "agriculture"})
	if len(areas) != len(GenericRisks) {
		t.Fatalf("unknown industry should yield the generic list, got %v", areas)
	}
	for i, want := range GenericRisks {
		if areas[i] != want {
			t.Errorf("areas[%d] = %q, want %q", i, areas[i], want)
		}
	}
}

func TestAssessDeterministic(t *testing.T) {
	t.Parallel()

	profile := engagement.RiskProfile{Industry: "fintech", Size: "medium"}
	first := Assess(profile)
	for i := 0; i < 50; i++ {
		again := Assess(profile)
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed from %d to %d", i, len(first), len(again))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: areas[%d] = %q, want %q", i, j, again[j], first[j])
			}
		}
	}
}
