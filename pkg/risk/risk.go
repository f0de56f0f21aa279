// Package risk maps an organizational profile to a ranked list of
// risk areas. The assessment is a deterministic two-table lookup:
// industry risks first, size risks second, truncated to MaxAreas.
// Industry risk is deliberately weighted as more salient than size
// risk, so the concatenation order is part of the contract.
package risk

import "github.com/audithound/audithound/pkg/engagement"

// MaxAreas is the maximum number of risk areas an assessment returns.
const MaxAreas = 6

// IndustryRisks is the ordered industry lookup table. Exported so real
// content can replace the built-in entries without touching Assess.
var IndustryRisks = map[string][]string{
	"saas": {
		"unauthorized access",
		"data leakage",
		"availability loss",
		"change management gaps",
	},
	"fintech": {
		"transaction fraud",
		"regulatory non-compliance",
		"data integrity loss",
		"third-party risk",
	},
	"healthcare": {
		"PHI exposure",
		"access control gaps",
		"audit trail gaps",
		"vendor risk",
	},
	"retail": {
		"payment card exposure",
		"inventory manipulation",
		"third-party risk",
	},
}

// GenericRisks is the fallback for unknown or absent industries: a
// generic spread over IT, process, and compliance controls.
var GenericRisks = []string{
	"IT general control gaps",
	"process control gaps",
	"compliance drift",
}

// SizeRisks is the ordered size lookup table. Unknown sizes contribute
// nothing.
var SizeRisks = map[string][]string{
	"startup": {
		"key person dependency",
		"immature change control",
	},
	"medium": {
		"segregation of duties gaps",
		"tooling sprawl",
	},
	"enterprise": {
		"legacy system risk",
		"acquisition integration risk",
		"shadow IT",
	},
}

// Assess returns the ranked risk areas for a profile: the industry
// table's entries followed by the size table's, each in table order,
// truncated to MaxAreas. Same profile always yields the same slice.
func Assess(profile engagement.RiskProfile) []string {
	industry, ok := IndustryRisks[profile.Industry]
	if !ok {
		industry = GenericRisks
	}
	size := SizeRisks[profile.Size]

	areas := make([]string, 0, len(industry)+len(size))
	areas = append(areas, industry...)
	areas = append(areas, size...)

	if len(areas) > MaxAreas {
		areas = areas[:MaxAreas]
	}
	return areas
}
