package executor

// Rating represents the residual risk rating a workstream execution
// yields. Values are capitalized strings matching the report
// convention used across the persisted records.
type Rating string

const (
	// Low indicates controls operated effectively with minor findings.
	Low Rating = "Low"

	// Medium indicates control weaknesses requiring remediation.
	Medium Rating = "Medium"

	// High indicates significant control failures.
	High Rating = "High"
)

// IsValid reports whether r is a recognized risk rating.
func (r Rating) IsValid() bool {
	switch r {
	case Low, Medium, High:
		return true
	}
	return false
}

// Score returns a numeric score for sorting and comparison.
// High=3, Medium=2, Low=1, Unknown=0.
func (r Rating) Score() int {
	switch r {
	case High:
		return 3
	case Medium:
		return 2
	case Low:
		return 1
	default:
		return 0
	}
}

// String returns the rating as a string.
func (r Rating) String() string {
	return string(r)
}
