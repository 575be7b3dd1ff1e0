// Package record contains the canonical disbursal record and the
// normalization of raw upstream payloads into it.
package record

// Raw is a single record as received from upstream: arbitrary key names,
// possibly-missing fields, null values. No schema is guaranteed; different
// upstream deployments use different synonyms for the same logical field.
type Raw map[string]any

// Record is the canonical shape every downstream component operates on.
// It is always derivable from a Raw by Normalize, which never fails:
// missing or malformed fields degrade to the zero defaults below.
type Record struct {
	// DisbursalDate is a "YYYY-MM-DD" string. The upstream already scopes
	// results to the requested window, so it is passed through untouched.
	DisbursalDate string

	// FullName defaults to "N/A" when no name synonym is present.
	FullName string

	SanctionAmount  float64
	DisbursedAmount float64
	ProcessingFee   float64
	InterestAmount  float64
	RepaymentAmount float64

	// State and City default to "" when absent; the breakdown projection
	// renders an empty group name as "Unknown".
	State string
	City  string

	// Tenure is the loan tenure in months.
	Tenure int

	IsReloanCase bool
	IsLeadClosed bool
}

// defaultFullName is used when every name synonym is absent.
const defaultFullName = "N/A"
