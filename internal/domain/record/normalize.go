package record

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Synonym tables: for each logical field, the upstream keys tried in order.
// First present, non-nil value wins. Extend these lists when a new upstream
// deployment shows up with yet another spelling.
var (
	dateKeys      = []string{"disbursal_date", "disbursement_date", "disbursalDate", "disb_date"}
	nameKeys      = []string{"full_name", "fullName", "customer_name", "name"}
	sanctionKeys  = []string{"sanction_amount", "sanctioned_amount", "sanctionAmount", "sanction_amt"}
	disbursedKeys = []string{"disbursed_amount", "disbursal_amt", "disbursalAmount", "disbursement_amount"}
	pfKeys        = []string{"processing_fee", "pf_amount", "processingFee", "pf"}
	interestKeys  = []string{"interest_amount", "interestAmount", "interest_amt"}
	repaymentKeys = []string{"repayment_amount", "repaymentAmount", "total_repayment"}
	stateKeys     = []string{"state", "customer_state", "state_name"}
	cityKeys      = []string{"city", "customer_city", "city_name"}
	tenureKeys    = []string{"tenure", "tenure_months", "loan_tenure"}
	reloanKeys    = []string{"is_reloan_case", "reloan_case", "is_reloan", "reloan"}
	closedKeys    = []string{"is_lead_closed", "lead_closed", "is_closed"}
)

// Normalize maps a raw upstream record into the canonical Record. It is a
// pure, total function: it never fails, and every field whose synonyms are
// all absent (or unparseable) takes its documented default.
func Normalize(raw Raw) Record {
	return Record{
		DisbursalDate:   stringField(raw, dateKeys, ""),
		FullName:        stringField(raw, nameKeys, defaultFullName),
		SanctionAmount:  floatField(raw, sanctionKeys),
		DisbursedAmount: floatField(raw, disbursedKeys),
		ProcessingFee:   floatField(raw, pfKeys),
		InterestAmount:  floatField(raw, interestKeys),
		RepaymentAmount: floatField(raw, repaymentKeys),
		State:           stringField(raw, stateKeys, ""),
		City:            stringField(raw, cityKeys, ""),
		Tenure:          intField(raw, tenureKeys),
		IsReloanCase:    boolField(raw, reloanKeys),
		IsLeadClosed:    boolField(raw, closedKeys),
	}
}

// NormalizeAll maps a raw sequence into canonical records, preserving order.
func NormalizeAll(raws []Raw) []Record {
	out := make([]Record, len(raws))
	for i, raw := range raws {
		out[i] = Normalize(raw)
	}
	return out
}

// resolve returns the first present, non-nil value among the candidate keys.
func resolve(raw Raw, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(raw Raw, keys []string, def string) string {
	v, ok := resolve(raw, keys)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return def
	}
	return s
}

// floatField coerces the resolved value to float64. Coercion failure
// degrades to 0 rather than propagating an error: lossy but available.
func floatField(raw Raw, keys []string) float64 {
	v, ok := resolve(raw, keys)
	if !ok {
		return 0
	}
	return coerceFloat(v)
}

func intField(raw Raw, keys []string) int {
	v, ok := resolve(raw, keys)
	if !ok {
		return 0
	}
	return int(coerceFloat(v))
}

func boolField(raw Raw, keys []string) bool {
	v, ok := resolve(raw, keys)
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "yes":
			return true
		}
		return false
	default:
		return coerceFloat(v) != 0
	}
}

// coerceFloat handles the value types encoding/json can produce plus the
// ints that hand-built fixtures use. Anything else is 0.
func coerceFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
