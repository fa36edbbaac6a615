package value

// Verdict классифицирует сделку по денежному потоку и доходности.
type Verdict string

const (
	VerdictAvoid     Verdict = "AVOID"
	VerdictMarginal  Verdict = "MARGINAL"
	VerdictGood      Verdict = "GOOD"
	VerdictExcellent Verdict = "EXCELLENT"
)

func (v Verdict) String() string {
	return string(v)
}

// Reason returns the fixed explanation shown next to the verdict.
func (v Verdict) Reason() string {
	switch v {
	case VerdictAvoid:
		return "negative cash flow"
	case VerdictMarginal:
		return "low returns"
	case VerdictExcellent:
		return "meets 1% rule, strong cash flow"
	case VerdictGood:
		return "positive cash flow, decent investment"
	default:
		return ""
	}
}

// Color is a display hint.
func (v Verdict) Color() string {
	switch v {
	case VerdictAvoid:
		return "red"
	case VerdictMarginal:
		return "yellow"
	case VerdictExcellent:
		return "green"
	case VerdictGood:
		return "blue"
	default:
		return ""
	}
}

func (v Verdict) Valid() bool {
	switch v {
	case VerdictAvoid, VerdictMarginal, VerdictGood, VerdictExcellent:
		return true
	default:
		return false
	}
}
