package checkout

// Status tracks how far a checkout attempt has progressed.
type Status string

const (
	StatusValidating     Status = "VALIDATING"
	StatusPricing        Status = "PRICING"
	StatusSolvencyCheck  Status = "SOLVENCY_CHECK"
	StatusShippingNotice Status = "SHIPPING_NOTICE"
	StatusSettling       Status = "SETTLING"
	StatusCleared        Status = "CLEARED"
	StatusRejected       Status = "REJECTED"
)

func (s Status) IsTerminal() bool {
	return s == StatusCleared || s == StatusRejected
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo reports whether moving from s to next follows the checkout
// pipeline. Rejection is only reachable from validation and the solvency
// check; nothing has been mutated at those points.
func CanTransitionTo(s, next Status) bool {
	switch s {
	case StatusValidating:
		return next == StatusPricing || next == StatusRejected
	case StatusPricing:
		return next == StatusSolvencyCheck
	case StatusSolvencyCheck:
		return next == StatusShippingNotice || next == StatusRejected
	case StatusShippingNotice:
		return next == StatusSettling
	case StatusSettling:
		return next == StatusCleared
	default:
		return false
	}
}
