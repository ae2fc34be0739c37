package payment

import "fmt"

const (
	PolicyLatest = "latest"
	PolicyStrict = "strict"
)

// TransitionPolicy decides whether a reconciled status may overwrite the
// stored one.
type TransitionPolicy interface {
	Allow(from, to OrderStatus) bool
}

type TransitionPolicyFunc func(from, to OrderStatus) bool

func (f TransitionPolicyFunc) Allow(from, to OrderStatus) bool {
	return f(from, to)
}

// LatestStatusPolicy applies whatever the gateway reported last, including
// PAID back to PENDING_PAYMENT.
var LatestStatusPolicy = TransitionPolicyFunc(func(from, to OrderStatus) bool {
	return true
})

// NoPaidDowngradePolicy keeps a PAID order PAID.
var NoPaidDowngradePolicy = TransitionPolicyFunc(func(from, to OrderStatus) bool {
	return from != StatusPaid || to == StatusPaid
})

func PolicyByName(name string) (TransitionPolicy, error) {
	switch name {
	case "", PolicyLatest:
		return LatestStatusPolicy, nil
	case PolicyStrict:
		return NoPaidDowngradePolicy, nil
	}

	return nil, fmt.Errorf("unknown payment transition policy %q", name)
}
