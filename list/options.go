package list

import "fmt"

// Policy decides what Append does when the list is full.
type Policy uint8

const (
	// Reject refuses the element and returns status.ErrCapacityExceeded.
	Reject Policy = iota
	// DropNewest silently discards the element.
	DropNewest
	// ReplaceOldest evicts the first element to make room.
	ReplaceOldest
)

var policyNames = [...]string{
	Reject:        "reject",
	DropNewest:    "drop-newest",
	ReplaceOldest: "replace-oldest",
}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("Policy(%d)", p)
}

// ParsePolicy maps a policy name as printed by String back to a Policy.
func ParsePolicy(s string) (Policy, error) {
	for i, name := range policyNames {
		if name == s {
			return Policy(i), nil
		}
	}
	return Reject, fmt.Errorf("list: unknown overflow policy %q", s)
}

// Option configures New and NewIn.
type Option func(*options)

type options struct {
	policy Policy
}

// WithPolicy sets the overflow policy. The default is Reject.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
