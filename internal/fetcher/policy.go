package fetcher

import "fmt"

// Policy decides what happens when searches overlap.
type Policy string

const (
	// PolicyDiscardStale applies only the completion of the latest request.
	PolicyDiscardStale Policy = "discard-stale"
	// PolicyIgnoreWhileLoading drops triggers while a lookup is pending.
	PolicyIgnoreWhileLoading Policy = "ignore-while-loading"
	// PolicyLastCompletionWins applies every completion in arrival order.
	PolicyLastCompletionWins Policy = "last-completion-wins"
)

// DefaultPolicy is used when no policy is configured.
const DefaultPolicy = PolicyDiscardStale

// Policies lists the accepted policy names.
func Policies() []Policy {
	return []Policy{PolicyDiscardStale, PolicyIgnoreWhileLoading, PolicyLastCompletionWins}
}

// ParsePolicy validates s. An empty string yields DefaultPolicy.
func ParsePolicy(s string) (Policy, error) {
	if s == "" {
		return DefaultPolicy, nil
	}
	for _, p := range Policies() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown overlap policy %q (expected one of %v)", s, Policies())
}
