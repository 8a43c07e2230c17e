package adaptive

// TriggerPolicy decides when a new analysis pass is warranted. Analysis
// costs an LLM round trip, so it runs on a fixed cadence rather than on
// every turn.
type TriggerPolicy struct {
	// MinUserTurns is the minimum number of user-authored turns before
	// any analysis runs.
	MinUserTurns int

	// Interval triggers analysis on every Nth user turn.
	Interval int
}

// DefaultTriggerPolicy returns the standard cadence: analyze from the 3rd
// user turn onward, on every 5th turn. The constants carry over from the
// original product tuning.
func DefaultTriggerPolicy() TriggerPolicy {
	return TriggerPolicy{
		MinUserTurns: 3,
		Interval:     5,
	}
}

// ShouldAnalyze reports whether an analysis pass should run now, given
// the count of user-authored turns so far. Pure and deterministic; it is
// re-evaluated on every turn.
func (p TriggerPolicy) ShouldAnalyze(userTurnCount int) bool {
	if p.Interval <= 0 {
		return false
	}
	return userTurnCount >= p.MinUserTurns && userTurnCount%p.Interval == 0
}
