package strength

import (
	"errors"
	"fmt"
)

// Ordering names a rule precedence.
type Ordering string

const (
	// OrderingCompatible checks long-mixed before very-long-full, so a
	// password of 16+ runes using all four classes rates Strong. This is
	// the default and matches the historical results.
	OrderingCompatible Ordering = "compatible"
	// OrderingCorrected checks very-long-full first so such passwords rate
	// VeryStrong.
	OrderingCorrected Ordering = "corrected"
)

var ErrUnknownOrdering = errors.New("unknown rule ordering")

// ParseOrdering accepts "compatible", "corrected", or "" for the default.
func ParseOrdering(s string) (Ordering, error) {
	switch Ordering(s) {
	case "", OrderingCompatible:
		return OrderingCompatible, nil
	case OrderingCorrected:
		return OrderingCorrected, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrdering, s)
}

// Rule assigns Tier to every password whose features satisfy Match.
type Rule struct {
	Name  string
	Tier  Tier
	Match func(Features) bool
}

var (
	ruleEmpty = Rule{
		Name:  "empty",
		Tier:  Weak,
		Match: func(f Features) bool { return f.Length == 0 },
	}
	ruleTooShort = Rule{
		Name:  "too-short",
		Tier:  Weak,
		Match: func(f Features) bool { return f.Length < 8 },
	}
	ruleShortLowVariety = Rule{
		Name:  "short-low-variety",
		Tier:  Weak,
		Match: func(f Features) bool { return f.Length < 10 && f.Variety() < 3 },
	}
	ruleUnderTwelve = Rule{
		Name:  "under-twelve",
		Tier:  Medium,
		Match: func(f Features) bool { return f.Length < 12 && f.Variety() < 4 },
	}
	ruleLongMixed = Rule{
		Name:  "long-mixed",
		Tier:  Strong,
		Match: func(f Features) bool { return f.Length >= 12 && f.Variety() >= 3 },
	}
	ruleVeryLongFull = Rule{
		Name:  "very-long-full",
		Tier:  VeryStrong,
		Match: func(f Features) bool { return f.Length >= 16 && f.Variety() >= 4 },
	}
)

// FallbackRule is reported by Explain when no rule matches.
const FallbackRule = "fallback"

// Ruleset is an immutable, ordered decision list. The first matching rule
// wins; Fallback applies when none match.
type Ruleset struct {
	ordering Ordering
	rules    []Rule
	fallback Tier
}

var (
	compatible = &Ruleset{
		ordering: OrderingCompatible,
		rules: []Rule{
			ruleEmpty,
			ruleTooShort,
			ruleShortLowVariety,
			ruleUnderTwelve,
			ruleLongMixed,
			ruleVeryLongFull,
		},
		fallback: Medium,
	}
	corrected = &Ruleset{
		ordering: OrderingCorrected,
		rules: []Rule{
			ruleEmpty,
			ruleTooShort,
			ruleShortLowVariety,
			ruleUnderTwelve,
			ruleVeryLongFull,
			ruleLongMixed,
		},
		fallback: Medium,
	}
)

// Default returns the compatible ruleset.
func Default() *Ruleset {
	return compatible
}

// RulesetFor returns the ruleset for o.
func RulesetFor(o Ordering) (*Ruleset, error) {
	switch o {
	case "", OrderingCompatible:
		return compatible, nil
	case OrderingCorrected:
		return corrected, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOrdering, o)
}

// Ordering returns the precedence this ruleset was built with.
func (rs *Ruleset) Ordering() Ordering {
	return rs.ordering
}

// Rules returns a copy of the decision list in evaluation order.
func (rs *Ruleset) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Fallback is the tier used when no rule matches.
func (rs *Ruleset) Fallback() Tier {
	return rs.fallback
}

// Verdict explains a classification.
type Verdict struct {
	Tier     Tier
	Rule     string
	Features Features
}

// Explain classifies password and reports which rule decided it.
func (rs *Ruleset) Explain(password string) Verdict {
	f := Analyze(password)
	for _, r := range rs.rules {
		if r.Match(f) {
			return Verdict{Tier: r.Tier, Rule: r.Name, Features: f}
		}
	}
	return Verdict{Tier: rs.fallback, Rule: FallbackRule, Features: f}
}

// Classify returns the tier for password.
func (rs *Ruleset) Classify(password string) Tier {
	return rs.Explain(password).Tier
}

// Classify rates password with the default ruleset.
func Classify(password string) Tier {
	return compatible.Classify(password)
}
