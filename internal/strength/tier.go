// Package strength classifies passwords into ordered strength tiers using
// length and character-class variety.
package strength

import (
	"errors"
	"fmt"
)

// Tier is a strength classification, ordered weakest to strongest.
type Tier int

const (
	Weak Tier = iota
	Medium
	Strong
	VeryStrong
)

var ErrUnknownTier = errors.New("unknown strength tier")

var tierNames = [...]string{"weak", "medium", "strong", "very-strong"}

var tierLabels = [...]string{"Weak", "Medium", "Strong", "Very Strong"}

// Tiers lists every tier in ascending order.
func Tiers() []Tier {
	return []Tier{Weak, Medium, Strong, VeryStrong}
}

func (t Tier) valid() bool {
	return t >= Weak && t <= VeryStrong
}

// String returns the wire name: weak, medium, strong or very-strong.
func (t Tier) String() string {
	if !t.valid() {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// Label returns the display label, e.g. "Very Strong".
func (t Tier) Label() string {
	if !t.valid() {
		return "No Password"
	}
	return tierLabels[t]
}

// Percent is the strength meter fill for the tier.
func (t Tier) Percent() int {
	if !t.valid() {
		return 0
	}
	return (int(t) + 1) * 25
}

// ParseTier parses a wire name.
func ParseTier(s string) (Tier, error) {
	for i, name := range tierNames {
		if name == s {
			return Tier(i), nil
		}
	}
	return Weak, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

func (t Tier) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, int(t))
	}
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
