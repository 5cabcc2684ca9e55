package strength

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestTierPresentation(t *testing.T) {
	tests := []struct {
		tier    Tier
		name    string
		label   string
		percent int
	}{
		{Weak, "weak", "Weak", 25},
		{Medium, "medium", "Medium", 50},
		{Strong, "strong", "Strong", 75},
		{VeryStrong, "very-strong", "Very Strong", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tier.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.tier.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
			if got := tt.tier.Percent(); got != tt.percent {
				t.Errorf("Percent() = %d, want %d", got, tt.percent)
			}
			parsed, err := ParseTier(tt.name)
			if err != nil || parsed != tt.tier {
				t.Errorf("ParseTier(%q) = %v, %v", tt.name, parsed, err)
			}
		})
	}
}

func TestTierOrdering(t *testing.T) {
	tiers := Tiers()
	for i := 1; i < len(tiers); i++ {
		if tiers[i-1] >= tiers[i] {
			t.Errorf("tier %v should be weaker than %v", tiers[i-1], tiers[i])
		}
	}
}

func TestTierJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Tier{"strength": VeryStrong})
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if string(data) != `{"strength":"very-strong"}` {
		t.Errorf("Marshal() = %s", data)
	}

	var out struct {
		Strength Tier `json:"strength"`
	}
	if err := json.Unmarshal([]byte(`{"strength":"medium"}`), &out); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if out.Strength != Medium {
		t.Errorf("Unmarshal() = %v, want %v", out.Strength, Medium)
	}

	err = json.Unmarshal([]byte(`{"strength":"unbreakable"}`), &out)
	if !errors.Is(err, ErrUnknownTier) {
		t.Errorf("Unmarshal() error = %v, want %v", err, ErrUnknownTier)
	}
}

func TestInvalidTier(t *testing.T) {
	bad := Tier(9)
	if bad.Label() != "No Password" {
		t.Errorf("Label() = %q", bad.Label())
	}
	if bad.Percent() != 0 {
		t.Errorf("Percent() = %d", bad.Percent())
	}
	if _, err := bad.MarshalText(); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("MarshalText() error = %v, want %v", err, ErrUnknownTier)
	}
}
