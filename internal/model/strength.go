package model

import "github.com/vaultpass/vaultpass-engine/internal/strength"

// StrengthRequest asks for the classification of a password. Hints are
// user-specific words such as an email or username.
type StrengthRequest struct {
	Password string   `json:"password"`
	Hints    []string `json:"hints,omitempty"`
}

// StrengthResponse is the classification result. Estimate is advisory and
// absent when disabled or when the password is empty or very long.
type StrengthResponse struct {
	Strength strength.Tier      `json:"strength"`
	Label    string             `json:"label"`
	Score    int                `json:"score"`
	Length   int                `json:"length"`
	Variety  int                `json:"variety"`
	Rule     string             `json:"rule"`
	Ordering string             `json:"ordering"`
	Estimate *strength.Estimate `json:"estimate,omitempty"`
}

// RulesResponse lists the active decision table in evaluation order.
type RulesResponse struct {
	Ordering string         `json:"ordering"`
	Rules    []RuleResponse `json:"rules"`
	Fallback strength.Tier  `json:"fallback"`
}

type RuleResponse struct {
	Name string        `json:"name"`
	Tier strength.Tier `json:"tier"`
}
