package model

import "github.com/vaultpass/vaultpass-engine/internal/strength"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> configured default) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse carries the generated password and its classification.
type GenerateResponse struct {
	Password string        `json:"password"`
	Length   int           `json:"length"`
	Strength strength.Tier `json:"strength"`
	Label    string        `json:"label"`
	Score    int           `json:"score"`
}

// PolicyResponse describes the generator settings currently in effect.
type PolicyResponse struct {
	Defaults          PolicyDefaults `json:"defaults"`
	MinLength         int            `json:"min_length"`
	MaxLength         int            `json:"max_length"`
	RejectionSampling bool           `json:"rejection_sampling"`
	SymbolSet         string         `json:"symbol_set"`
	Ordering          string         `json:"ordering"`
}

type PolicyDefaults struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Numbers   bool `json:"numbers"`
	Symbols   bool `json:"symbols"`
}
