package strength

import "unicode/utf8"

// Features are the classifier inputs derived from a password.
type Features struct {
	// Length is the number of runes, not bytes.
	Length int  `json:"length"`
	Upper  bool `json:"upper"`
	Lower  bool `json:"lower"`
	Digit  bool `json:"digit"`
	// Symbol is set by any rune outside ASCII letters and digits, including
	// non-ASCII letters.
	Symbol bool `json:"symbol"`
}

// Variety counts the character classes present, 0 to 4.
func (f Features) Variety() int {
	n := 0
	for _, has := range []bool{f.Upper, f.Lower, f.Digit, f.Symbol} {
		if has {
			n++
		}
	}
	return n
}

// Analyze extracts Features from password.
func Analyze(password string) Features {
	f := Features{Length: utf8.RuneCountInString(password)}
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			f.Lower = true
		case r >= 'A' && r <= 'Z':
			f.Upper = true
		case r >= '0' && r <= '9':
			f.Digit = true
		default:
			f.Symbol = true
		}
	}
	return f
}
