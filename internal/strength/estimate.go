package strength

import (
	"math"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// MaxEstimateLength bounds the input handed to the pattern matcher, whose
// cost grows quickly with length.
const MaxEstimateLength = 128

// Estimate is an advisory, pattern-aware opinion. It never changes the Tier.
type Estimate struct {
	Score       int     `json:"score"` // 0..4
	EntropyBits float64 `json:"entropy_bits"`
	CrackTime   string  `json:"crack_time"`
	// PoolBits is length * log2(pool) over the classes actually present.
	PoolBits float64 `json:"pool_bits"`
}

// EstimateStrength runs the dictionary and pattern matcher over password.
// hints are user-specific words (email, username) that weaken the result.
// ok is false when password is empty or longer than MaxEstimateLength.
func EstimateStrength(password string, hints []string) (Estimate, bool) {
	f := Analyze(password)
	if f.Length == 0 || f.Length > MaxEstimateLength {
		return Estimate{}, false
	}

	res := zxcvbn.PasswordStrength(password, hints)
	return Estimate{
		Score:       res.Score,
		EntropyBits: round2(res.Entropy),
		CrackTime:   res.CrackTimeDisplay,
		PoolBits:    round2(PoolEntropy(f)),
	}, true
}

// PoolEntropy is the brute-force search space, in bits, for a password with
// features f.
func PoolEntropy(f Features) float64 {
	pool := 0
	if f.Lower {
		pool += 26
	}
	if f.Upper {
		pool += 26
	}
	if f.Digit {
		pool += 10
	}
	if f.Symbol {
		pool += 26
	}
	if pool <= 1 || f.Length == 0 {
		return 0
	}
	return float64(f.Length) * math.Log2(float64(pool))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
