package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	MinLength     = 8
	MaxLength     = 128
	DefaultLength = 16
)

// ErrEntropyUnavailable is returned when the random source cannot supply bytes.
// It is the only failure Generate can produce.
var ErrEntropyUnavailable = errors.New("secure random source unavailable")

// Policy selects the output length and which character classes feed the alphabet.
type Policy struct {
	Length    int  `json:"length" yaml:"length"`
	Uppercase bool `json:"uppercase" yaml:"uppercase"`
	Lowercase bool `json:"lowercase" yaml:"lowercase"`
	Numbers   bool `json:"numbers" yaml:"numbers"`
	Symbols   bool `json:"symbols" yaml:"symbols"`
}

// DefaultPolicy returns 16 characters with all classes enabled.
func DefaultPolicy() Policy {
	return Policy{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Classes returns the number of enabled character classes.
func (p Policy) Classes() int {
	n := 0
	for _, on := range []bool{p.Lowercase, p.Uppercase, p.Numbers, p.Symbols} {
		if on {
			n++
		}
	}
	return n
}

// Alphabet returns the sampling alphabet for p: lowercase, uppercase, digits
// and symbols, in that order, for each enabled class.
func Alphabet(p Policy) string {
	var b strings.Builder
	if p.Lowercase {
		b.WriteString(lowercaseChars)
	}
	if p.Uppercase {
		b.WriteString(uppercaseChars)
	}
	if p.Numbers {
		b.WriteString(numberChars)
	}
	if p.Symbols {
		b.WriteString(symbolChars)
	}
	return b.String()
}

// SymbolSet returns the fixed symbol class.
func SymbolSet() string {
	return symbolChars
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRejectionSampling discards random bytes that would bias the modulo
// mapping toward the start of the alphabet.
func WithRejectionSampling() GeneratorOption {
	return func(g *Generator) {
		g.unbiased = true
	}
}

// Generator draws passwords from a random byte source.
type Generator struct {
	src      io.Reader
	unbiased bool
}

// NewGenerator creates a Generator reading from src. A nil src uses crypto/rand.
func NewGenerator(src io.Reader, opts ...GeneratorOption) *Generator {
	if src == nil {
		src = rand.Reader
	}
	g := &Generator{src: src}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Unbiased reports whether rejection sampling is enabled.
func (g *Generator) Unbiased() bool {
	return g.unbiased
}

// Generate returns a password of exactly p.Length characters drawn from
// Alphabet(p). An empty alphabet or a non-positive length yields "".
func (g *Generator) Generate(p Policy) (string, error) {
	alphabet := Alphabet(p)
	if alphabet == "" || p.Length <= 0 {
		return "", nil
	}

	if g.unbiased {
		return g.generateUnbiased(alphabet, p.Length)
	}

	buf := make([]byte, p.Length)
	if _, err := io.ReadFull(g.src, buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	n := byte(len(alphabet))
	for i, b := range buf {
		buf[i] = alphabet[b%n]
	}
	return string(buf), nil
}

// generateUnbiased accepts only bytes below the largest multiple of
// len(alphabet) that fits in a byte.
func (g *Generator) generateUnbiased(alphabet string, length int) (string, error) {
	n := len(alphabet)
	limit := 256 - 256%n

	out := make([]byte, 0, length)
	chunk := make([]byte, length)
	for len(out) < length {
		need := chunk[:length-len(out)]
		if _, err := io.ReadFull(g.src, need); err != nil {
			return "", fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
		}
		for _, b := range need {
			if int(b) < limit {
				out = append(out, alphabet[int(b)%n])
			}
		}
	}
	return string(out), nil
}
