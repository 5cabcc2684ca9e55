package service

import (
	"log/slog"

	"github.com/vaultpass/vaultpass-engine/internal/crypto"
	"github.com/vaultpass/vaultpass-engine/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	rt *Runtime
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(rt *Runtime) *GeneratorService {
	return &GeneratorService{rt: rt}
}

// Generate produces a password based on the given request. Unset fields take
// the configured defaults; the resulting policy must pass validation.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	snap := s.rt.load()
	gen := snap.engine.Generator

	policy := crypto.Policy{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, gen.Defaults.Uppercase),
		Lowercase: boolOrDefault(req.Lowercase, gen.Defaults.Lowercase),
		Numbers:   boolOrDefault(req.Numbers, gen.Defaults.Numbers),
		Symbols:   boolOrDefault(req.Symbols, gen.Defaults.Symbols),
	}
	if policy.Length == 0 {
		policy.Length = gen.Defaults.Length
	}

	if err := policy.Validate(gen.MinLength, gen.MaxLength); err != nil {
		return model.GenerateResponse{}, err
	}

	password, err := snap.generator.Generate(policy)
	if err != nil {
		s.rt.metrics.ObserveGenerationFailure()
		slog.Error("password generation failed", "error", err)
		return model.GenerateResponse{}, err
	}
	s.rt.metrics.ObserveGenerated(len(password))

	tier := snap.ruleset.Classify(password)
	s.rt.metrics.ObserveCheck(tier)

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: tier,
		Label:    tier.Label(),
		Score:    tier.Percent(),
	}, nil
}

// Policy reports the generator settings in effect.
func (s *GeneratorService) Policy() model.PolicyResponse {
	e := s.rt.load().engine
	d := e.Generator.Defaults
	return model.PolicyResponse{
		Defaults: model.PolicyDefaults{
			Length:    d.Length,
			Uppercase: d.Uppercase,
			Lowercase: d.Lowercase,
			Numbers:   d.Numbers,
			Symbols:   d.Symbols,
		},
		MinLength:         e.Generator.MinLength,
		MaxLength:         e.Generator.MaxLength,
		RejectionSampling: e.Generator.RejectionSampling,
		SymbolSet:         crypto.SymbolSet(),
		Ordering:          e.Classifier.Ordering,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
