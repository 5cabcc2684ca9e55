package service

import (
	"github.com/vaultpass/vaultpass-engine/internal/model"
	"github.com/vaultpass/vaultpass-engine/internal/strength"
)

// StrengthService classifies passwords with the configured ruleset.
type StrengthService struct {
	rt *Runtime
}

// NewStrengthService creates a new StrengthService.
func NewStrengthService(rt *Runtime) *StrengthService {
	return &StrengthService{rt: rt}
}

// Check classifies req.Password. Every string, including the empty one, has
// a tier, so Check cannot fail.
func (s *StrengthService) Check(req model.StrengthRequest) model.StrengthResponse {
	snap := s.rt.load()
	v := snap.ruleset.Explain(req.Password)
	s.rt.metrics.ObserveCheck(v.Tier)

	resp := model.StrengthResponse{
		Strength: v.Tier,
		Label:    v.Tier.Label(),
		Score:    v.Tier.Percent(),
		Length:   v.Features.Length,
		Variety:  v.Features.Variety(),
		Rule:     v.Rule,
		Ordering: string(snap.ruleset.Ordering()),
	}

	if snap.engine.Classifier.Advisory {
		if est, ok := strength.EstimateStrength(req.Password, req.Hints); ok {
			resp.Estimate = &est
		}
	}
	return resp
}

// Rules returns the active decision table.
func (s *StrengthService) Rules() model.RulesResponse {
	rs := s.rt.load().ruleset
	resp := model.RulesResponse{
		Ordering: string(rs.Ordering()),
		Fallback: rs.Fallback(),
	}
	for _, r := range rs.Rules() {
		resp.Rules = append(resp.Rules, model.RuleResponse{Name: r.Name, Tier: r.Tier})
	}
	return resp
}
