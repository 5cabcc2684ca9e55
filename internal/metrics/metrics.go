// Package metrics keeps engine counters and renders them in the Prometheus
// text exposition format.
package metrics

import (
	"io"
	"sync/atomic"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/vaultpass/vaultpass-engine/internal/strength"
)

const namespace = "vaultpass_"

// Registry holds the engine counters. The zero value is ready to use and
// safe for concurrent use.
type Registry struct {
	generated     atomic.Uint64
	characters    atomic.Uint64
	genFailures   atomic.Uint64
	configReloads atomic.Uint64
	checks        [4]atomic.Uint64 // indexed by strength.Tier
}

func New() *Registry {
	return &Registry{}
}

// ObserveGenerated records one generated password of n characters.
func (r *Registry) ObserveGenerated(n int) {
	r.generated.Add(1)
	if n > 0 {
		r.characters.Add(uint64(n))
	}
}

func (r *Registry) ObserveGenerationFailure() {
	r.genFailures.Add(1)
}

// ObserveCheck records one classification result.
func (r *Registry) ObserveCheck(t strength.Tier) {
	if t < strength.Weak || t > strength.VeryStrong {
		return
	}
	r.checks[t].Add(1)
}

func (r *Registry) ObserveConfigReload() {
	r.configReloads.Add(1)
}

// Generated returns the number of passwords generated so far.
func (r *Registry) Generated() uint64 {
	return r.generated.Load()
}

// Checks returns the number of classifications that produced t.
func (r *Registry) Checks(t strength.Tier) uint64 {
	if t < strength.Weak || t > strength.VeryStrong {
		return 0
	}
	return r.checks[t].Load()
}

// Families snapshots the counters as metric families.
func (r *Registry) Families() []*dto.MetricFamily {
	checks := &dto.MetricFamily{
		Name: ptr(namespace + "strength_checks_total"),
		Help: ptr("Passwords classified, by resulting tier."),
		Type: dto.MetricType_COUNTER.Enum(),
	}
	for _, t := range strength.Tiers() {
		checks.Metric = append(checks.Metric, &dto.Metric{
			Label:   []*dto.LabelPair{{Name: ptr("tier"), Value: ptr(t.String())}},
			Counter: &dto.Counter{Value: ptr(float64(r.checks[t].Load()))},
		})
	}

	return []*dto.MetricFamily{
		counter("passwords_generated_total", "Passwords generated.", r.generated.Load()),
		counter("generated_characters_total", "Characters emitted across all generated passwords.", r.characters.Load()),
		counter("generation_failures_total", "Generation attempts that failed for lack of entropy.", r.genFailures.Load()),
		checks,
		counter("config_reloads_total", "Engine settings reloaded from disk.", r.configReloads.Load()),
	}
}

// WriteText writes every family in text exposition format.
func (r *Registry) WriteText(w io.Writer) error {
	for _, mf := range r.Families() {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func counter(name, help string, v uint64) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: ptr(namespace + name),
		Help: ptr(help),
		Type: dto.MetricType_COUNTER.Enum(),
		Metric: []*dto.Metric{
			{Counter: &dto.Counter{Value: ptr(float64(v))}},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
