package service

import (
	"io"
	"sync/atomic"

	"github.com/vaultpass/vaultpass-engine/internal/config"
	"github.com/vaultpass/vaultpass-engine/internal/crypto"
	"github.com/vaultpass/vaultpass-engine/internal/metrics"
	"github.com/vaultpass/vaultpass-engine/internal/strength"
)

// snapshot is an immutable view of the engine settings.
type snapshot struct {
	engine    config.Engine
	generator *crypto.Generator
	ruleset   *strength.Ruleset
}

// Runtime holds the active engine settings shared by the services. Settings
// are swapped atomically, so a reload never affects a request in flight.
type Runtime struct {
	src     io.Reader
	metrics *metrics.Registry
	current atomic.Pointer[snapshot]
}

// NewRuntime validates e and builds a Runtime. A nil src uses crypto/rand;
// a nil registry allocates a private one.
func NewRuntime(e config.Engine, src io.Reader, m *metrics.Registry) (*Runtime, error) {
	if m == nil {
		m = metrics.New()
	}
	rt := &Runtime{src: src, metrics: m}
	if err := rt.apply(e); err != nil {
		return nil, err
	}
	return rt, nil
}

// Reload replaces the settings. On error the previous settings stay active.
func (rt *Runtime) Reload(e config.Engine) error {
	if err := rt.apply(e); err != nil {
		return err
	}
	rt.metrics.ObserveConfigReload()
	return nil
}

func (rt *Runtime) apply(e config.Engine) error {
	if err := e.Validate(); err != nil {
		return err
	}
	ordering, _ := strength.ParseOrdering(e.Classifier.Ordering)
	rs, err := strength.RulesetFor(ordering)
	if err != nil {
		return err
	}

	var opts []crypto.GeneratorOption
	if e.Generator.RejectionSampling {
		opts = append(opts, crypto.WithRejectionSampling())
	}

	rt.current.Store(&snapshot{
		engine:    e,
		generator: crypto.NewGenerator(rt.src, opts...),
		ruleset:   rs,
	})
	return nil
}

// Engine returns the settings in effect.
func (rt *Runtime) Engine() config.Engine {
	return rt.current.Load().engine
}

// Metrics returns the registry the services record into.
func (rt *Runtime) Metrics() *metrics.Registry {
	return rt.metrics
}

func (rt *Runtime) load() *snapshot {
	return rt.current.Load()
}
