package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption configures a build before any constructor runs.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved configuration shared by all constructors of
// one BuildGraph call.
type builderConfig struct {
	idFn          IDFn       // index → vertex ID
	weightFn      WeightFn   // weight of each generated arc
	rng           *rand.Rand // nil unless WithSeed/WithRand
	bidirectional bool       // pair each arc with its reverse
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// weight draws the next arc weight.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }

// WithIDScheme sets the vertex-ID scheme. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithSymbolIDs is shorthand for WithIDScheme(SymbolIDFn).
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs is shorthand for WithIDScheme(ExcelColumnIDFn).
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithRand sets the random source used by stochastic constructors and weight
// functions. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a fresh random source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the arc-weight distribution. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithConstantWeight is shorthand for WithWeightFn(ConstantWeightFn(w)).
// Panics if w is negative or NaN.
func WithConstantWeight(w float64) BuilderOption {
	if !(w >= 0) {
		panic(fmt.Sprintf("builder: WithConstantWeight(%g)", w))
	}

	return WithWeightFn(ConstantWeightFn(w))
}

// WithBidirectional pairs every generated arc u→v with v→u of equal weight.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) { c.bidirectional = true }
}
