package inspect

import (
	"log/slog"
	"math/rand"

	"github.com/aretw0/figure/pkg/registry"
)

// DefaultName is used for the root node when the caller supplies no name.
const DefaultName = "unnamed_variable"

// DefaultSampleSize is the maximum number of elements inspected per
// container before sampling kicks in.
const DefaultSampleSize = 100

// Options configures a traversal. The zero value is usable; zero fields
// fall back to the defaults documented per field.
type Options struct {
	// DepthLimits caps recursion per category. A category with no entry
	// gets a dynamic limit derived from container size. Default: 5 for
	// each of Mapping, Sequence, TupleLike and SetLike.
	DepthLimits map[Category]int

	// IncludeReserved includes unexported struct fields and members whose
	// name starts with an underscore. Default: excluded.
	IncludeReserved bool

	// SampleSize is the maximum element count processed per container;
	// larger containers are uniformly sampled down to exactly this many
	// elements. Default: DefaultSampleSize.
	SampleSize int

	// Rand is the source used for sampling. Nil uses the process-wide
	// source; inject a seeded source for reproducible samples.
	Rand *rand.Rand

	// Renderers is the custom renderer registry consulted on every node.
	// Nil uses registry.Default().
	Renderers *registry.Registry

	// Logger receives the single error-level record emitted when the root
	// failure boundary catches a panic. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultDepthLimits returns the built-in per-category depth limits.
func DefaultDepthLimits() map[Category]int {
	return map[Category]int{
		Mapping:   5,
		Sequence:  5,
		TupleLike: 5,
		SetLike:   5,
	}
}

// withDefaults resolves zero fields without mutating the receiver.
func (o Options) withDefaults() Options {
	if o.DepthLimits == nil {
		o.DepthLimits = DefaultDepthLimits()
	}
	if o.SampleSize <= 0 {
		o.SampleSize = DefaultSampleSize
	}
	if o.Renderers == nil {
		o.Renderers = registry.Default()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
