// Package flow: sentinel errors, result types, and functional options
// for the Edmonds–Karp engine.
package flow

import (
	"context"
	"errors"

	"github.com/YohanAvishke/Algorithms-coursework-sub001/matrix"
)

// Sentinel errors returned by the flow engine. Match with errors.Is.
var (
	// ErrNilMatrix indicates a nil capacity matrix was passed in.
	ErrNilMatrix = errors.New("flow: capacity matrix is nil")

	// ErrSourceOutOfRange indicates the source index is outside [0, N).
	ErrSourceOutOfRange = errors.New("flow: source index out of range")

	// ErrSinkOutOfRange indicates the sink index is outside [0, N).
	ErrSinkOutOfRange = errors.New("flow: sink index out of range")

	// ErrSourceIsSink indicates source == sink; a flow computation requires
	// distinct endpoints.
	ErrSourceIsSink = errors.New("flow: source equals sink")

	// ErrReplayMismatch indicates a recorded augmenting path does not fit
	// the residual state it is replayed against: an edge index out of range,
	// a non-positive bottleneck, or a bottleneck that disagrees with the
	// minimum residual capacity along the path.
	ErrReplayMismatch = errors.New("flow: augmenting path record does not fit residual state")
)

// noParent is the parent-vector sentinel for "not reached" (and for the
// source itself, which has no predecessor).
const noParent = -1

// Edge is one hop of an augmenting path, from node From to node To.
type Edge struct {
	From, To int
}

// AugmentingPath records one augmenting path at the moment it was found:
// its edges in source→sink order and the bottleneck flow pushed along it.
// Records are immutable once returned.
type AugmentingPath struct {
	Edges      []Edge
	Bottleneck int64
}

// Result is the outcome of a max-flow computation.
//
// Replaying Paths in order against a clone of the input capacity matrix
// (see Replay) reconstructs Residual exactly.
type Result struct {
	// MaxFlow is the total flow value from source to sink.
	MaxFlow int64

	// Paths holds every augmenting path in discovery order.
	Paths []AugmentingPath

	// Residual is the residual matrix after all augmentations; owned by the
	// caller once returned.
	Residual *matrix.Matrix
}

// Option configures the engine via functional arguments.
type Option func(*Options)

// Options holds engine parameters and callbacks.
type Options struct {
	// Ctx allows cancellation; checked once per augmentation.
	Ctx context.Context

	// OnAugment is called after each augmenting path is applied, with the
	// 1-based step number and the immutable path record. Useful for step
	// UIs and logging.
	OnAugment func(step int, p AugmentingPath)
}

// DefaultOptions returns production-safe defaults:
//   - context.Background()
//   - no-op OnAugment hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnAugment: func(int, AugmentingPath) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnAugment registers a callback invoked once per augmenting path,
// in discovery order.
func WithOnAugment(fn func(step int, p AugmentingPath)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}
