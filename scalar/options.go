// SPDX-License-Identifier: MIT

package scalar

import "math"

// DefaultEpsilon is the absolute and relative tolerance used by Equal.
// It is coarse: elimination kernels rely on it to recognise
// round-off residue as zero.
const DefaultEpsilon = 1e-6

const panicEpsilonInvalid = "scalar: WithEpsilon: eps must be finite, non-negative"

// Option configures an algebra constructor.
type Option func(*Options)

// Options holds the resolved configuration of an algebra.
type Options struct {
	eps float64
}

// WithEpsilon sets the tolerance used by Equal.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
