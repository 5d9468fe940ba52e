package resonator

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"

	"cpw/maths"
	"cpw/types"
)

type options struct {
	tolerance     float64
	maxIterations int
}

// Option 自洽迭代选项
type Option func(*options)

// WithTolerance 相对收敛容差
func WithTolerance(tol float64) Option { return func(o *options) { o.tolerance = tol } }

// WithMaxIterations 最大迭代次数
func WithMaxIterations(n int) Option { return func(o *options) { o.maxIterations = n } }

// ResonanceFrequencySelfConsistent 自洽谐振角频率。
// 从传输线谐振频率出发迭代 w ← (L_n·(C + C_in(w) + C_out(w)))^(-1/2)，
// 直到所有元素的相对变化小于容差。
func (r *Resonator) ResonanceFrequencySelfConsistent(n int, opts ...Option) (maths.Vector, error) {
	o := options{tolerance: types.Tolerance, maxIterations: types.MaxIterations}
	for _, opt := range opts {
		opt(&o)
	}
	w, err := r.line.ResonanceFrequency(n)
	if err != nil {
		return nil, err
	}
	for iter := 0; iter < o.maxIterations; iter++ {
		next, err := r.loaded(n, w)
		if err != nil {
			return nil, err
		}
		if converged(w, next, o.tolerance) {
			return next, nil
		}
		w = next
	}
	return nil, fmt.Errorf("mode %d after %d iterations: %w", n, o.maxIterations, types.ErrNotConverged)
}

func converged(prev, next maths.Vector, tol float64) bool {
	for i := range next {
		if !scalar.EqualWithinRel(prev.At(i), next[i], tol) {
			return false
		}
	}
	return true
}
