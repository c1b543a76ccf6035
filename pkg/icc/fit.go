/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package icc

import "math"

// FitOptions tunes the transfer-function fitter of spec.md §4.7.
type FitOptions struct {
	// Samples is the number of evenly spaced points in [0,1] the source
	// curve is evaluated at before fitting.
	Samples int
	// MaxIterations bounds the Gauss-Newton refinement of the
	// exponential segment's coefficients for a single breakpoint
	// candidate.
	MaxIterations int
	// Tolerance is the maximum absolute error, across all samples, below
	// which a fit is reported converged.
	Tolerance float64
}

// DefaultFitOptions returns the tuning this package falls back to when
// no configuration overrides it.
func DefaultFitOptions() FitOptions {
	return FitOptions{Samples: 256, MaxIterations: 50, Tolerance: 1e-4}
}

// Approximate fits a seven-coefficient parametric Curve to curve,
// sampled at opts.Samples points. It sweeps the breakpoint d across the
// sample grid, fitting the linear segment below d by ordinary least
// squares and the exponential segment at or above d by Gauss-Newton,
// and keeps whichever breakpoint yields the lowest maximum absolute
// error. It reports that maximum absolute error and whether it falls
// within opts.Tolerance.
func Approximate(curve Curve, opts FitOptions) (Curve, float64, bool) {
	if opts.Samples < 2 {
		opts.Samples = 2
	}
	xs := make([]float64, opts.Samples)
	ys := make([]float64, opts.Samples)
	for i := range xs {
		x := float64(i) / float64(opts.Samples-1)
		xs[i] = x
		ys[i] = curve.Evaluate(x)
	}

	var best Curve
	bestErr := math.Inf(1)
	found := false

	for _, d := range xs {
		c, maxErr, ok := fitWithBreakpoint(xs, ys, d, opts.MaxIterations)
		if !ok {
			continue
		}
		if !found || maxErr < bestErr {
			best, bestErr, found = c, maxErr, true
		}
	}

	if !found {
		return Curve{}, math.Inf(1), false
	}
	return best, bestErr, bestErr <= opts.Tolerance
}

func fitWithBreakpoint(xs, ys []float64, d float64, maxIter int) (Curve, float64, bool) {
	var linX, linY, expX, expY []float64
	for i, x := range xs {
		if x < d {
			linX = append(linX, x)
			linY = append(linY, ys[i])
		} else {
			expX = append(expX, x)
			expY = append(expY, ys[i])
		}
	}
	if len(expX) < 4 {
		return Curve{}, 0, false
	}

	c, f := fitLinearOLS(linX, linY)
	a, b, g, e, ok := fitExponentialGN(expX, expY, maxIter)
	if !ok {
		return Curve{}, 0, false
	}

	fitted := Curve{Kind: CurveParametric, G: g, A: a, B: b, C: c, D: d, E: e, F: f}
	maxErr := maxAbsErrorOver(xs, ys, fitted)
	return fitted, maxErr, true
}

// fitLinearOLS solves the normal equations for y = c*x + f. With fewer
// than two points it returns a flat line through the single available
// value, or the zero line when there are none.
func fitLinearOLS(xs, ys []float64) (c, f float64) {
	n := float64(len(xs))
	if n == 0 {
		return 0, 0
	}
	if n == 1 {
		return 0, ys[0]
	}
	var sx, sy, sxx, sxy float64
	for i := range xs {
		sx += xs[i]
		sy += ys[i]
		sxx += xs[i] * xs[i]
		sxy += xs[i] * ys[i]
	}
	denom := n*sxx - sx*sx
	if denom == 0 {
		return 0, sy / n
	}
	c = (n*sxy - sx*sy) / denom
	f = (sy - c*sx) / n
	return c, f
}

// fitExponentialGN fits y = (a*x+b)^g + e by Gauss-Newton, starting from
// the identity gamma curve and damping any step that does not reduce
// the sum of squared residuals. It reports ok=false if no step was ever
// accepted (divergence) or if the result violates the a>0, g>0
// post-conditions a parametric curve's exponential segment requires.
func fitExponentialGN(xs, ys []float64, maxIter int) (a, b, g, e float64, ok bool) {
	a, b, g, e = 1, 0, 1, 0
	residSS := sumSquaredResiduals(xs, ys, a, b, g, e)
	anyAccepted := false

	for iter := 0; iter < maxIter; iter++ {
		jac := make([][4]float64, len(xs))
		res := make([]float64, len(xs))
		for i, x := range xs {
			base := a*x + b
			var pred, dA, dB, dG float64
			if base > 0 {
				pw := math.Pow(base, g)
				pred = pw + e
				dA = g * math.Pow(base, g-1) * x
				dB = g * math.Pow(base, g-1)
				dG = pw * math.Log(base)
			} else {
				pred = e
			}
			res[i] = ys[i] - pred
			jac[i] = [4]float64{dA, dB, dG, 1}
		}

		var jtj [4][4]float64
		var jtr [4]float64
		for i := range jac {
			for r := 0; r < 4; r++ {
				jtr[r] += jac[i][r] * res[i]
				for c := 0; c < 4; c++ {
					jtj[r][c] += jac[i][r] * jac[i][c]
				}
			}
		}

		step, solved := solve4x4(jtj, jtr)
		if !solved {
			break
		}

		damping := 1.0
		accepted := false
		for try := 0; try < 6; try++ {
			na := a + damping*step[0]
			nb := b + damping*step[1]
			ng := g + damping*step[2]
			ne := e + damping*step[3]
			newSS := sumSquaredResiduals(xs, ys, na, nb, ng, ne)
			if newSS < residSS {
				a, b, g, e = na, nb, ng, ne
				residSS = newSS
				accepted = true
				anyAccepted = true
				break
			}
			damping /= 2
		}
		if !accepted {
			break
		}
	}

	if !anyAccepted || a <= 0 || g <= 0 {
		return a, b, g, e, false
	}
	return a, b, g, e, true
}

func sumSquaredResiduals(xs, ys []float64, a, b, g, e float64) float64 {
	var ss float64
	for i, x := range xs {
		base := a*x + b
		var pred float64
		if base > 0 {
			pred = math.Pow(base, g) + e
		} else {
			pred = e
		}
		r := ys[i] - pred
		ss += r * r
	}
	return ss
}

// solve4x4 solves m*x = v by Gaussian elimination with partial
// pivoting, reporting false if m is singular to machine precision.
func solve4x4(m [4][4]float64, v [4]float64) (x [4]float64, ok bool) {
	const n = 4
	var a [n][n + 1]float64
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			a[r][c] = m[r][c]
		}
		a[r][n] = v[r]
	}

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-14 {
			return x, false
		}
		a[col], a[pivot] = a[pivot], a[col]

		for r := col + 1; r < n; r++ {
			factor := a[r][col] / a[col][col]
			for c := col; c <= n; c++ {
				a[r][c] -= factor * a[col][c]
			}
		}
	}

	for r := n - 1; r >= 0; r-- {
		sum := a[r][n]
		for c := r + 1; c < n; c++ {
			sum -= a[r][c] * x[c]
		}
		x[r] = sum / a[r][r]
	}
	return x, true
}

func maxAbsErrorOver(xs, ys []float64, c Curve) float64 {
	var maxErr float64
	for i, x := range xs {
		r := math.Abs(ys[i] - c.Evaluate(x))
		if r > maxErr {
			maxErr = r
		}
	}
	return maxErr
}

// AreApproximateInverses reports whether g undoes f across samples
// evenly spaced over [0,1]: g(f(x)) stays within tolerance of x at
// every sample point.
func AreApproximateInverses(f, g Curve, samples int, tolerance float64) bool {
	if samples < 2 {
		samples = 2
	}
	for i := 0; i < samples; i++ {
		x := float64(i) / float64(samples-1)
		roundTrip := g.Evaluate(f.Evaluate(x))
		if math.Abs(roundTrip-x) > tolerance {
			return false
		}
	}
	return true
}
