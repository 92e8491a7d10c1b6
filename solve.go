package catenary

import (
	"fmt"
	"math"
)

const (
	// MinSlack is the smallest amount of slack used by [Solve]. A chain
	// without slack is a straight line, which has no finite shape parameter.
	MinSlack = 1e-3

	// Tolerance is the convergence tolerance of the root finders, relative
	// to the magnitude of the values involved.
	Tolerance = 1e-10

	// MaxIterations bounds the number of iterations of each root finder.
	MaxIterations = 10_000

	// ResidualTolerance is the relative error with which a solved shape
	// parameter has to satisfy the catenary equation.
	ResidualTolerance = 1e-6

	// minArclenMargin is added to the chord when [SolveArclen] is given an
	// arc length that is too short.
	minArclenMargin = 1e-5

	// newtonStart is the initial guess for Newton's method. It suits chains
	// spanning tens to thousands of units.
	newtonStart = 20.0
)

// Solve finds the catenary that spans two points that are distH apart
// horizontally and distV apart vertically, using a chain that is slack units
// longer than the straight line between the points.
//
// Slack smaller than [MinSlack] is raised to MinSlack. A horizontal distance
// of zero results in [ErrDomain], as vertically aligned points cannot be
// spanned by a catenary.
//
// Solve first tries Newton's method, which converges quickly for moderate
// amounts of slack. If that fails, it falls back to the ITP method on a
// bracket that is known to contain the root. See [the Wikipedia article] for
// the underlying equation.
//
// [the Wikipedia article]: https://en.wikipedia.org/wiki/Catenary#Determining_parameters
func Solve(distH, distV, slack float64) (Centered, error) {
	if err := checkDistances(distH, distV); err != nil {
		return Centered{}, err
	}
	if !isFinite(slack) || slack < 0 {
		return Centered{}, fmt.Errorf("%w: slack %g isn't finite and non-negative", ErrInvalidInput, slack)
	}
	chord := math.Hypot(distH, distV)
	return solve(distH, distV, chord+max(slack, MinSlack))
}

// SolveArclen is like [Solve] but takes the total length of the chain
// instead of its slack. Lengths that don't exceed the distance between the
// points are raised to just above that distance.
func SolveArclen(distH, distV, arclen float64) (Centered, error) {
	if err := checkDistances(distH, distV); err != nil {
		return Centered{}, err
	}
	if !isFinite(arclen) {
		return Centered{}, fmt.Errorf("%w: arc length %g isn't finite", ErrInvalidInput, arclen)
	}
	chord := math.Hypot(distH, distV)
	if arclen <= chord {
		arclen = chord + minArclenMargin
	}
	return solve(distH, distV, arclen)
}

func checkDistances(distH, distV float64) error {
	switch {
	case !isFinite(distH) || !isFinite(distV):
		return fmt.Errorf("%w: distances (%g, %g) aren't finite", ErrInvalidInput, distH, distV)
	case distH < 0:
		return fmt.Errorf("%w: horizontal distance %g is negative", ErrInvalidInput, distH)
	case distH == 0:
		return fmt.Errorf("%w: endpoints are vertically aligned", ErrDomain)
	default:
		return nil
	}
}

func solve(distH, distV, arclen float64) (Centered, error) {
	// Removing the vertical component turns the problem into that of a
	// symmetric chain spanning distH with length target.
	target := math.Sqrt(arclen*arclen - distV*distV)
	if !(target > distH) {
		return Centered{}, fmt.Errorf("%w: arc length %g can't span (%g, %g)", ErrSolverDivergence, arclen, distH, distV)
	}
	a, err := solveParameter(distH, target)
	if err != nil {
		return Centered{}, err
	}
	return NewCentered(a)
}

// equation returns the residual of 2a·sinh(h/2a) = target and its derivative.
// The residual is increasing in a.
func equation(h, target float64) (f, df func(a float64) float64) {
	f = func(a float64) float64 {
		return target - 2*a*math.Sinh(h/(2*a))
	}
	df = func(a float64) float64 {
		u := h / (2 * a)
		return 2*u*math.Cosh(u) - 2*math.Sinh(u)
	}
	return f, df
}

// solveParameter finds a > 0 with 2a·sinh(h/2a) = target, where target > h.
func solveParameter(h, target float64) (float64, error) {
	f, df := equation(h, target)
	accept := func(res result[float64, solverFailure]) bool {
		if !res.isOK {
			return false
		}
		a := res.ok
		return isFinite(a) && a > 0 && math.Abs(f(a)) <= ResidualTolerance*target
	}

	newton := solveNewton(f, df, newtonStart, Tolerance*max(1, target))
	if accept(newton) {
		return newton.ok, nil
	}

	// Newton's method is unreliable for small a, where the equation
	// subtracts huge, nearly equal numbers.
	lo, hi, ok := bracket(h, target)
	if !ok {
		return 0, fmt.Errorf("%w: no bracket for span %g and length %g", ErrSolverDivergence, h, target)
	}
	itp := solveITP(f, lo, hi, 1e-12*lo, 1, 0.2/(hi-lo), f(lo), f(hi))
	if accept(itp) {
		return itp.ok, nil
	}
	if !itp.isOK {
		return 0, fmt.Errorf("%w: ITP: %s", ErrSolverDivergence, itp.err)
	}
	return 0, fmt.Errorf("%w: residual exceeds %g", ErrSolverDivergence, ResidualTolerance)
}

// bracket returns an interval of a that contains the root of [equation].
//
// Substituting u = h/2a gives sinh(u)/u = r with r = target/h > 1. Because
// tanh(u) ≤ u, sinh(u)/u ≤ cosh(u), so u ≥ acosh(r). Because sinh(u)/u ≥
// 1+u²/6 and, for u ≥ 1, sinh(u) ≥ 0.4·eᵘ, u ≤ min(√(6(r−1)), 2·ln(r)+3).
//
// The lower bound and the first upper bound are widened by a factor of two.
// For r close to 1 they are otherwise within rounding error of the root.
func bracket(h, target float64) (lo, hi float64, ok bool) {
	r := target / h
	if !(r > 1) || math.IsInf(r, 0) {
		return 0, 0, false
	}
	uLo := math.Acosh(r) / 2
	uHi := min(2*math.Sqrt(6*(r-1)), 2*math.Log(r)+3)
	if !(uLo > 0) || !(uHi >= uLo) {
		return 0, 0, false
	}
	lo, hi = h/(2*uHi), h/(2*uLo)
	f, _ := equation(h, target)
	ylo, yhi := f(lo), f(hi)
	if !isFinite(ylo) || !isFinite(yhi) || ylo > 0 || yhi < 0 {
		return 0, 0, false
	}
	return lo, hi, true
}

type solverFailure uint8

const (
	notConverged solverFailure = iota + 1
	nonFinite
	nonPositive
)

func (f solverFailure) String() string {
	switch f {
	case notConverged:
		return "iteration limit reached"
	case nonFinite:
		return "non-finite value"
	case nonPositive:
		return "non-positive value"
	default:
		return fmt.Sprintf("solverFailure(%d)", uint8(f))
	}
}

type result[T, E any] struct {
	isOK bool
	ok   T
	err  E
}

func success[T, E any](v T) result[T, E] {
	return result[T, E]{isOK: true, ok: v}
}

func failure[T, E any](err E) result[T, E] {
	return result[T, E]{err: err}
}

// solveNewton finds a positive root of f using the Newton-Raphson method,
// starting at x.
//
// It stops when the residual drops below epsilon or the step drops below
// [Tolerance] relative to x.
func solveNewton(
	f func(float64) float64,
	df func(float64) float64,
	x float64,
	epsilon float64,
) result[float64, solverFailure] {
	for range MaxIterations {
		y := f(x)
		if !isFinite(y) {
			return failure[float64](nonFinite)
		}
		if math.Abs(y) <= epsilon {
			return success[float64, solverFailure](x)
		}
		d := df(x)
		if !isFinite(d) || d == 0 {
			return failure[float64](nonFinite)
		}
		next := x - y/d
		if !isFinite(next) {
			return failure[float64](nonFinite)
		}
		if next <= 0 {
			return failure[float64](nonPositive)
		}
		if math.Abs(next-x) <= Tolerance*max(1, next) {
			return success[float64, solverFailure](next)
		}
		x = next
	}
	return failure[float64](notConverged)
}

// solveITP finds a root of the increasing function f in [a, b] using the [ITP
// method], given ya = f(a) ≤ 0 and yb = f(b) ≥ 0.
//
// The k2 parameter is hardwired to 2. n0 controls the relative impact of the
// bisection and secant components; with n0 = 0 the method never needs more
// iterations than bisection. A k1 of 0.2 / (b - a) matches the paper.
//
// Unlike plain bisection, the method fails if f produces non-finite values.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func solveITP(
	f func(float64) float64,
	a float64,
	b float64,
	epsilon float64,
	n0 int,
	k1 float64,
	ya float64,
	yb float64,
) result[float64, solverFailure] {
	if ya == 0 {
		return success[float64, solverFailure](a)
	}
	if yb == 0 {
		return success[float64, solverFailure](b)
	}
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	nmax := n0 + n1_2
	if nmax >= 63 {
		return failure[float64](notConverged)
	}
	scaledEpsilon := epsilon * float64(uint64(1)<<nmax)
	for i := 0; b-a > 2.0*epsilon; i++ {
		if i >= MaxIterations {
			return failure[float64](notConverged)
		}
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		// This has k2 = 2 hardwired for efficiency.
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp := f(xitp)
		if !isFinite(yitp) {
			return failure[float64](nonFinite)
		}
		if yitp > 0.0 {
			b = xitp
			yb = yitp
		} else if yitp < 0.0 {
			a = xitp
			ya = yitp
		} else {
			return success[float64, solverFailure](xitp)
		}
		scaledEpsilon *= 0.5
	}
	return success[float64, solverFailure](0.5 * (a + b))
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
