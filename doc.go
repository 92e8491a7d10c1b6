// Package catenary computes and rasterizes catenaries, the curves formed by
// chains of uniform weight hanging between two points.
//
// # Solving
//
// A chain is described by the horizontal and vertical distances between its
// endpoints and by its slack, the length it has in excess of the straight
// line between the endpoints. [Solve] finds the shape parameter a of the
// [Centered] catenary y = a·cosh(x/a) that can span the endpoints with a
// chain of that length. [SolveArclen] does the same for a chain of a given
// total length.
//
// The shape parameter is the root of a transcendental equation, which is
// badly conditioned for tight chains (small a). The solver first tries
// Newton's method and falls back to the ITP method, which is as robust as
// bisection but usually converges much faster. Both are bounded by
// [MaxIterations].
//
// # Placing
//
// [Centered.Locate] finds the segment of a centered catenary whose endpoints
// are the requested distances apart. [Place] then computes the smallest pixel
// grid containing that segment, resulting in a [Placed] catenary. [New]
// combines all of these steps.
//
// # Rasterizing
//
// A catenary isn't a function of the row, and where it is steep, sampling it
// once per column leaves gaps. [Placed.ColumnScan] samples the curve per
// column and [Placed.RowScan] inverts it per row; [Placed.Pixels] is the
// union of both, which has no gaps. Rasterization is binary, there is no
// anti-aliasing.
//
// [Placed.RasterizeInto] and [Placed.Image] write the pixels into RGBA
// buffers.
//
// # Errors
//
// All failures are reported as errors that wrap one of [ErrInvalidInput],
// [ErrDomain], [ErrSolverDivergence], and [ErrGeometryInconsistency]. No
// function returns a partially solved curve.
//
// # Literature
//
//   - [Catenary: Determining parameters]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//
// [Catenary: Determining parameters]: https://en.wikipedia.org/wiki/Catenary#Determining_parameters
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
package catenary
