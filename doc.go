// Package abelfunctions provides numerical routines for computing with
// complex algebraic curves and their Riemann surfaces.
//
// Given a bivariate polynomial f(x, y), the zero set f(x, y) = 0 defines an
// algebraic curve. Away from finitely many branch points the equation has
// exactly deg_y(f) distinct roots in y above every x, and these roots vary
// analytically with x. This package tracks full fibres of y-roots along paths
// in the complex x-plane, which is the numerical backbone of monodromy,
// homology and period matrix computations on the associated Riemann surface.
//
// # Analytic continuation
//
// The central operation is [Continuator.Continue]: advance an ordered fibre
// of y-roots from one x-point to a nearby one without ever confusing two
// sheets. Two interchangeable continuators are provided:
//
//   - [SmaleContinuator] uses Newton iteration, certified by Smale's alpha
//     theory. Before any Newton step is taken it verifies that every root of
//     the fibre satisfies the alpha test at the target point and that the
//     Newton basins of distinct roots cannot overlap. If either check fails
//     the step is bisected, so the effective step size adapts to the distance
//     from the nearest branch point.
//
//   - [PuiseuxContinuator] evaluates precomputed Puiseux series and is valid
//     in a neighbourhood of a discriminant point, exactly where Newton
//     iteration becomes unreliable.
//
// # Paths and surfaces
//
// Paths in the x-plane are composed of [LineSegment] and [ArcSegment]
// primitives, each paired with the continuator that governs its region (see
// [PathSegment]). A [Path] threads one fibre through all of its segments,
// preserving the sheet labelling from start to end.
//
// [RiemannSurface] is a thin wrapper over a curve together with externally
// supplied symbolic data (discriminant points, holomorphic differential
// numerators). It derives the base fibre numerically, builds monodromy loops
// around the discriminant points, computes the monodromy group and the genus
// via Riemann-Hurwitz, and integrates differentials along paths.
//
// Symbolic preprocessing (discriminants, Puiseux expansions, adjoint
// differentials) is outside the scope of this package. The types
// [PuiseuxSeries] and [Differential] describe the exact shape of the data a
// computer algebra system must hand over.
//
// # References
//
// B. Deconinck and M. Patterson, "Computing with plane algebraic curves and
// Riemann surfaces", Lecture Notes in Mathematics 2013, Springer, 2011.
//
// S. Smale, "Newton's method estimates from data at one point", in The
// Merging of Disciplines, Springer, 1986.
package abelfunctions
