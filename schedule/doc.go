// SPDX-License-Identifier: MIT

// Package schedule drives an update engine through a sequence of inverse
// temperatures.
//
// A Schedule is an ordered list of Points {Beta, Steps}. Run calls
// target.Step(Beta, algo) exactly Steps times for every point, in order, and
// records the energy reached at the end of each point.
//
// Constructors
//
//   - New(points...):  explicit pairs, validated.
//   - Linear:          numPoints betas evenly spaced from βmin to βmax.
//   - Geometric:       numPoints betas with a constant ratio; βmin must be > 0.
//
// A single-point Linear or Geometric schedule sits at βmax.
//
// Cancellation
//
//	Run checks ctx between steps. On cancellation it stops calling Step and
//	returns the partial Result together with ctx.Err().
//
// Logging
//
//	Run logs one debug record per point through the logger given with
//	WithLogger. The default logger discards everything.
package schedule
