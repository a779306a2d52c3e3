// SPDX-License-Identifier: MIT

package schedule

import (
	"fmt"
	"math"
)

// New validates points and returns them as a schedule.
//
// Errors: ErrEmptySchedule, ErrInvalidBeta, ErrInvalidSteps.
func New(points ...Point) (Schedule, error) {
	if len(points) == 0 {
		return Schedule{}, fmt.Errorf("%s: %w", methodNew, ErrEmptySchedule)
	}
	for k, p := range points {
		if !validBeta(p.Beta) {
			return Schedule{}, fmt.Errorf("%s: point %d: beta=%v: %w", methodNew, k, p.Beta, ErrInvalidBeta)
		}
		if p.Steps < 1 {
			return Schedule{}, fmt.Errorf("%s: point %d: steps=%d: %w", methodNew, k, p.Steps, ErrInvalidSteps)
		}
	}

	return Schedule{points: append([]Point(nil), points...)}, nil
}

// Linear returns numPoints points with betas evenly spaced from betaMin to
// betaMax inclusive, each held for stepsPerPoint steps.
func Linear(betaMin, betaMax float64, stepsPerPoint, numPoints int) (Schedule, error) {
	if err := checkRange(methodLinear, betaMin, betaMax, stepsPerPoint, numPoints); err != nil {
		return Schedule{}, err
	}

	points := make([]Point, numPoints)
	for k := range points {
		points[k] = Point{Beta: betaMax, Steps: stepsPerPoint} // single point sits at betaMax
		if numPoints > 1 {
			// t runs 0..1 inclusive; both endpoints are hit exactly.
			t := float64(k) / float64(numPoints-1)
			points[k].Beta = betaMin + t*(betaMax-betaMin)
		}
	}

	return Schedule{points: points}, nil
}

// Geometric returns numPoints points with betas growing by a constant ratio
// from betaMin to betaMax inclusive. Both endpoints must be > 0.
func Geometric(betaMin, betaMax float64, stepsPerPoint, numPoints int) (Schedule, error) {
	if err := checkRange(methodGeometric, betaMin, betaMax, stepsPerPoint, numPoints); err != nil {
		return Schedule{}, err
	}
	if betaMin <= 0 || betaMax <= 0 {
		return Schedule{}, fmt.Errorf("%s: betaMin=%v, betaMax=%v must be > 0: %w", methodGeometric, betaMin, betaMax, ErrInvalidBeta)
	}

	points := make([]Point, numPoints)
	// ratio^(numPoints-1) == betaMax/betaMin.
	ratio := 1.0
	if numPoints > 1 {
		ratio = math.Pow(betaMax/betaMin, 1/float64(numPoints-1))
	}
	beta := betaMin
	for k := range points {
		points[k] = Point{Beta: beta, Steps: stepsPerPoint}
		beta *= ratio
	}
	// Pin the endpoint against accumulated rounding.
	points[numPoints-1].Beta = betaMax

	return Schedule{points: points}, nil
}

// Points returns a copy of the schedule's points.
func (s Schedule) Points() []Point { return append([]Point(nil), s.points...) }

// Len returns the number of points.
func (s Schedule) Len() int { return len(s.points) }

// TotalSteps returns the number of Step calls a full Run makes.
func (s Schedule) TotalSteps() int {
	total := 0
	for _, p := range s.points {
		total += p.Steps
	}

	return total
}

func checkRange(method string, betaMin, betaMax float64, stepsPerPoint, numPoints int) error {
	if !validBeta(betaMin) || !validBeta(betaMax) {
		return fmt.Errorf("%s: betaMin=%v, betaMax=%v: %w", method, betaMin, betaMax, ErrInvalidBeta)
	}
	if stepsPerPoint < 1 || numPoints < 1 {
		return fmt.Errorf("%s: stepsPerPoint=%d, numPoints=%d: %w", method, stepsPerPoint, numPoints, ErrInvalidSteps)
	}

	return nil
}

func validBeta(b float64) bool {
	return !math.IsNaN(b) && !math.IsInf(b, 0) && b >= 0
}
