package core

import "math"

// Interval represents a closed scalar range [Min, Max]
type Interval struct {
	Min, Max float64
}

// NewInterval creates an interval from explicit bounds (caller guarantees min <= max)
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// NewIntervalOrderless creates an interval from two unordered bounds
func NewIntervalOrderless(a, b float64) Interval {
	return Interval{Min: math.Min(a, b), Max: math.Max(a, b)}
}

// EmptyInterval contains no points
var EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// UniverseInterval contains every point
var UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// Size returns Max - Min
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether x lies in the interval, inclusive of the bounds
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies strictly inside the interval
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp returns x clamped to the interval
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand returns the interval widened by delta in total (delta/2 on each side)
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2.0
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Intersect returns the componentwise intersection of two intervals
func (i Interval) Intersect(other Interval) Interval {
	return Interval{Min: math.Max(i.Min, other.Min), Max: math.Min(i.Max, other.Max)}
}

// Union returns the componentwise union of two intervals
func (i Interval) Union(other Interval) Interval {
	return Interval{Min: math.Min(i.Min, other.Min), Max: math.Max(i.Max, other.Max)}
}

// Add returns the interval shifted by a scalar offset
func (i Interval) Add(offset float64) Interval {
	return Interval{Min: i.Min + offset, Max: i.Max + offset}
}
