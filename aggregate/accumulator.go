// Package aggregate implements parallel filter/fold/reduce aggregation of
// sensor readings, both globally and grouped by sensor.
package aggregate

// Accumulator is a mergeable running (count, sum) pair, the unit of
// parallel aggregation.
//
// The zero value is the identity element: merging it into any accumulator
// leaves the result unchanged, so it serves as both the fold seed and the
// reduce identity. Merge is associative and commutative, which is what
// makes the parallel reduction order-insensitive (up to floating-point
// summation order).
//
// Not safe for concurrent use; workers fold into private accumulators and
// merge after synchronization.
type Accumulator struct {
	Count uint64
	Sum   float64
}

// Add folds one value into the accumulator.
func (a *Accumulator) Add(value float64) {
	a.Count++
	a.Sum += value
}

// Merge folds other into a, pairwise-summing counts and sums.
func (a *Accumulator) Merge(other Accumulator) {
	a.Count += other.Count
	a.Sum += other.Sum
}

// Average returns Sum/Count and whether it is defined (Count > 0).
func (a *Accumulator) Average() (float64, bool) {
	if a.Count == 0 {
		return 0, false
	}

	return a.Sum / float64(a.Count), true
}
