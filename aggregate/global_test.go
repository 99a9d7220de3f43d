package aggregate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sensorcrunch/record"
)

func makeRecords(pairs ...any) []record.Record {
	records := make([]record.Record, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		records = append(records, record.Record{
			Timestamp: "2024-01-01T00:00:00",
			SensorID:  pairs[i].(string),
			Value:     pairs[i+1].(float64),
		})
	}

	return records
}

func TestGlobal_FilterAndAverage(t *testing.T) {
	records := makeRecords("S1", 10.0, "S2", 60.0, "S1", 80.0, "S3", 30.0)

	acc := Global(records, 50.0)

	require.Equal(t, uint64(2), acc.Count)
	avg, ok := acc.Average()
	require.True(t, ok)
	require.InDelta(t, 70.0, avg, 1e-9)
}

func TestGlobal_NoRowsPassFilter(t *testing.T) {
	records := makeRecords("S1", 1.0, "S2", 2.0)

	acc := Global(records, 100.0)

	require.Equal(t, uint64(0), acc.Count)
	_, ok := acc.Average()
	require.False(t, ok)
}

func TestGlobal_AllRowsPassFilter(t *testing.T) {
	records := makeRecords("S1", 100.0, "S2", 200.0)

	acc := Global(records, 0.0)

	require.Equal(t, uint64(2), acc.Count)
	avg, ok := acc.Average()
	require.True(t, ok)
	require.InDelta(t, 150.0, avg, 1e-9)
}

// TestGlobal_ThresholdBoundary verifies the strict > semantics: a value
// equal to the threshold is excluded.
func TestGlobal_ThresholdBoundary(t *testing.T) {
	records := makeRecords("S1", 50.0, "S2", 50.0000001, "S3", 49.9999999)

	acc := Global(records, 50.0)

	require.Equal(t, uint64(1), acc.Count)
	require.InDelta(t, 50.0000001, acc.Sum, 1e-9)
}

func TestGlobal_EmptyInput(t *testing.T) {
	acc := Global(nil, 0.0)

	require.Equal(t, Accumulator{}, acc)
}

// TestGlobal_PartitionCountIndependence verifies the reduction yields the
// same result for any worker count, within floating-point tolerance.
func TestGlobal_PartitionCountIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	records := make([]record.Record, 10_000)
	for i := range records {
		records[i] = record.Record{SensorID: "S1", Value: rng.Float64() * 100.0}
	}

	reference := globalWithWorkers(records, 50.0, 1)
	require.Greater(t, reference.Count, uint64(0))

	for _, workers := range []int{2, 3, 4, 7, 16, 100} {
		acc := globalWithWorkers(records, 50.0, workers)

		require.Equal(t, reference.Count, acc.Count, "workers=%d", workers)
		require.InEpsilon(t, reference.Sum, acc.Sum, 1e-9, "workers=%d", workers)
	}
}

// TestGlobal_MoreWorkersThanRecords verifies the worker count is clamped
// rather than spawning empty partitions for each record.
func TestGlobal_MoreWorkersThanRecords(t *testing.T) {
	records := makeRecords("S1", 10.0, "S2", 20.0)

	acc := globalWithWorkers(records, 0.0, 64)

	require.Equal(t, uint64(2), acc.Count)
	require.InDelta(t, 30.0, acc.Sum, 1e-9)
}

func TestPartition_CoversAllIndices(t *testing.T) {
	for _, tc := range []struct{ n, workers int }{
		{10, 3}, {10, 1}, {1, 1}, {7, 7}, {100, 16}, {5, 4},
	} {
		covered := make([]bool, tc.n)
		prevEnd := 0
		for w := 0; w < tc.workers; w++ {
			start, end := partition(tc.n, tc.workers, w)
			require.Equal(t, prevEnd, start, "n=%d workers=%d w=%d", tc.n, tc.workers, w)
			require.LessOrEqual(t, end-start, tc.n/tc.workers+1)
			for i := start; i < end; i++ {
				require.False(t, covered[i], "index %d covered twice", i)
				covered[i] = true
			}
			prevEnd = end
		}
		require.Equal(t, tc.n, prevEnd, "n=%d workers=%d", tc.n, tc.workers)
	}
}
