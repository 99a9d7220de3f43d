package aggregate

import (
	"sort"
	"sync"

	"github.com/arloliu/sensorcrunch/internal/hash"
	"github.com/arloliu/sensorcrunch/record"
)

// SensorStats holds the aggregated statistics for one sensor among the
// filtered records. Read-only once produced.
type SensorStats struct {
	SensorID string
	Count    uint64
	Average  float64
}

// shardCount is the number of independently locked map shards in the
// grouped aggregation. A modest power of two keeps per-shard contention
// low without bloating the drain step.
const shardCount = 16

// accumulatorShard is one lock-scoped slice of the sensor-to-accumulator
// mapping. The mutex covers lookup-or-create-and-add as a single atomic
// step.
type accumulatorShard struct {
	mu   sync.Mutex
	accs map[string]*Accumulator
}

func (s *accumulatorShard) add(sensorID string, value float64) {
	s.mu.Lock()
	acc := s.accs[sensorID]
	if acc == nil {
		acc = &Accumulator{}
		s.accs[sensorID] = acc
	}
	acc.Add(value)
	s.mu.Unlock()
}

// PerSensor filters records with Value strictly greater than threshold and
// aggregates the survivors per sensor, returning one SensorStats entry per
// distinct sensor, sorted ascending by sensor ID (plain byte ordering).
//
// Workers share a sharded sensor-to-accumulator mapping; the shard for a
// sensor is chosen by xxHash64 of its ID, and each shard update runs under
// that shard's mutex. The mapping is the only contended resource, and the
// accumulator update inside the critical section is O(1).
//
// The result is empty (nil) when no record passes the filter. Every
// present entry has Count > 0, since a key is only created on a
// successful add.
func PerSensor(records []record.Record, threshold float64) []SensorStats {
	return perSensorWithWorkers(records, threshold, Workers())
}

func perSensorWithWorkers(records []record.Record, threshold float64, workers int) []SensorStats {
	if len(records) == 0 {
		return nil
	}
	if workers > len(records) {
		workers = len(records)
	}

	var shards [shardCount]accumulatorShard
	for i := range shards {
		shards[i].accs = make(map[string]*Accumulator)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()

			start, end := partition(len(records), workers, w)
			for _, rec := range records[start:end] {
				if rec.Value > threshold {
					shard := &shards[hash.SensorID(rec.SensorID)%shardCount]
					shard.add(rec.SensorID, rec.Value)
				}
			}
		}(w)
	}
	wg.Wait()

	var stats []SensorStats
	for i := range shards {
		for sensorID, acc := range shards[i].accs {
			avg, _ := acc.Average()
			stats = append(stats, SensorStats{
				SensorID: sensorID,
				Count:    acc.Count,
				Average:  avg,
			})
		}
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].SensorID < stats[j].SensorID
	})

	return stats
}
