// Command sensorcrunch processes a CSV file of sensor readings and prints
// aggregate statistics.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/arloliu/sensorcrunch"
)

func main() {
	input := flag.String("input", "", "path to the input CSV file (Timestamp, SensorID, Value)")
	threshold := flag.Float64("threshold", 0.0, "keep only rows where Value > threshold")
	verbose := flag.Bool("verbose", false, "print per-sensor statistics after processing")
	flag.Parse()

	if err := run(*input, *threshold, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "sensorcrunch: %v\n", err)
		os.Exit(1)
	}
}

func run(input string, threshold float64, verbose bool) error {
	if input == "" {
		return fmt.Errorf("missing -input flag")
	}

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input file %q does not exist", input)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%q is not a regular file", input)
	}

	fmt.Printf("Input file      : %s\n", input)
	fmt.Printf("Filter threshold: %v\n", threshold)
	fmt.Printf("Workers         : %d\n", sensorcrunch.Workers())
	fmt.Println()

	start := time.Now()

	stats, err := sensorcrunch.Process(input, threshold, verbose)
	if err != nil {
		return fmt.Errorf("failed to process file %q: %w", input, err)
	}

	elapsed := time.Since(start)

	removed := stats.TotalRows - stats.FilteredRows
	removedPct := 0.0
	if stats.TotalRows > 0 {
		removedPct = float64(removed) / float64(stats.TotalRows) * 100.0
	}

	fmt.Println("Processing complete")
	fmt.Printf("    Total rows read      : %d\n", stats.TotalRows)
	fmt.Printf("    Rows after filter    : %d\n", stats.FilteredRows)
	fmt.Printf("    Rows removed         : %d (%.2f%%)\n", removed, removedPct)
	if stats.Average != nil {
		fmt.Printf("    Average value        : %.6f\n", *stats.Average)
	} else {
		fmt.Printf("    Average value        : N/A (no rows passed the filter)\n")
	}

	if verbose && len(stats.PerSensor) > 0 {
		fmt.Println()
		fmt.Printf("  %-20s %10s %16s\n", "Sensor ID", "Row Count", "Average Value")
		fmt.Printf("  %-20s %10s %16s\n", dashes(20), dashes(10), dashes(16))
		for _, s := range stats.PerSensor {
			fmt.Printf("  %-20s %10d %16.6f\n", s.SensorID, s.Count, s.Average)
		}
		fmt.Println()
	}

	fmt.Printf("Wall-clock time : %v\n", elapsed)

	return nil
}

func dashes(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '-'
	}

	return string(b)
}
