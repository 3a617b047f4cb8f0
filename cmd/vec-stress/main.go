package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"
)

// batchSize is how many operations run between duration samples and
// context checks.
const batchSize = 1000

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	capacity := flag.Int("capacity", 0, "Vector capacity; overrides the scenario when positive.")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed for the random operation stream.")
	scenarioPath := flag.String("scenario", "", "Path to a YAML scenario file (op weights, capacity).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting vector stress test...")

	// 1. Load the scenario and build the op picker
	scenario := DefaultScenario()
	if *scenarioPath != "" {
		loaded, err := LoadScenario(*scenarioPath)
		if err != nil {
			log.Fatalf("Failed to load scenario: %v", err)
		}
		scenario = loaded
		log.Printf("Loaded scenario from %s\n", *scenarioPath)
	}
	if *capacity > 0 {
		scenario.Capacity = *capacity
	}

	pick, err := scenario.picker()
	if err != nil {
		log.Fatalf("Invalid scenario: %v", err)
	}

	// 2. Set up the runner (vector plus slice model)
	r := newRunner(scenario.Capacity, *seed)
	log.Printf("Running with capacity %d, seed %d...\n", scenario.Capacity, *seed)

	report := &Report{
		Duration:       *duration,
		Capacity:       scenario.Capacity,
		Seed:           *seed,
		VerifyEvery:    scenario.VerifyEvery,
		GCPauseMetrics: *gcPauseMetrics,
		BatchTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	// 3. Run the operation stream
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalOps int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			batchStart := time.Now()
			for i := 0; i < batchSize; i++ {
				if err := r.step(pick(r.rng)); err != nil {
					log.Fatalf("Divergence after %d ops (seed %d): %v", totalOps, *seed, err)
				}
				totalOps++
				if totalOps%int64(scenario.VerifyEvery) == 0 {
					if err := r.verify(); err != nil {
						log.Fatalf("Verification failed after %d ops (seed %d): %v", totalOps, *seed, err)
					}
				}
			}
			report.BatchTime.Samples = append(report.BatchTime.Samples, time.Since(batchStart))
		}
	}

	if err := r.verify(); err != nil {
		log.Fatalf("Final verification failed (seed %d): %v", *seed, err)
	}

	report.TotalTime = time.Since(startTime)
	report.TotalOps = totalOps
	report.OpCounts = r.opCounts
	report.Verifications = r.verifications
	report.BatchTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Operation stream finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
