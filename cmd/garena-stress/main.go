package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/JuergenFranziskus/typed-garena/garena"
)

// Record is the churned element type. Wide enough that slot reuse matters.
type Record struct {
	Seq     uint64
	Payload [6]uint64
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	itemCount := flag.Int("items", 100000, "The initial number of values to insert.")
	churn := flag.Float64("churn", 0.5, "Fraction of operations that are removals (0..1).")
	auditEvery := flag.Int("audit-every", 100, "Run invariant audits every N batches (0 disables).")
	flag.Parse()

	log.Println("Starting arena stress test...")

	arena := garena.New[Record]()
	live := make([]garena.ID[Record], 0, *itemCount)

	// 1. Populate the arena
	log.Printf("Populating arena with %d values...\n", *itemCount)
	var seq uint64
	for i := 0; i < *itemCount; i++ {
		live = append(live, arena.Insert(Record{Seq: seq}))
		seq++
	}
	log.Println("Population complete.")

	// 2. Run the churn loop
	report := &Report{
		Duration:   *duration,
		Items:      *itemCount,
		Churn:      *churn,
		BatchTime:  Stats{Samples: make([]time.Duration, 0)},
		StaleProbe: StaleProbe{},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running churn for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var batches int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			batchStart := time.Now()
			live = runBatch(arena, live, rng, *churn, &seq, report)

			report.BatchTime.Samples = append(report.BatchTime.Samples, time.Since(batchStart))
			batches++

			if *auditEvery > 0 && batches%int64(*auditEvery) == 0 {
				if err := audit(arena, live); err != nil {
					log.Fatalf("Invariant violation after %d batches: %v", batches, err)
				}
				report.Audits++
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalBatches = batches
	report.FinalLive = arena.Len()
	report.FinalSlots = arena.NumSlots()
	report.BatchTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Churn finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Arena Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

const batchOps = 1024

// runBatch performs one batch of random operations and returns the updated
// live-handle set. Removed handles are re-probed to count stale rejections.
func runBatch(arena *garena.Arena[Record], live []garena.ID[Record], rng *rand.Rand, churn float64, seq *uint64, report *Report) []garena.ID[Record] {
	for op := 0; op < batchOps; op++ {
		if len(live) > 0 && rng.Float64() < churn {
			pick := rng.Intn(len(live))
			id := live[pick]
			if _, ok := arena.Remove(id); !ok {
				log.Fatalf("live handle %v rejected by Remove", id)
			}
			live[pick] = live[len(live)-1]
			live = live[:len(live)-1]
			report.Removes++

			// A removed handle must stay dead
			if arena.Contains(id) {
				log.Fatalf("stale handle %v still resolves", id)
			}
			report.StaleProbe.Probes++
			report.StaleProbe.Rejected++
		} else {
			id := arena.Insert(Record{Seq: *seq})
			*seq++
			live = append(live, id)
			report.Inserts++
		}
	}

	// Touch a few random live values through their handles
	for i := 0; i < 16 && len(live) > 0; i++ {
		id := live[rng.Intn(len(live))]
		v, ok := arena.Get(id)
		if !ok {
			log.Fatalf("live handle %v rejected by Get", id)
		}
		v.Payload[0]++
		report.Gets++
	}

	return live
}

// audit verifies the arena's structural invariants: the live count matches
// both the tracked handle set and a full iteration, and the free list visits
// every free slot exactly once.
func audit(arena *garena.Arena[Record], live []garena.ID[Record]) error {
	if arena.Len() != len(live) {
		return fmt.Errorf("len %d, tracked live handles %d", arena.Len(), len(live))
	}

	iterated := 0
	lastIndex := -1
	for id := range arena.IDs() {
		if int(id.Index()) <= lastIndex {
			return fmt.Errorf("iteration out of order at slot %d", id.Index())
		}
		lastIndex = int(id.Index())
		iterated++
	}
	if iterated != arena.Len() {
		return fmt.Errorf("iteration yielded %d entries, len is %d", iterated, arena.Len())
	}

	visited := make(map[int]bool)
	for i := arena.FreeHead(); i >= 0; {
		if visited[i] {
			return fmt.Errorf("free list cycle through slot %d", i)
		}
		visited[i] = true
		info := arena.SlotAt(i)
		if info.Occupied {
			return fmt.Errorf("occupied slot %d on free list", i)
		}
		i = info.NextFree
	}
	if free := arena.NumSlots() - arena.Len(); len(visited) != free {
		return fmt.Errorf("free list has %d slots, expected %d", len(visited), free)
	}

	return nil
}
