package main

import (
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Items    int
	Churn    float64

	// Results
	TotalBatches  int64
	TotalTime     time.Duration
	Inserts       int64
	Removes       int64
	Gets          int64
	Audits        int64
	FinalLive     int
	FinalSlots    int
	BatchTime     Stats
	StaleProbe    StaleProbe
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// StaleProbe counts re-lookups of removed handles. Every probe must be
// rejected; the main loop aborts on the first one that is not.
type StaleProbe struct {
	Probes   int64
	Rejected int64
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Arena Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Initial Values:** {{.Items}}
- **Churn Ratio:** {{.Churn}}

## Workload
- **Total Batches:** {{.TotalBatches}}
- **Total Test Time:** {{.TotalTime}}
- **Inserts:** {{.Inserts}}
- **Removes:** {{.Removes}}
- **Handle Lookups:** {{.Gets}}
- **Stale Probes:** {{.StaleProbe.Probes}} ({{.StaleProbe.Rejected}} rejected)
- **Invariant Audits Passed:** {{.Audits}}
- **Batch Time:**
  - **Avg:** {{.BatchTime.Avg}}
  - **Min:** {{.BatchTime.Min}}
  - **Max:** {{.BatchTime.Max}}

## Arena State
- **Live Values:** {{.FinalLive}}
- **Backing Slots:** {{.FinalSlots}}
- **Free Slots:** {{sub .FinalSlots .FinalLive}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"sub": func(a, b int) int {
			return a - b
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
