package main

import (
	"io"
	"runtime"
	"sort"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration    time.Duration
	Capacity    int
	Seed        int64
	VerifyEvery int

	// Results
	TotalOps       int64
	OpCounts       map[string]int64
	Verifications  int64
	TotalTime      time.Duration
	BatchTime      Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
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

// SortedOps returns the op names in alphabetical order so the report is
// stable between runs.
func (r *Report) SortedOps() []string {
	names := make([]string, 0, len(r.OpCounts))
	for name := range r.OpCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Vector Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Vector Capacity:** {{.Capacity}}
- **Seed:** {{.Seed}}
- **Verify Every:** {{.VerifyEvery}} ops

## Results
- **Total Operations:** {{.TotalOps}}
- **Full Verifications:** {{.Verifications}}
- **Total Test Time:** {{.TotalTime}}
- **Batch Time ({{batch}} ops):**
  - **Avg:** {{.BatchTime.Avg}}
  - **Min:** {{.BatchTime.Min}}
  - **Max:** {{.BatchTime.Max}}

## Operation Mix
{{- $counts := .OpCounts}}
{{- range .SortedOps}}
- {{.}}: {{index $counts .}}
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"batch": func() int {
			return batchSize
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
