//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

// Package bench implements timing reports and deterministic input
// data for the SM3 and SM4 benchmarks.
package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// Timing records timing samples and renders a profiling report.
type Timing struct {
	Start   time.Time
	Samples []*Sample
	mark    time.Time
}

// NewTiming creates a new Timing instance.
func NewTiming() *Timing {
	now := time.Now()
	return &Timing{
		Start: now,
		mark:  now,
	}
}

// Reset sets the start of the next sample to the current time so that
// setup work between samples is not measured.
func (t *Timing) Reset() {
	t.mark = time.Now()
}

// Sample adds a timing sample with label and the number of bytes
// processed during the sample.
func (t *Timing) Sample(label string, bytes uint64) *Sample {
	sample := &Sample{
		Label: label,
		Start: t.mark,
		End:   time.Now(),
		Bytes: bytes,
	}
	t.mark = sample.End
	t.Samples = append(t.Samples, sample)
	return sample
}

// Total returns the total duration of all samples.
func (t *Timing) Total() time.Duration {
	var total time.Duration
	for _, sample := range t.Samples {
		total += sample.Duration()
	}
	return total
}

// Print prints the profiling report to the writer.
func (t *Timing) Print(w io.Writer) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Data").SetAlign(tabulate.MR)
	tab.Header("Rate").SetAlign(tabulate.MR)

	total := t.Total()
	var bytes uint64
	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.Duration()
		row.Column(duration.String())
		row.Column(fmt.Sprintf("%.2f%%",
			float64(duration)/float64(total)*100))
		row.Column(FileSize(sample.Bytes).String())
		row.Column(Rate(sample.Bytes, duration))

		bytes += sample.Bytes
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(FileSize(bytes).String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)

	tab.Print(w)
}

// Sample contains information about one timing sample.
type Sample struct {
	Label string
	Start time.Time
	End   time.Time
	Bytes uint64
}

// Duration returns the sample duration.
func (s *Sample) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Rate formats the throughput of bytes processed in duration.
func Rate(bytes uint64, duration time.Duration) string {
	if bytes == 0 || duration <= 0 {
		return "-"
	}
	perSec := float64(bytes) / duration.Seconds()
	return FileSize(perSec).String() + "/s"
}

// FileSize implements human readable data sizes.
type FileSize uint64

func (s FileSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%dTB", s/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%dMB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%dkB", s/1000)
	} else {
		return fmt.Sprintf("%dB", s)
	}
}
