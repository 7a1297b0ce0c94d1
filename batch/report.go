// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"time"

	"github.com/ik5/aup3wav/audio"
)

// Outcome is the result of processing one project file.
type Outcome int

const (
	Converted Outcome = iota
	SkippedExists
	SkippedNoData
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Converted:
		return "converted"
	case SkippedExists:
		return "skipped-exists"
	case SkippedNoData:
		return "skipped-no-data"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Remediation is shown when a run converts nothing.
const Remediation = "These project files may be using an incompatible storage encoding or be corrupted. " +
	"Re-export the audio from the editor, or obtain the original recordings."

// Entry records what happened to one project file.
type Entry struct {
	Folder  string
	Source  string
	Output  string
	Outcome Outcome

	// Set for Converted entries.
	Samples  int
	Duration time.Duration
	Bytes    int64

	Stats   audio.Stats
	Err     error
	Elapsed time.Duration
}

// Report is the outcome of a run. Entries are in discovery order.
type Report struct {
	RunID     string
	Root      string
	Started   time.Time
	Elapsed   time.Duration
	Inspected string // file given the diagnostic inspection, if any
	Entries   []Entry
}

// Total is the number of project files found.
func (r *Report) Total() int { return len(r.Entries) }

// Count returns the number of entries with outcome o.
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, e := range r.Entries {
		if e.Outcome == o {
			n++
		}
	}
	return n
}

// Converted counts files that have an output, whether written by this run or
// already present.
func (r *Report) Converted() int { return r.Count(Converted) + r.Count(SkippedExists) }

// Encoded counts outputs written by this run.
func (r *Report) Encoded() int { return r.Count(Converted) }

// Failures returns the failed entries.
func (r *Report) Failures() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Outcome == Failed {
			out = append(out, e)
		}
	}
	return out
}

// NeedsRemediation reports whether files were found but none converted.
func (r *Report) NeedsRemediation() bool { return r.Total() > 0 && r.Converted() == 0 }

// Summary returns the aggregate line, e.g. "3/4 files converted".
func (r *Report) Summary() string {
	return fmt.Sprintf("%d/%d files converted", r.Converted(), r.Total())
}
