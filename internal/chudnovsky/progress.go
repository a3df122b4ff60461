package chudnovsky

// ProgressReporter receives the normalized progress of a summation, from 0.0
// to 1.0.
type ProgressReporter func(progress float64)

// ProgressReportThreshold is the minimum progress change between two reports.
const ProgressReportThreshold = 0.01

type tracker struct {
	report ProgressReporter
	total  float64
	last   float64
}

func newTracker(report ProgressReporter, total int) *tracker {
	if total < 1 {
		total = 1
	}
	return &tracker{report: report, total: float64(total), last: -1}
}

func (t *tracker) step(done int) {
	if t.report == nil {
		return
	}
	p := float64(done) / t.total
	if p > 1 {
		p = 1
	}
	if p-t.last >= ProgressReportThreshold {
		t.last = p
		t.report(p)
	}
}

func (t *tracker) done() {
	if t.report != nil && t.last < 1 {
		t.last = 1
		t.report(1)
	}
}
