package logfile

import (
	"log"
	"time"
)

// searchState tracks which strategy the locator loop is running. Probing is
// the normal binary-search path; Recentering is the recovery path taken when
// a probe fails, which shrinks the range toward the estimator's position
// instead of aborting.
type searchState int

const (
	stateProbing searchState = iota
	stateRecentering
	stateConverged
)

// dateSearch is one binary search over byte offsets for the first record
// dated at or after target. The [low, high) interval shrinks every step;
// convergence leaves low at or near the first target record.
type dateSearch struct {
	file   *LogFile
	target time.Time
	bounds Bounds
	window int

	low, high int64
	mid       int64
	probeErr  error
	state     searchState
}

func newDateSearch(f *LogFile, target time.Time, bounds Bounds) *dateSearch {
	return &dateSearch{
		file:   f,
		target: target,
		bounds: bounds,
		window: DefaultProbeWindow,
		high:   f.Size(),
	}
}

// step advances the search by one transition.
func (s *dateSearch) step() {
	switch s.state {
	case stateProbing:
		if s.low >= s.high {
			s.state = stateConverged
			return
		}
		s.mid = (s.low + s.high) / 2
		pos, date, err := AlignForward(s.file, s.mid, s.window)
		if err != nil {
			s.probeErr = err
			s.state = stateRecentering
			return
		}
		// Alignment can land a line or two outside the interval; clamp the
		// moves so the interval always shrinks and the loop terminates. The
		// residual error is at most about one window, well inside the
		// refinement scanner's back-up.
		if date.Before(s.target) {
			if pos+1 > s.low {
				s.low = pos + 1
			} else {
				s.low = s.mid + 1
			}
		} else {
			if pos < s.high {
				s.high = pos
			} else {
				s.high = s.mid
			}
		}
	case stateRecentering:
		log.Printf("Warning: probe at offset %d failed: %v", s.mid, s.probeErr)
		est := EstimateOffset(s.file.Size(), s.target, s.bounds)
		if s.mid > est {
			s.high = s.mid - 1
		} else {
			s.low = s.mid + 1
		}
		s.probeErr = nil
		s.state = stateProbing
	}
}

func (s *dateSearch) run() int64 {
	for s.state != stateConverged {
		s.step()
	}
	return s.low
}

// FindStart binary-searches the file for an offset at or near the start of
// the first record dated target or later. Probe failures re-center the
// search via the position estimator rather than aborting; the result is
// only approximate and must be corrected by RefineStart. An unsorted file
// yields an arbitrary (but in-range) offset.
func FindStart(f *LogFile, target time.Time, bounds Bounds) int64 {
	return newDateSearch(f, target, bounds).run()
}
