package logfile

import "time"

// refineBackup is how far the refinement scan backs up from the binary
// search result before scanning forward. It bounds how much search slack the
// refinement can absorb: if estimation error or a single record exceeds it,
// refinement can miss the true boundary and the raw estimate fallback below
// takes over.
const refineBackup = 100000

// RefineStart pins down the exact start of the target date's records. It
// backs up refineBackup bytes from the approximate offset produced by
// FindStart, then scans forward line by line until it sees a head line dated
// target or later and returns that line's start. If the scan drains the file
// without finding one, it falls back to the estimator's raw offset.
func RefineStart(f *LogFile, approx int64, target time.Time, bounds Bounds) int64 {
	start := approx - refineBackup
	if start < 0 {
		start = 0
	}

	br := f.readerFrom(start)
	pos := start
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			if d, ok := ParseDate(line); ok && !d.Before(target) {
				return pos
			}
			pos += int64(len(line))
		}
		if err != nil {
			break
		}
	}
	return EstimateOffset(f.Size(), target, bounds)
}
