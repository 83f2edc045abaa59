package logfile

import "time"

// EstimateOffset linearly interpolates a byte offset for the target date,
// assuming records are evenly distributed across the bounds. It is a
// recovery heuristic for re-centering the binary search after a failed
// probe, not a precise position. The result is clamped to 0 and a zero-day
// boundary span maps to offset 0.
func EstimateOffset(size int64, target time.Time, b Bounds) int64 {
	totalDays := int64(b.Latest.Sub(b.Earliest) / (24 * time.Hour))
	if totalDays == 0 {
		return 0
	}
	targetDays := int64(target.Sub(b.Earliest) / (24 * time.Hour))
	off := size * targetDays / totalDays
	if off < 0 {
		return 0
	}
	return off
}
