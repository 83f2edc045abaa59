package logfile

import (
	"log"
	"time"
)

// Bounds holds the earliest and latest dates observed in the file.
type Bounds struct {
	Earliest time.Time
	Latest   time.Time
}

// ProbeConfig controls boundary probing. The fallback fields only matter when
// the file head or tail yields no parseable date; they keep the position
// estimator away from degenerate ranges and make no accuracy claim.
type ProbeConfig struct {
	// TailWindow is the number of bytes scanned at the end of the file for
	// the latest date.
	TailWindow int
	// Lookback is the span assumed below Now when the head has no date.
	Lookback time.Duration
	// Now supplies the clock for the fallbacks. Defaults to time.Now.
	Now func() time.Time
}

// DefaultProbeConfig returns the standard probing parameters: a 50 KB tail
// window and a 3 year lookback.
func DefaultProbeConfig() ProbeConfig {
	return ProbeConfig{
		TailWindow: 50000,
		Lookback:   3 * 365 * 24 * time.Hour,
		Now:        time.Now,
	}
}

// ProbeBounds determines the date range covered by the file. The earliest
// date comes from the first line, the latest from the last valid date token
// in the final TailWindow bytes. Missing dates are replaced by the configured
// fallbacks with a warning; probing never fails.
func ProbeBounds(f *LogFile, cfg ProbeConfig) Bounds {
	var b Bounds

	head, _ := f.readerFrom(0).ReadBytes('\n')
	if d, ok := ParseDate(head); ok {
		b.Earliest = d
	}

	start := f.Size() - int64(cfg.TailWindow)
	if start < 0 {
		start = 0
	}
	tail := make([]byte, f.Size()-start)
	if n, _ := f.ReadAt(tail, start); n > 0 {
		matches := dateToken.FindAll(tail[:n], -1)
		for i := len(matches) - 1; i >= 0; i-- {
			if d, err := time.Parse(DateLayout, string(matches[i])); err == nil {
				b.Latest = d
				break
			}
		}
	}

	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}
	if b.Earliest.IsZero() {
		b.Earliest = now().Add(-cfg.Lookback)
		log.Printf("Warning: no date found at head of file, assuming logs start %s", b.Earliest.Format(DateLayout))
	}
	if b.Latest.IsZero() {
		b.Latest = now()
		log.Printf("Warning: no date found at tail of file, assuming logs end now")
	}
	return b
}

// Contains reports whether date falls inside the bounds.
func (b Bounds) Contains(date time.Time) bool {
	return !date.Before(b.Earliest) && !date.After(b.Latest)
}
