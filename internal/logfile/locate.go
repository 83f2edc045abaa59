package logfile

import (
	"bytes"
	"errors"
	"time"
)

// DefaultProbeWindow is the number of bytes read around a probe offset when
// aligning to a record boundary.
const DefaultProbeWindow = 8192

// ErrNoDatedLine reports that no line with a valid date exists at or after
// the probed offset.
var ErrNoDatedLine = errors.New("no dated line found before end of file")

// AlignForward finds the first well-formed head line at or after offset.
// It backs up half a window so a probe landing mid-line still sees the
// surrounding record, skips to the byte after the first line terminator in
// the window, and parses the following line. Lines that are malformed or
// date-shaped but not valid dates are stepped over one at a time; the scan
// advances monotonically so it is bounded by the file length. Reaching the
// end of the file without a match returns ErrNoDatedLine.
func AlignForward(f *LogFile, offset int64, window int) (int64, time.Time, error) {
	start := offset - int64(window)/2
	if start < 0 {
		start = 0
	}
	if start >= f.Size() {
		return 0, time.Time{}, ErrNoDatedLine
	}

	buf := make([]byte, window)
	n, _ := f.ReadAt(buf, start)
	if n == 0 {
		return 0, time.Time{}, ErrNoDatedLine
	}

	// The window almost always opens mid-line; the candidate head line
	// starts after the first terminator. A window with no terminator is
	// skipped entirely.
	lineStart := start + int64(n)
	if i := bytes.IndexByte(buf[:n], '\n'); i >= 0 {
		lineStart = start + int64(i) + 1
	}
	if lineStart >= f.Size() {
		return 0, time.Time{}, ErrNoDatedLine
	}

	br := f.readerFrom(lineStart)
	pos := lineStart
	for pos < f.Size() {
		line, rerr := br.ReadBytes('\n')
		if len(line) == 0 {
			break
		}
		if d, ok := ParseDate(line); ok {
			return pos, d, nil
		}
		pos += int64(len(line))
		if rerr != nil {
			break
		}
	}
	return 0, time.Time{}, ErrNoDatedLine
}
