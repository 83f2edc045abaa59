package logfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Extract copies every record belonging to the target date from start to
// out, in file order, and returns the number of head lines written.
//
// A head line dated target is written and counted. A head line dated
// target+1 ends the scan without being written. An undated line is a
// continuation of the previous record and is written only once at least one
// head line has matched, so trailing continuations of the previous day's
// last record are not picked up from the back-up slack. Head lines with any
// other date are skipped. Invalid UTF-8 bytes are replaced rather than
// aborting the scan.
func Extract(f *LogFile, start int64, target time.Time, out io.Writer) (int, error) {
	targetPrefix := target.Format(DateLayout)
	stopPrefix := target.AddDate(0, 0, 1).Format(DateLayout)

	br := f.readerFrom(start)
	w := bufio.NewWriter(out)
	count := 0
	for {
		raw, err := br.ReadBytes('\n')
		if len(raw) > 0 {
			line := strings.ToValidUTF8(string(raw), "�")
			switch {
			case strings.HasPrefix(line, targetPrefix):
				if _, werr := w.WriteString(line); werr != nil {
					return count, fmt.Errorf("failed to write output: %v", werr)
				}
				count++
			case strings.HasPrefix(line, stopPrefix):
				return count, w.Flush()
			case count > 0 && !datePrefix.MatchString(line):
				if _, werr := w.WriteString(line); werr != nil {
					return count, fmt.Errorf("failed to write output: %v", werr)
				}
			}
		}
		if err != nil {
			if err != io.EOF {
				return count, fmt.Errorf("failed to read log file: %v", err)
			}
			break
		}
	}
	return count, w.Flush()
}
