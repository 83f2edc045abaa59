// Command log-extract pulls every record for a single calendar date out of a
// large, date-sorted log file.
//
// Instead of scanning the file from the start, it memory-maps the file and
// binary-searches byte offsets for the point where the target date's records
// begin, then copies records forward until the next day's first record.
//
// Usage:
//
//	log-extract --file=logs_2024.log --output-dir=output 2024-07-01
package main
