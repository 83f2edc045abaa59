// Package logfile locates and extracts all records for a single calendar
// date from a large, date-sorted log file without scanning it linearly.
//
// The file is memory-mapped and probed sparsely: a boundary probe reads the
// head and tail to learn the overall date range, a binary search over byte
// offsets converges near the first record of the target date, and a short
// refinement scan pins down the exact boundary before extraction copies the
// day's records (including continuation lines) to the output.
package logfile
