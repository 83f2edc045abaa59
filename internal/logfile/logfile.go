package logfile

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

// LogFile is a read-only, random-access view of a log file. The file is
// memory-mapped so that sparse probes during binary search cost a page fault
// at most, regardless of file size.
type LogFile struct {
	r    *mmap.ReaderAt
	size int64
}

// Open memory-maps the log file at path for reading.
func Open(path string) (*LogFile, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}
	return &LogFile{r: r, size: int64(r.Len())}, nil
}

// Size returns the file size in bytes.
func (f *LogFile) Size() int64 {
	return f.size
}

// Close unmaps the file.
func (f *LogFile) Close() error {
	return f.r.Close()
}

// ReadAt reads up to len(p) bytes starting at offset off. It clamps the read
// to the end of the file and reports io.EOF on a short read, like a regular
// io.ReaderAt over a file.
func (f *LogFile) ReadAt(p []byte, off int64) (int, error) {
	if off >= f.size {
		return 0, io.EOF
	}
	if max := f.size - off; int64(len(p)) > max {
		p = p[:max]
	}
	return f.r.ReadAt(p, off)
}

// readerFrom returns a buffered reader over the file contents starting at
// offset off. off must be within [0, Size()].
func (f *LogFile) readerFrom(off int64) *bufio.Reader {
	return bufio.NewReaderSize(io.NewSectionReader(f.r, off, f.size-off), 64<<10)
}
