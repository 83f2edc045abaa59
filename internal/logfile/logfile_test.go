package logfile

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// openLog writes content to a temp file and memory-maps it for the test.
func openLog(t *testing.T, content string) *LogFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	f, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, f.Close())
	})
	return f
}

// day parses a YYYY-MM-DD string for test fixtures.
func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.log"))
	require.Error(t, err)
}

func TestSize(t *testing.T) {
	f := openLog(t, "2024-01-01 hello\n")
	require.Equal(t, int64(17), f.Size())
}

func TestReadAtClampsToEOF(t *testing.T) {
	f := openLog(t, "2024-01-01 hello\n")

	buf := make([]byte, 64)
	n, err := f.ReadAt(buf, 11)
	require.Equal(t, 6, n)
	require.Equal(t, "hello\n", string(buf[:n]))
	require.NoError(t, err)

	n, err = f.ReadAt(buf, f.Size())
	require.Zero(t, n)
	require.ErrorIs(t, err, io.EOF)
}
