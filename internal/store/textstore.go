// Package store persists the ledger's encoded lines to a flat text file.
//
// The format is deliberately simple: one record per line, UTF-8, '\n'
// terminators. There is no locking, no atomic replace, and no append mode;
// a save always fully overwrites the destination. The system is single-user
// and single-process, so that is sufficient.
package store

import (
	"bufio"
	"io"
	"os"

	"github.com/tallyledger/tally/internal/common"
)

// Save writes each line followed by a newline, in order, to the named file,
// overwriting any existing content. On failure it returns a
// *common.PersistenceError carrying the underlying cause; the in-memory
// ledger is unaffected. The file's state after a partial write is undefined.
func Save(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return common.NewPersistenceError("open", path, err)
	}

	if err := WriteLines(f, lines); err != nil {
		_ = f.Close()
		return common.NewPersistenceError("write", path, err)
	}

	if err := f.Close(); err != nil {
		return common.NewPersistenceError("write", path, err)
	}

	return nil
}

// Load reads the named file line by line, preserving order, until EOF.
// A file that cannot be opened is an error for the caller to act on, never
// silently an empty ledger.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, common.NewPersistenceError("open", path, err)
	}
	defer func() { _ = f.Close() }()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, common.NewPersistenceError("read", path, err)
	}

	return lines, nil
}

// WriteLines writes each line with a trailing newline to w.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadLines reads r line by line until EOF, preserving order.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
