// File: boundary/io.go
// The persisted exchange format, in binary and text flavors. Both carry
// the same payload — column count, then per column its dimension, entry
// count and sorted entries — and both round-trip losslessly: loading a
// saved matrix reconstructs dimensions, boundaries and order exactly.
//
// Binary layout: little-endian int64 throughout.
// Text layout: first line the column count; one line per column,
// space-separated "dim count e1 … ek".

package boundary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
)

// SaveBinary writes the matrix to w in the binary exchange format.
func (m *Matrix) SaveBinary(w io.Writer) error {
	if m.consumed {
		return ErrMatrixConsumed
	}
	bw := bufio.NewWriter(w)
	n := m.store.numCols()
	if err := writeInt64(bw, int64(n)); err != nil {
		return err
	}
	for j := 0; j < n; j++ {
		col := m.store.get(j)
		if err := writeInt64(bw, int64(m.store.dim(j))); err != nil {
			return err
		}
		if err := writeInt64(bw, int64(len(col))); err != nil {
			return err
		}
		for _, e := range col {
			if err := writeInt64(bw, int64(e)); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// LoadBinary reads a matrix in the binary exchange format into a fresh
// Matrix of the given representation. Malformed or truncated streams and
// invalid boundary content are rejected with ErrBadFormat or the
// corresponding validation sentinel; nothing partial is returned.
func LoadBinary(r io.Reader, rep Representation) (*Matrix, error) {
	br := bufio.NewReader(r)
	n, err := readInt64(br)
	if err != nil || n < 0 {
		return nil, ErrBadFormat
	}
	cols := make([]Column, n)
	for j := int64(0); j < n; j++ {
		d, err := readInt64(br)
		if err != nil {
			return nil, ErrBadFormat
		}
		// A valid column j holds at most j distinct entries (< j each),
		// which also bounds allocation against corrupt counts.
		count, err := readInt64(br)
		if err != nil || count < 0 || count > j {
			return nil, ErrBadFormat
		}
		entries := make([]int, count)
		for i := int64(0); i < count; i++ {
			e, err := readInt64(br)
			if err != nil {
				return nil, ErrBadFormat
			}
			entries[i] = int(e)
		}
		cols[j] = Column{Dim: int(d), Boundary: entries}
	}
	return newLoaded(rep, cols)
}

// SaveText writes the matrix to w in the text exchange format.
func (m *Matrix) SaveText(w io.Writer) error {
	if m.consumed {
		return ErrMatrixConsumed
	}
	bw := bufio.NewWriter(w)
	n := m.store.numCols()
	if _, err := fmt.Fprintln(bw, n); err != nil {
		return err
	}
	for j := 0; j < n; j++ {
		col := m.store.get(j)
		if _, err := fmt.Fprintf(bw, "%d %d", m.store.dim(j), len(col)); err != nil {
			return err
		}
		for _, e := range col {
			if _, err := fmt.Fprintf(bw, " %d", e); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// LoadText reads a matrix in the text exchange format into a fresh Matrix
// of the given representation. Token-based, so extra whitespace and line
// breaks are tolerated; the written layout is one column per line.
func LoadText(r io.Reader, rep Representation) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<26)
	sc.Split(bufio.ScanWords)
	n, err := scanInt(sc)
	if err != nil || n < 0 {
		return nil, ErrBadFormat
	}
	cols := make([]Column, n)
	for j := 0; j < n; j++ {
		d, err := scanInt(sc)
		if err != nil {
			return nil, ErrBadFormat
		}
		count, err := scanInt(sc)
		if err != nil || count < 0 || count > j {
			return nil, ErrBadFormat
		}
		entries := make([]int, count)
		for i := 0; i < count; i++ {
			if entries[i], err = scanInt(sc); err != nil {
				return nil, ErrBadFormat
			}
		}
		cols[j] = Column{Dim: d, Boundary: entries}
	}
	return newLoaded(rep, cols)
}

// SaveBinaryFile, LoadBinaryFile, SaveTextFile, LoadTextFile are
// path-taking conveniences over the stream API.

func (m *Matrix) SaveBinaryFile(path string) error {
	return saveFile(path, m.SaveBinary)
}

func LoadBinaryFile(path string, rep Representation) (*Matrix, error) {
	return loadFile(path, rep, LoadBinary)
}

func (m *Matrix) SaveTextFile(path string) error {
	return saveFile(path, m.SaveText)
}

func LoadTextFile(path string, rep Representation) (*Matrix, error) {
	return loadFile(path, rep, LoadText)
}

// newLoaded builds and populates a fresh matrix, funnelling both loaders
// through the same validation as SetColumns.
func newLoaded(rep Representation, cols []Column) (*Matrix, error) {
	m, err := NewMatrix(rep)
	if err != nil {
		return nil, err
	}
	if err := m.SetColumns(cols); err != nil {
		return nil, err
	}

	return m, nil
}

func saveFile(path string, save func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := save(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

func loadFile(path string, rep Representation, load func(io.Reader, Representation) (*Matrix, error)) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return load(f, rep)
}

func writeInt64(w io.Writer, v int64) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func readInt64(r io.Reader) (int64, error) {
	var v int64
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}

	return v, nil
}

func scanInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}

		return 0, io.ErrUnexpectedEOF
	}

	return strconv.Atoi(sc.Text())
}
